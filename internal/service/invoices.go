package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
	"github.com/deandrade/oracle-ar-mcp/internal/oracle"
	"github.com/deandrade/oracle-ar-mcp/internal/port"
)

// ListInvoices returns one page of projected invoices matching the
// filter. HasMore reports whether the upstream holds further matches
// beyond the requested window.
func (s *Receivables) ListInvoices(ctx context.Context, conn domain.Connection, filter port.InvoiceFilter, limit, offset int) (domain.InvoiceList, error) {
	ctx, span := tracer.Start(ctx, "Receivables.ListInvoices")
	defer span.End()

	if err := conn.Validate(); err != nil {
		return domain.InvoiceList{}, err
	}
	if err := validateDate("due_after", filter.DueAfter); err != nil {
		return domain.InvoiceList{}, err
	}
	if err := validateDate("due_before", filter.DueBefore); err != nil {
		return domain.InvoiceList{}, err
	}

	limit = clampLimit(limit)
	offset = clampOffset(offset)
	span.SetAttributes(
		attribute.Int("ar.limit", limit),
		attribute.String("ar.customer_account_id", filter.CustomerAccountID),
	)

	q := oracle.BuildFilter(
		oracle.Eq(domain.FieldCustomerAccountID, filter.CustomerAccountID),
		oracle.Eq(domain.FieldTransactionNumber, filter.InvoiceNumber),
		oracle.Eq(domain.FieldStatus, filter.Status),
		oracle.Ge(domain.FieldDueDate, filter.DueAfter),
		oracle.Le(domain.FieldDueDate, filter.DueBefore),
	)

	page, err := s.gateway.FetchPage(ctx, conn, oracle.ResourceInvoices, q, limit, offset)
	if err != nil {
		return domain.InvoiceList{}, fmt.Errorf("invoice listing: %w", err)
	}

	out := domain.InvoiceList{
		Invoices: make([]domain.Invoice, 0, len(page.Items)),
		HasMore:  page.HasMore,
	}
	for _, rec := range page.Items {
		out.Invoices = append(out.Invoices, domain.InvoiceFromRecord(rec))
	}
	out.Count = len(out.Invoices)
	return out, nil
}

// validateDate rejects filter dates the upstream would not understand.
func validateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, ok := domain.ParseOracleDate(value); !ok {
		return &domain.ErrValidation{Field: field, Message: "must be a date in YYYY-MM-DD form"}
	}
	return nil
}
