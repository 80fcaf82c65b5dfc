package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
	"github.com/deandrade/oracle-ar-mcp/internal/oracle"
	"github.com/deandrade/oracle-ar-mcp/internal/port"
)

// ListReceipts returns one page of projected receipts matching the
// filter.
func (s *Receivables) ListReceipts(ctx context.Context, conn domain.Connection, filter port.ReceiptFilter, limit, offset int) (domain.ReceiptList, error) {
	ctx, span := tracer.Start(ctx, "Receivables.ListReceipts")
	defer span.End()

	if err := conn.Validate(); err != nil {
		return domain.ReceiptList{}, err
	}
	if err := validateDate("date_after", filter.DateAfter); err != nil {
		return domain.ReceiptList{}, err
	}
	if err := validateDate("date_before", filter.DateBefore); err != nil {
		return domain.ReceiptList{}, err
	}

	limit = clampLimit(limit)
	offset = clampOffset(offset)
	span.SetAttributes(
		attribute.Int("ar.limit", limit),
		attribute.String("ar.customer_account_id", filter.CustomerAccountID),
	)

	q := oracle.BuildFilter(
		oracle.Eq(domain.FieldCustomerAccountID, filter.CustomerAccountID),
		oracle.Eq(domain.FieldReceiptNumber, filter.ReceiptNumber),
		oracle.Ge(domain.FieldReceiptDate, filter.DateAfter),
		oracle.Le(domain.FieldReceiptDate, filter.DateBefore),
	)

	page, err := s.gateway.FetchPage(ctx, conn, oracle.ResourceReceipts, q, limit, offset)
	if err != nil {
		return domain.ReceiptList{}, fmt.Errorf("receipt listing: %w", err)
	}

	out := domain.ReceiptList{
		Receipts: make([]domain.Receipt, 0, len(page.Items)),
		HasMore:  page.HasMore,
	}
	for _, rec := range page.Items {
		out.Receipts = append(out.Receipts, domain.ReceiptFromRecord(rec))
	}
	out.Count = len(out.Receipts)
	return out, nil
}
