package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
	"github.com/deandrade/oracle-ar-mcp/internal/oracle"
)

// GetAgingSummary buckets open invoice balances by days overdue as of
// today, optionally narrowed to one customer. limit caps how many
// invoices the scan drains; zero means the adapter's full record cap.
func (s *Receivables) GetAgingSummary(ctx context.Context, conn domain.Connection, customerID string, limit int) (domain.AgingSummary, error) {
	ctx, span := tracer.Start(ctx, "Receivables.GetAgingSummary")
	defer span.End()

	if err := conn.Validate(); err != nil {
		return domain.AgingSummary{}, err
	}

	if limit < 0 {
		limit = 0
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	span.SetAttributes(
		attribute.String("ar.customer_account_id", customerID),
		attribute.Int("ar.limit", limit),
	)

	q := oracle.BuildFilter(oracle.Eq(domain.FieldCustomerAccountID, customerID))
	invoices, err := s.gateway.FetchAll(ctx, conn, oracle.ResourceInvoices, q, limit)
	if err != nil {
		return domain.AgingSummary{}, fmt.Errorf("aging scan: %w", err)
	}

	return domain.BuildAgingSummary(invoices, time.Now().UTC()), nil
}
