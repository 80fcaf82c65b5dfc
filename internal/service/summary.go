package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
)

// GetCustomerSummary derives billed and paid totals plus the aging
// profile for one customer. Outstanding balance is total invoiced minus
// total received, so unapplied receipts still reduce it.
func (s *Receivables) GetCustomerSummary(ctx context.Context, conn domain.Connection, customerID string) (domain.CustomerSummary, error) {
	ctx, span := tracer.Start(ctx, "Receivables.GetCustomerSummary")
	defer span.End()
	span.SetAttributes(attribute.String("ar.customer_account_id", customerID))

	if err := conn.Validate(); err != nil {
		return domain.CustomerSummary{}, err
	}
	if err := requireCustomerID(customerID); err != nil {
		return domain.CustomerSummary{}, err
	}

	invoices, receipts, err := s.fetchCustomerRecords(ctx, conn, customerID)
	if err != nil {
		return domain.CustomerSummary{}, err
	}

	summary := domain.BuildCustomerSummary(customerID, invoices, receipts, time.Now().UTC())
	s.logger.Debug("customer summary built",
		zap.String("customer_account_id", customerID),
		zap.Int("invoices", summary.InvoiceCount),
		zap.Int("receipts", summary.ReceiptCount))
	return summary, nil
}
