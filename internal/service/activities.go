package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
)

// ListCustomerActivities merges one customer's invoices and receipts
// into a single chronological timeline, oldest first. When the merged
// timeline exceeds the limit, the most recent entries are kept.
func (s *Receivables) ListCustomerActivities(ctx context.Context, conn domain.Connection, customerID string, limit int) (domain.ActivityList, error) {
	ctx, span := tracer.Start(ctx, "Receivables.ListCustomerActivities")
	defer span.End()

	if err := conn.Validate(); err != nil {
		return domain.ActivityList{}, err
	}
	if err := requireCustomerID(customerID); err != nil {
		return domain.ActivityList{}, err
	}

	limit = clampLimit(limit)
	span.SetAttributes(
		attribute.String("ar.customer_account_id", customerID),
		attribute.Int("ar.limit", limit),
	)

	invoices, receipts, err := s.fetchCustomerRecords(ctx, conn, customerID)
	if err != nil {
		return domain.ActivityList{}, err
	}

	activities := domain.MergeActivities(invoices, receipts)
	if len(activities) > limit {
		activities = activities[len(activities)-limit:]
	}
	return domain.ActivityList{Activities: activities, Count: len(activities)}, nil
}
