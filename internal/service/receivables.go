// Package service implements the read-only AR query and aggregation
// operations behind the tool surface. Every operation receives the
// caller's connection by value, validates it, runs its queries, and
// returns; no business state survives the call.
package service

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
	"github.com/deandrade/oracle-ar-mcp/internal/infra/observability"
	"github.com/deandrade/oracle-ar-mcp/internal/oracle"
	"github.com/deandrade/oracle-ar-mcp/internal/port"
)

var tracer = otel.Tracer("service/receivables")

const (
	// DefaultListLimit applies when a caller sends no limit.
	DefaultListLimit = 25
	// MaxListLimit bounds any single listing or aggregation scan.
	MaxListLimit = 500
)

// Receivables answers AR queries against a caller-supplied connection.
type Receivables struct {
	gateway port.Gateway
	logger  *zap.Logger
}

// NewReceivables creates the service with its gateway injected.
func NewReceivables(gateway port.Gateway, logger *zap.Logger) *Receivables {
	return &Receivables{
		gateway: gateway,
		logger:  logger,
	}
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// fetchCustomerRecords drains one customer's invoices and receipts
// concurrently. A failed leg cancels its sibling; the first error wins
// and no partial result escapes.
func (s *Receivables) fetchCustomerRecords(ctx context.Context, conn domain.Connection, customerID string) ([]domain.Record, []domain.Record, error) {
	filter := oracle.BuildFilter(oracle.Eq(domain.FieldCustomerAccountID, customerID))

	var invoices, receipts []domain.Record
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		recs, err := s.gateway.FetchAll(gCtx, conn, oracle.ResourceInvoices, filter, 0)
		if err != nil {
			s.logger.Error("invoice fetch failed",
				append(observability.ConnFields(conn),
					zap.String("customer_account_id", customerID),
					zap.Error(err))...)
			return fmt.Errorf("invoice fetch: %w", err)
		}
		invoices = recs
		return nil
	})

	g.Go(func() error {
		recs, err := s.gateway.FetchAll(gCtx, conn, oracle.ResourceReceipts, filter, 0)
		if err != nil {
			s.logger.Error("receipt fetch failed",
				append(observability.ConnFields(conn),
					zap.String("customer_account_id", customerID),
					zap.Error(err))...)
			return fmt.Errorf("receipt fetch: %w", err)
		}
		receipts = recs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return invoices, receipts, nil
}

func requireCustomerID(customerID string) error {
	if customerID == "" {
		return &domain.ErrValidation{Field: "customer_account_id", Message: "must not be empty"}
	}
	return nil
}
