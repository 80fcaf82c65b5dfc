package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
	"github.com/deandrade/oracle-ar-mcp/internal/infra/observability"
)

// TestConnection verifies reachability and credentials with a minimal
// authenticated read against the invoices collection.
func (s *Receivables) TestConnection(ctx context.Context, conn domain.Connection) error {
	ctx, span := tracer.Start(ctx, "Receivables.TestConnection")
	defer span.End()
	span.SetAttributes(attribute.String("oracle.host", conn.Host()))

	if err := conn.Validate(); err != nil {
		return err
	}
	if err := s.gateway.Probe(ctx, conn); err != nil {
		s.logger.Warn("connection test failed",
			append(observability.ConnFields(conn), zap.Error(err))...)
		return err
	}
	s.logger.Info("connection test succeeded", observability.ConnFields(conn)...)
	return nil
}
