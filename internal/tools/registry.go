package tools

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/deandrade/oracle-ar-mcp/internal/infra/observability"
)

// Registry owns the tool set and registers it with the MCP server.
type Registry struct {
	tools   []Tool
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewRegistry builds the full AR tool set on top of one service.
func NewRegistry(svc Service, metrics *observability.Metrics, logger *zap.Logger) *Registry {
	return &Registry{
		tools: []Tool{
			NewConnectionTool(svc),
			NewInvoicesTool(svc),
			NewReceiptsTool(svc),
			NewActivitiesTool(svc),
			NewSummaryTool(svc),
			NewAgingTool(svc),
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Names lists the tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for _, t := range r.tools {
		names = append(names, t.Definition().Name)
	}
	return names
}

// Register adds every tool to the server with its handler wrapped for
// metrics and logging.
func (r *Registry) Register(s *server.MCPServer) {
	for _, t := range r.tools {
		def := t.Definition()
		s.AddTool(def, r.instrument(def.Name, t.Handle))
	}
	r.logger.Info("tools registered", zap.Strings("tools", r.Names()))
}

// instrument wraps a handler with per-call metrics and logs. Arguments
// are never logged; they carry credentials.
func (r *Registry) instrument(name string, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		callID := uuid.New().String()
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.String("mcp.tool", name),
			attribute.String("mcp.call_id", callID),
		)
		r.logger.Debug("tool call started",
			zap.String("tool", name),
			zap.String("call_id", callID))

		res, err := h(ctx, req)
		if err != nil {
			// Handlers resolve their own errors; convert any stray one.
			res = errorResult(err)
		}

		outcome := observability.OutcomeSuccess
		if res.IsError {
			outcome = observability.OutcomeError
		}
		duration := time.Since(start)
		r.metrics.RecordToolCall(name, outcome, duration)
		r.logger.Info("tool call finished",
			zap.String("tool", name),
			zap.String("call_id", callID),
			zap.String("outcome", outcome),
			zap.Duration("duration", duration))
		return res, nil
	}
}
