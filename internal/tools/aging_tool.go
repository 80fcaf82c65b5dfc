package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/deandrade/oracle-ar-mcp/internal/port"
)

// AgingTool buckets open balances by days overdue.
type AgingTool struct {
	reader port.AgingReader
}

func NewAgingTool(reader port.AgingReader) *AgingTool {
	return &AgingTool{reader: reader}
}

func (t *AgingTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get aging summary of open invoices from Oracle Fusion: outstanding balances bucketed by days overdue (current, 1-30, 31-60, 61-90, over 90), optionally for one customer."),
	}
	opts = append(opts, readOnlyAnnotations("Get AR Aging Summary")...)
	opts = append(opts, connectionOptions()...)
	opts = append(opts,
		mcp.WithString("customer_account_id", mcp.Description("Restrict the aging report to one customer account ID")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum invoices to scan (1-500, default: the full 500-record cap)"),
			mcp.Min(1),
			mcp.Max(500),
		),
	)
	return mcp.NewTool("oracle_ar_get_aging_summary", opts...)
}

func (t *AgingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	conn, err := connectionFromRequest(req)
	if err != nil {
		return errorResult(err), nil
	}

	summary, err := t.reader.GetAgingSummary(ctx, conn,
		stringArg(req, "customer_account_id"), req.GetInt("limit", 0))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(summary), nil
}
