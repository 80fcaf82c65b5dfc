package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/deandrade/oracle-ar-mcp/internal/port"
)

// SummaryTool derives one customer's AR position.
type SummaryTool struct {
	reader port.SummaryReader
}

func NewSummaryTool(reader port.SummaryReader) *SummaryTool {
	return &SummaryTool{reader: reader}
}

func (t *SummaryTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get AR summary for a customer from Oracle Fusion: total invoiced, total paid, outstanding balance, and the aging profile of open invoices."),
	}
	opts = append(opts, readOnlyAnnotations("Get Customer AR Summary")...)
	opts = append(opts, connectionOptions()...)
	opts = append(opts,
		mcp.WithString("customer_account_id", mcp.Required(), mcp.Description("Customer account ID")),
	)
	return mcp.NewTool("oracle_ar_get_customer_summary", opts...)
}

func (t *SummaryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	conn, err := connectionFromRequest(req)
	if err != nil {
		return errorResult(err), nil
	}

	summary, err := t.reader.GetCustomerSummary(ctx, conn, stringArg(req, "customer_account_id"))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(summary), nil
}
