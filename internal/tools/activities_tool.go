package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/deandrade/oracle-ar-mcp/internal/port"
)

// ActivitiesTool returns one customer's merged invoice and receipt
// timeline.
type ActivitiesTool struct {
	reader port.ActivityReader
}

func NewActivitiesTool(reader port.ActivityReader) *ActivitiesTool {
	return &ActivitiesTool{reader: reader}
}

func (t *ActivitiesTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List a customer's AR activity from Oracle Fusion: invoices and receipts merged into one chronological timeline, oldest first."),
	}
	opts = append(opts, readOnlyAnnotations("List Customer AR Activities")...)
	opts = append(opts, connectionOptions()...)
	opts = append(opts,
		mcp.WithString("customer_account_id", mcp.Required(), mcp.Description("Customer account ID")),
		limitOption("Maximum activities to return (1-500, default 25); the most recent are kept"),
	)
	return mcp.NewTool("oracle_ar_list_customer_activities", opts...)
}

func (t *ActivitiesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	conn, err := connectionFromRequest(req)
	if err != nil {
		return errorResult(err), nil
	}

	list, err := t.reader.ListCustomerActivities(ctx, conn,
		stringArg(req, "customer_account_id"), req.GetInt("limit", 0))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(list), nil
}
