package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/deandrade/oracle-ar-mcp/internal/port"
)

// ReceiptsTool lists payment receipts with optional filters.
type ReceiptsTool struct {
	reader port.ReceiptReader
}

func NewReceiptsTool(reader port.ReceiptReader) *ReceiptsTool {
	return &ReceiptsTool{reader: reader}
}

func (t *ReceiptsTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List payment receipts from Oracle Fusion. Optional filters narrow by customer, receipt number, or receipt-date range."),
	}
	opts = append(opts, readOnlyAnnotations("List AR Receipts")...)
	opts = append(opts, connectionOptions()...)
	opts = append(opts,
		mcp.WithString("customer_account_id", mcp.Description("Filter by customer account ID")),
		mcp.WithString("receipt_number", mcp.Description("Filter by receipt number")),
		mcp.WithString("date_after", mcp.Description("Only receipts dated on or after this date (YYYY-MM-DD)")),
		mcp.WithString("date_before", mcp.Description("Only receipts dated on or before this date (YYYY-MM-DD)")),
		limitOption("Maximum receipts to return (1-500, default 25)"),
		offsetOption(),
	)
	return mcp.NewTool("oracle_ar_list_receipts", opts...)
}

func (t *ReceiptsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	conn, err := connectionFromRequest(req)
	if err != nil {
		return errorResult(err), nil
	}

	filter := port.ReceiptFilter{
		CustomerAccountID: stringArg(req, "customer_account_id"),
		ReceiptNumber:     stringArg(req, "receipt_number"),
		DateAfter:         stringArg(req, "date_after"),
		DateBefore:        stringArg(req, "date_before"),
	}

	list, err := t.reader.ListReceipts(ctx, conn, filter, req.GetInt("limit", 0), req.GetInt("offset", 0))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(list), nil
}
