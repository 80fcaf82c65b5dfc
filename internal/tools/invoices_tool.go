package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/deandrade/oracle-ar-mcp/internal/port"
)

// InvoicesTool lists AR invoices with optional filters.
type InvoicesTool struct {
	reader port.InvoiceReader
}

func NewInvoicesTool(reader port.InvoiceReader) *InvoicesTool {
	return &InvoicesTool{reader: reader}
}

func (t *InvoicesTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List AR invoices from Oracle Fusion. Optional filters narrow by customer, invoice number, status, or due-date range."),
	}
	opts = append(opts, readOnlyAnnotations("List AR Invoices")...)
	opts = append(opts, connectionOptions()...)
	opts = append(opts,
		mcp.WithString("customer_account_id", mcp.Description("Filter by customer account ID")),
		mcp.WithString("invoice_number", mcp.Description("Filter by invoice number")),
		mcp.WithString("status", mcp.Description("Filter by transaction status")),
		mcp.WithString("due_after", mcp.Description("Only invoices due on or after this date (YYYY-MM-DD)")),
		mcp.WithString("due_before", mcp.Description("Only invoices due on or before this date (YYYY-MM-DD)")),
		limitOption("Maximum invoices to return (1-500, default 25)"),
		offsetOption(),
	)
	return mcp.NewTool("oracle_ar_list_invoices", opts...)
}

func (t *InvoicesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	conn, err := connectionFromRequest(req)
	if err != nil {
		return errorResult(err), nil
	}

	filter := port.InvoiceFilter{
		CustomerAccountID: stringArg(req, "customer_account_id"),
		InvoiceNumber:     stringArg(req, "invoice_number"),
		Status:            stringArg(req, "status"),
		DueAfter:          stringArg(req, "due_after"),
		DueBefore:         stringArg(req, "due_before"),
	}

	list, err := t.reader.ListInvoices(ctx, conn, filter, req.GetInt("limit", 0), req.GetInt("offset", 0))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(list), nil
}
