// Package tools defines the MCP tool surface: one schema and handler
// per AR operation, plus the registry that wires them to the server.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/deandrade/oracle-ar-mcp/internal/port"
)

// Tool is one MCP tool: its schema and its handler.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// Service is everything the tool surface needs from the AR service.
type Service interface {
	port.ConnectionProber
	port.InvoiceReader
	port.ReceiptReader
	port.ActivityReader
	port.SummaryReader
	port.AgingReader
}
