package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
	"github.com/deandrade/oracle-ar-mcp/internal/port"
)

// ConnectionTool verifies reachability and credentials for an instance.
type ConnectionTool struct {
	prober port.ConnectionProber
}

func NewConnectionTool(prober port.ConnectionProber) *ConnectionTool {
	return &ConnectionTool{prober: prober}
}

func (t *ConnectionTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Test connection to Oracle Fusion. Verifies the base URL and credentials with a minimal read against Accounts Receivable."),
	}
	opts = append(opts, readOnlyAnnotations("Test Oracle AR Connection")...)
	opts = append(opts, connectionOptions()...)
	return mcp.NewTool("oracle_ar_test_connection", opts...)
}

func (t *ConnectionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	conn, err := connectionFromRequest(req)
	if err != nil {
		return errorResult(err), nil
	}
	if err := t.prober.TestConnection(ctx, conn); err != nil {
		return errorResult(err), nil
	}
	return jsonResult(domain.ConnectionStatus{Status: "connected", Message: "Credentials valid"}), nil
}
