package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
)

// Error kinds surfaced to the calling agent.
const (
	KindConnection     = "connection"
	KindAuthentication = "authentication"
	KindNotFound       = "not_found"
	KindService        = "service"
	KindValidation     = "validation"
)

// connectionOptions are the per-call connection arguments every tool
// accepts. Credentials live only in the request; nothing retains them.
func connectionOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("base_url",
			mcp.Required(),
			mcp.Description("Base URL of the Oracle Fusion instance, e.g. https://fa-xyz-saasfaprod1.fa.ocs.oraclecloud.com"),
		),
		mcp.WithString("username",
			mcp.Required(),
			mcp.Description("Oracle Fusion username"),
		),
		mcp.WithString("password",
			mcp.Required(),
			mcp.Description("Oracle Fusion password, used only for this call"),
		),
		mcp.WithBoolean("verify_ssl",
			mcp.Description("Verify the server's TLS certificate (default true)"),
			mcp.DefaultBool(true),
		),
	}
}

// readOnlyAnnotations mark every AR tool as a safe, repeatable read
// against an external system.
func readOnlyAnnotations(title string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithTitleAnnotation(title),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	}
}

func limitOption(desc string) mcp.ToolOption {
	return mcp.WithNumber("limit",
		mcp.Description(desc),
		mcp.DefaultNumber(25),
		mcp.Min(1),
		mcp.Max(500),
	)
}

func offsetOption() mcp.ToolOption {
	return mcp.WithNumber("offset",
		mcp.Description("Number of records to skip before the first result"),
		mcp.DefaultNumber(0),
		mcp.Min(0),
	)
}

// stringArg returns a trimmed optional string argument. Whitespace-only
// input counts as absent.
func stringArg(req mcp.CallToolRequest, key string) string {
	return strings.TrimSpace(req.GetString(key, ""))
}

// connectionFromRequest builds the per-call connection value. It is
// threaded by value through the pipeline and dropped when the call
// returns.
func connectionFromRequest(req mcp.CallToolRequest) (domain.Connection, error) {
	baseURL, err := req.RequireString("base_url")
	if err != nil {
		return domain.Connection{}, &domain.ErrValidation{Field: "base_url", Message: "required"}
	}
	username, err := req.RequireString("username")
	if err != nil {
		return domain.Connection{}, &domain.ErrValidation{Field: "username", Message: "required"}
	}
	password, err := req.RequireString("password")
	if err != nil {
		return domain.Connection{}, &domain.ErrValidation{Field: "password", Message: "required"}
	}

	conn := domain.Connection{
		BaseURL:   strings.TrimSpace(baseURL),
		Username:  strings.TrimSpace(username),
		Password:  strings.TrimSpace(password),
		VerifySSL: req.GetBool("verify_ssl", true),
	}
	if err := conn.Validate(); err != nil {
		return domain.Connection{}, err
	}
	return conn, nil
}

// jsonResult serializes a payload as indented JSON text content.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(&domain.ErrService{Err: err})
	}
	return mcp.NewToolResultText(string(data))
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorPayload struct {
	Error errorBody `json:"error"`
}

// errorResult converts a pipeline error into the structured payload the
// agent sees. The call always resolves; no fault escapes to break the
// session.
func errorResult(err error) *mcp.CallToolResult {
	kind, message := classify(err)
	data, mErr := json.MarshalIndent(errorPayload{Error: errorBody{Kind: kind, Message: message}}, "", "  ")
	if mErr != nil {
		return mcp.NewToolResultError(message)
	}
	return mcp.NewToolResultError(string(data))
}

// classify maps an error onto its kind and agent-facing message. Typed
// errors win over any wrapping, so messages stay clean.
func classify(err error) (string, string) {
	var (
		authErr *domain.ErrAuthentication
		nfErr   *domain.ErrNotFound
		valErr  *domain.ErrValidation
		connErr *domain.ErrConnection
		svcErr  *domain.ErrService
	)
	switch {
	case errors.As(err, &authErr):
		return KindAuthentication, authErr.Error()
	case errors.As(err, &nfErr):
		return KindNotFound, nfErr.Error()
	case errors.As(err, &valErr):
		return KindValidation, valErr.Error()
	case errors.As(err, &connErr):
		return KindConnection, connErr.Error()
	case errors.As(err, &svcErr):
		return KindService, svcErr.Error()
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return KindConnection, err.Error()
	default:
		return KindService, err.Error()
	}
}
