package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deandrade/oracle-ar-mcp/internal/config"
	"github.com/deandrade/oracle-ar-mcp/internal/domain"
	"github.com/deandrade/oracle-ar-mcp/internal/handler"
	"github.com/deandrade/oracle-ar-mcp/internal/infra/observability"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// --- Helpers ---

type stubMCP struct {
	hits int
}

func (s *stubMCP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.hits++
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{}}`))
}

func newTestRouter(cfg *config.Config, mcp http.Handler, metrics *observability.Metrics) http.Handler {
	if cfg == nil {
		cfg = &config.Config{Transport: config.TransportHTTP}
	}
	if mcp == nil {
		mcp = &stubMCP{}
	}
	if metrics == nil {
		metrics = observability.NewMetrics()
	}
	toolNames := []string{"oracle_ar_test_connection", "oracle_ar_list_invoices"}
	return handler.NewRouter(mcp, toolNames, cfg, "1.0.0", metrics, zap.NewNop())
}

func signToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		Issuer:    "armcp-test",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// --- Tests ---

func TestHealthz(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var health domain.HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode healthz: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("expected status healthy, got %q", health.Status)
	}
	if health.Transport != config.TransportHTTP {
		t.Errorf("expected transport http, got %q", health.Transport)
	}
	if health.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %q", health.Version)
	}
}

func TestReadyz(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestMetrics(t *testing.T) {
	metrics := observability.NewMetrics()
	metrics.RecordToolCall("oracle_ar_list_invoices", observability.OutcomeSuccess, 5*time.Millisecond)
	router := newTestRouter(nil, nil, metrics)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "armcp_tool_calls_total") {
		t.Errorf("expected prometheus exposition to include armcp_tool_calls_total, got:\n%s", rec.Body.String())
	}
}

func TestToolMetricsSnapshot(t *testing.T) {
	metrics := observability.NewMetrics()
	metrics.RecordToolCall("oracle_ar_list_invoices", observability.OutcomeSuccess, 5*time.Millisecond)
	metrics.RecordToolCall("oracle_ar_list_invoices", observability.OutcomeSuccess, 5*time.Millisecond)
	metrics.RecordToolCall("oracle_ar_test_connection", observability.OutcomeError, 5*time.Millisecond)
	router := newTestRouter(nil, nil, metrics)

	req := httptest.NewRequest(http.MethodGet, "/v1/metrics/tools", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var snapshot domain.ToolMetrics
	if err := json.Unmarshal(rec.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snapshot.TotalCalls != 3 {
		t.Errorf("expected 3 total calls, got %d", snapshot.TotalCalls)
	}
	if snapshot.Errors != 1 {
		t.Errorf("expected 1 error, got %d", snapshot.Errors)
	}
	if snapshot.CallsByTool["oracle_ar_list_invoices"] != 2 {
		t.Errorf("expected 2 invoice calls, got %d", snapshot.CallsByTool["oracle_ar_list_invoices"])
	}
}

func TestMCPEndpointOpenWithoutSecret(t *testing.T) {
	mcp := &stubMCP{}
	router := newTestRouter(nil, mcp, nil)

	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{"jsonrpc":"2.0"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if mcp.hits != 1 {
		t.Errorf("expected the MCP handler to be reached once, got %d", mcp.hits)
	}
}

func TestMCPGateRejectsMissingToken(t *testing.T) {
	mcp := &stubMCP{}
	cfg := &config.Config{Transport: config.TransportHTTP, HTTPAuthSecret: "gate-secret"}
	router := newTestRouter(cfg, mcp, nil)

	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{"jsonrpc":"2.0"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if mcp.hits != 0 {
		t.Errorf("expected the MCP handler to stay unreached, got %d hits", mcp.hits)
	}

	// Operational endpoints stay open even with the gate on.
	healthReq := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, healthReq)
	if healthRec.Code != http.StatusOK {
		t.Errorf("expected healthz to bypass the gate, got %d", healthRec.Code)
	}
}

func TestMCPGateRejectsBadTokens(t *testing.T) {
	mcp := &stubMCP{}
	cfg := &config.Config{Transport: config.TransportHTTP, HTTPAuthSecret: "gate-secret"}
	router := newTestRouter(cfg, mcp, nil)

	cases := []struct {
		name   string
		header string
	}{
		{"malformed header", "NotBearer abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", time.Hour)},
		{"expired", "Bearer " + signToken(t, "gate-secret", -time.Hour)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{"jsonrpc":"2.0"}`))
			req.Header.Set("Authorization", tc.header)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}

	if mcp.hits != 0 {
		t.Errorf("expected the MCP handler to stay unreached, got %d hits", mcp.hits)
	}
}

func TestMCPGateAcceptsSignedToken(t *testing.T) {
	mcp := &stubMCP{}
	cfg := &config.Config{Transport: config.TransportHTTP, HTTPAuthSecret: "gate-secret"}
	router := newTestRouter(cfg, mcp, nil)

	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(`{"jsonrpc":"2.0"}`))
	req.Header.Set("Authorization", "Bearer "+signToken(t, "gate-secret", time.Hour))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if mcp.hits != 1 {
		t.Errorf("expected the MCP handler to be reached once, got %d", mcp.hits)
	}
}
