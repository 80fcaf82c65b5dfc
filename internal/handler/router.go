// Package handler exposes the HTTP surface: the MCP endpoint plus the
// operational endpoints that sit next to it.
package handler

import (
	"net/http"

	"github.com/deandrade/oracle-ar-mcp/internal/config"
	"github.com/deandrade/oracle-ar-mcp/internal/domain"
	"github.com/deandrade/oracle-ar-mcp/internal/infra/observability"
	"github.com/deandrade/oracle-ar-mcp/internal/oracle"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter creates the HTTP router with all routes and middleware.
// The MCP streamable transport is mounted at /mcp; everything else is
// operational (health, readiness, metrics).
func NewRouter(mcp http.Handler, toolNames []string, cfg *config.Config, version string, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler(cfg.Transport, version))
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- MCP endpoint ---
	r.Group(func(r chi.Router) {
		if cfg.HTTPAuthSecret != "" {
			r.Use(BearerAuthMiddleware([]byte(cfg.HTTPAuthSecret), logger))
		}
		r.Handle("/mcp", mcp)
	})

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {
		r.Get("/metrics/tools", toolMetricsHandler(metrics, toolNames))
	})

	return r
}

// ============================================================
// Health & Metrics
// ============================================================

// healthzHandler reports process liveness. Oracle connections are
// per-call, so there is no upstream to probe here.
func healthzHandler(transport, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.HealthStatus{
			Status:    "healthy",
			Transport: transport,
			Version:   version,
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func toolMetricsHandler(metrics *observability.Metrics, toolNames []string) http.HandlerFunc {
	resources := []string{oracle.ResourceInvoices, oracle.ResourceReceipts}
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := metrics.GetToolSnapshot(toolNames, resources)
		writeJSON(w, http.StatusOK, snapshot)
	}
}
