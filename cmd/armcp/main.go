package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deandrade/oracle-ar-mcp/internal/config"
	"github.com/deandrade/oracle-ar-mcp/internal/handler"
	"github.com/deandrade/oracle-ar-mcp/internal/infra/observability"
	"github.com/deandrade/oracle-ar-mcp/internal/oracle"
	"github.com/deandrade/oracle-ar-mcp/internal/service"
	"github.com/deandrade/oracle-ar-mcp/internal/tools"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const (
	serverName = "oracle_ar_mcp"
	version    = "1.0.0"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("transport", cfg.Transport),
		zap.Duration("oracle_timeout", cfg.OracleTimeout),
		zap.Duration("oracle_probe_timeout", cfg.OracleProbeTimeout),
		zap.Int("page_size", cfg.PageSize),
		zap.Int("max_records", cfg.MaxRecords),
		zap.Int("max_pages", cfg.MaxPages),
		zap.Int("max_concurrency", cfg.MaxConcurrency),
		zap.Bool("http_auth", cfg.HTTPAuthSecret != ""),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, serverName)
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Oracle client ---
	oracleClient := oracle.NewClient(oracle.Config{
		Timeout:       cfg.OracleTimeout,
		ProbeTimeout:  cfg.OracleProbeTimeout,
		PageSize:      cfg.PageSize,
		MaxRecords:    cfg.MaxRecords,
		MaxPages:      cfg.MaxPages,
		MaxConcurrent: cfg.MaxConcurrency,
		BreakerTTL:    cfg.BreakerTTL,
	}, metrics, logger)

	// --- Services ---
	receivables := service.NewReceivables(oracleClient, logger)

	// --- MCP server & tools ---
	mcpServer := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	registry := tools.NewRegistry(receivables, metrics, logger)
	registry.Register(mcpServer)

	// --- Stdio transport ---
	if cfg.Transport == config.TransportStdio {
		logger.Info("serving MCP over stdio")
		if err := server.ServeStdio(mcpServer); err != nil {
			logger.Fatal("stdio server failed", zap.Error(err))
		}
		return
	}

	// --- Streamable HTTP transport ---
	streamable := server.NewStreamableHTTPServer(mcpServer, server.WithStateLess(true))
	router := handler.NewRouter(streamable, registry.Names(), cfg, version, metrics, logger)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		// A tool call holds the response open for the full upstream budget.
		WriteTimeout: cfg.OracleTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
