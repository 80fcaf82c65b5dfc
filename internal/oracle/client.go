// Package oracle is the REST adapter for Oracle Fusion Accounts
// Receivable resource collections. Every call authenticates with the
// caller-supplied connection; the adapter itself holds no credentials,
// only per-host infrastructure state (circuit breakers).
package oracle

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
	"github.com/deandrade/oracle-ar-mcp/internal/infra/cache"
	"github.com/deandrade/oracle-ar-mcp/internal/infra/observability"
	"github.com/deandrade/oracle-ar-mcp/internal/infra/resilience"
	"github.com/deandrade/oracle-ar-mcp/internal/port"
)

var tracer = otel.Tracer("oracle")

// apiBasePath is the fixed Fusion REST prefix, pinned to the 11.13.18.05
// API version the payload shapes are written against.
const apiBasePath = "/fscmRestApi/resources/11.13.18.05/"

// Resource collections the adapter reads.
const (
	ResourceInvoices = "receivablesInvoices"
	ResourceReceipts = "standardReceipts"
)

// Config tunes the adapter. Zero values fall back to safe defaults.
type Config struct {
	Timeout       time.Duration // per-request budget for data calls
	ProbeTimeout  time.Duration // tighter budget for connection tests
	PageSize      int           // records requested per page
	MaxRecords    int           // hard cap across a paginated drain
	MaxPages      int           // hard cap on pages per drain
	MaxConcurrent int           // bulkhead width for upstream calls
	BreakerTTL    time.Duration // idle eviction for per-host breakers
}

func (c *Config) normalize() {
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = 30 * time.Second
	}
	if c.PageSize <= 0 {
		c.PageSize = 100
	}
	if c.MaxRecords <= 0 {
		c.MaxRecords = 500
	}
	if c.MaxPages <= 0 {
		c.MaxPages = c.MaxRecords/c.PageSize + 1
	}
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = 50
	}
	if c.BreakerTTL <= 0 {
		c.BreakerTTL = 30 * time.Minute
	}
}

// Client implements port.Gateway against the Fusion REST API.
type Client struct {
	verifying *http.Client // default transport, certificates checked
	insecure  *http.Client // used only when the caller opts out of TLS verification
	cfg       Config
	breakers  *cache.InMemory[*gobreaker.CircuitBreaker]
	bulkhead  *resilience.Bulkhead
	metrics   *observability.Metrics
	logger    *zap.Logger
}

// NewClient creates the Fusion REST adapter.
func NewClient(cfg Config, metrics *observability.Metrics, logger *zap.Logger) *Client {
	cfg.normalize()

	verifyingTransport := http.DefaultTransport.(*http.Transport).Clone()
	insecureTransport := verifyingTransport.Clone()
	insecureTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}

	return &Client{
		verifying: &http.Client{Transport: verifyingTransport, Timeout: cfg.Timeout},
		insecure:  &http.Client{Transport: insecureTransport, Timeout: cfg.Timeout},
		cfg:       cfg,
		breakers:  cache.New[*gobreaker.CircuitBreaker](cfg.BreakerTTL),
		bulkhead:  resilience.NewBulkhead(cfg.MaxConcurrent),
		metrics:   metrics,
		logger:    logger,
	}
}

// FetchPage issues one collection GET and decodes the items envelope.
func (c *Client) FetchPage(ctx context.Context, conn domain.Connection, resource, filter string, limit, offset int) (port.Page, error) {
	ctx, span := tracer.Start(ctx, "Oracle.FetchPage")
	defer span.End()
	span.SetAttributes(
		attribute.String("oracle.resource", resource),
		attribute.Int("oracle.limit", limit),
		attribute.Int("oracle.offset", offset),
	)

	if err := c.bulkhead.Acquire(ctx); err != nil {
		return port.Page{}, &domain.ErrConnection{Host: conn.Host(), Err: err}
	}
	defer c.bulkhead.Release()

	result, err := c.breakerFor(conn.Host()).Execute(func() (any, error) {
		return c.getPage(ctx, conn, resource, filter, limit, offset)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Warn("request rejected by open circuit breaker",
				zap.String("oracle_host", conn.Host()),
				zap.String("resource", resource))
			return port.Page{}, &domain.ErrConnection{Host: conn.Host(), Err: err}
		}
		return port.Page{}, err
	}
	return result.(port.Page), nil
}

// FetchAll drains a collection page by page. The drain stops when the
// upstream reports no more pages, when limit records have been
// collected, or when the configured page cap is hit.
func (c *Client) FetchAll(ctx context.Context, conn domain.Connection, resource, filter string, limit int) ([]domain.Record, error) {
	ctx, span := tracer.Start(ctx, "Oracle.FetchAll")
	defer span.End()

	budget := c.cfg.MaxRecords
	if limit > 0 && limit < budget {
		budget = limit
	}

	var records []domain.Record
	offset := 0
	for page := 0; page < c.cfg.MaxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pageLimit := c.cfg.PageSize
		if remaining := budget - len(records); remaining < pageLimit {
			pageLimit = remaining
		}

		p, err := c.FetchPage(ctx, conn, resource, filter, pageLimit, offset)
		if err != nil {
			return nil, err
		}
		c.metrics.IncrPageFetched()

		records = append(records, p.Items...)
		if !p.HasMore || len(records) >= budget || len(p.Items) == 0 {
			break
		}
		offset += len(p.Items)
	}

	if len(records) > budget {
		records = records[:budget]
	}
	span.SetAttributes(
		attribute.String("oracle.resource", resource),
		attribute.Int("oracle.records", len(records)),
	)
	return records, nil
}

// Probe verifies connectivity and credentials with a minimal read
// against the invoices collection.
func (c *Client) Probe(ctx context.Context, conn domain.Connection) error {
	ctx, span := tracer.Start(ctx, "Oracle.Probe")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ProbeTimeout)
	defer cancel()

	_, err := c.FetchPage(ctx, conn, ResourceInvoices, "", 1, 0)
	return err
}

// getPage performs the HTTP round trip and maps failures onto the
// domain error taxonomy. The supplied password is used for the request
// and never reaches a log line or error message.
func (c *Client) getPage(ctx context.Context, conn domain.Connection, resource, filter string, limit, offset int) (port.Page, error) {
	reqURL := c.collectionURL(conn, resource, filter, limit, offset)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return port.Page{}, &domain.ErrService{Err: err}
	}
	req.SetBasicAuth(conn.Username, conn.Password)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClientFor(conn).Do(req)
	duration := time.Since(start)
	if err != nil {
		c.metrics.RecordUpstreamRequest(resource, observability.OutcomeError, duration)
		c.logger.Warn("oracle request failed",
			append(observability.ConnFields(conn),
				zap.String("resource", resource),
				zap.Error(err))...)
		return port.Page{}, &domain.ErrConnection{Host: conn.Host(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.metrics.RecordUpstreamRequest(resource, observability.OutcomeError, duration)
		c.logger.Warn("oracle returned error status",
			append(observability.ConnFields(conn),
				zap.String("resource", resource),
				zap.Int("status", resp.StatusCode))...)
		return port.Page{}, statusError(resp.StatusCode, resource)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordUpstreamRequest(resource, observability.OutcomeError, duration)
		return port.Page{}, &domain.ErrConnection{Host: conn.Host(), Err: err}
	}

	var envelope struct {
		Items   []domain.Record `json:"items"`
		HasMore bool            `json:"hasMore"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.metrics.RecordUpstreamRequest(resource, observability.OutcomeError, duration)
		c.logger.Warn("oracle returned malformed payload",
			append(observability.ConnFields(conn),
				zap.String("resource", resource),
				zap.Error(err))...)
		return port.Page{}, &domain.ErrService{Err: err}
	}

	c.metrics.RecordUpstreamRequest(resource, observability.OutcomeSuccess, duration)
	c.logger.Debug("oracle page fetched",
		append(observability.ConnFields(conn),
			zap.String("resource", resource),
			zap.Int("offset", offset),
			zap.Int("items", len(envelope.Items)),
			zap.Bool("has_more", envelope.HasMore),
			zap.Duration("duration", duration))...)

	return port.Page{Items: envelope.Items, HasMore: envelope.HasMore}, nil
}

// collectionURL builds the resource URL. The filter expression rides in
// "q"; limit and offset control the page window.
func (c *Client) collectionURL(conn domain.Connection, resource, filter string, limit, offset int) string {
	base := strings.TrimRight(conn.BaseURL, "/")

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	if filter != "" {
		params.Set("q", filter)
	}
	return base + apiBasePath + resource + "?" + params.Encode()
}

func (c *Client) httpClientFor(conn domain.Connection) *http.Client {
	if conn.VerifySSL {
		return c.verifying
	}
	return c.insecure
}

// breakerFor returns the circuit breaker for one upstream host,
// creating it on first use. Keyed by host only; credentials never form
// part of the key.
func (c *Client) breakerFor(host string) *gobreaker.CircuitBreaker {
	return c.breakers.GetOrCreate(host, func() *gobreaker.CircuitBreaker {
		c.logger.Debug("creating circuit breaker", zap.String("oracle_host", host))
		return resilience.NewCircuitBreaker(host, c.onBreakerChange, isCallerError)
	})
}

func (c *Client) onBreakerChange(host string, from, to gobreaker.State) {
	c.logger.Info("circuit breaker state change",
		zap.String("oracle_host", host),
		zap.String("from", from.String()),
		zap.String("to", to.String()))
	if to == gobreaker.StateOpen {
		c.metrics.IncrBreakerOpen(host)
	}
}

// isCallerError reports whether an error says something about the
// caller rather than the host. Bad credentials or an unknown resource
// must not open the breaker for everyone else.
func isCallerError(err error) bool {
	if err == nil {
		return true
	}
	var authErr *domain.ErrAuthentication
	var notFound *domain.ErrNotFound
	return errors.As(err, &authErr) || errors.As(err, &notFound)
}

// statusError maps a non-2xx status onto the domain error taxonomy.
func statusError(status int, resource string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &domain.ErrAuthentication{Status: status}
	case status == http.StatusNotFound:
		return &domain.ErrNotFound{Resource: resource}
	default:
		return &domain.ErrService{Status: status}
	}
}
