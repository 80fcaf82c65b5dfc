package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
)

// Outcome labels for tool calls and upstream requests.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds all Prometheus metrics for the AR MCP server.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	toolCalls        *prometheus.CounterVec
	toolDuration     *prometheus.HistogramVec
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	upstreamPages    prometheus.Counter
	breakerOpens     *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		toolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "armcp_tool_calls_total",
				Help: "Total tool invocations by tool and outcome.",
			},
			[]string{"tool", "outcome"},
		),
		toolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "armcp_tool_duration_seconds",
				Help:    "Duration of tool invocations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
		upstreamRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "armcp_oracle_requests_total",
				Help: "Total Oracle REST requests by resource and outcome.",
			},
			[]string{"resource", "outcome"},
		),
		upstreamDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "armcp_oracle_request_duration_seconds",
				Help:    "Duration of Oracle REST requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource"},
		),
		upstreamPages: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "armcp_oracle_pages_fetched_total",
				Help: "Total pages drained by paginated fetches.",
			},
		),
		breakerOpens: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "armcp_breaker_opens_total",
				Help: "Circuit breaker open transitions by upstream host.",
			},
			[]string{"host"},
		),
	}
}

// RecordToolCall records one tool invocation with its outcome and duration.
func (m *Metrics) RecordToolCall(tool, outcome string, d time.Duration) {
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
	m.toolDuration.WithLabelValues(tool).Observe(d.Seconds())
}

// RecordUpstreamRequest records one Oracle REST request.
func (m *Metrics) RecordUpstreamRequest(resource, outcome string, d time.Duration) {
	m.upstreamRequests.WithLabelValues(resource, outcome).Inc()
	m.upstreamDuration.WithLabelValues(resource).Observe(d.Seconds())
}

// IncrPageFetched counts one drained page.
func (m *Metrics) IncrPageFetched() {
	m.upstreamPages.Inc()
}

// IncrBreakerOpen counts a breaker opening for an upstream host.
func (m *Metrics) IncrBreakerOpen(host string) {
	m.breakerOpens.WithLabelValues(host).Inc()
}

// GetToolSnapshot sums the tool-call counters into the JSON snapshot
// served by GET /v1/metrics/tools. The caller supplies the tool names
// it registered; resources are the known Oracle collections.
func (m *Metrics) GetToolSnapshot(tools, resources []string) *domain.ToolMetrics {
	var total, errs int64
	byTool := make(map[string]int64, len(tools))
	for _, tool := range tools {
		ok := int64(getCounterValue(m.toolCalls, tool, OutcomeSuccess))
		bad := int64(getCounterValue(m.toolCalls, tool, OutcomeError))
		byTool[tool] = ok + bad
		total += ok + bad
		errs += bad
	}

	var upstream, upstreamErrs int64
	for _, resource := range resources {
		upstream += int64(getCounterValue(m.upstreamRequests, resource, OutcomeSuccess))
		bad := int64(getCounterValue(m.upstreamRequests, resource, OutcomeError))
		upstream += bad
		upstreamErrs += bad
	}

	errorRate := float64(0)
	if total > 0 {
		errorRate = float64(errs) / float64(total)
	}

	return &domain.ToolMetrics{
		TotalCalls:       total,
		Errors:           errs,
		ErrorRate:        errorRate,
		CallsByTool:      byTool,
		UpstreamRequests: upstream,
		UpstreamErrors:   upstreamErrs,
		Period:           "since_start",
	}
}

// getCounterValue extracts the current float64 value from a CounterVec
// for a given label combination.
func getCounterValue(cv *prometheus.CounterVec, labels ...string) float64 {
	counter := cv.WithLabelValues(labels...)
	m := &dto.Metric{}
	if err := counter.(prometheus.Metric).Write(m); err != nil {
		return 0
	}
	if m.Counter != nil && m.Counter.Value != nil {
		return *m.Counter.Value
	}
	return 0
}
