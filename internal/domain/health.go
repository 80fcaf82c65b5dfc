package domain

// ============================================================
// Health & Metrics API Responses
// ============================================================

// HealthStatus is returned by GET /healthz.
type HealthStatus struct {
	Status    string `json:"status"` // healthy, unhealthy
	Transport string `json:"transport"`
	Version   string `json:"version"`
}

// ToolMetrics is returned by GET /v1/metrics/tools: a point-in-time
// snapshot of tool-call counters since process start.
type ToolMetrics struct {
	TotalCalls       int64            `json:"totalCalls"`
	Errors           int64            `json:"errors"`
	ErrorRate        float64          `json:"errorRate"`
	CallsByTool      map[string]int64 `json:"callsByTool"`
	UpstreamRequests int64            `json:"upstreamRequests"`
	UpstreamErrors   int64            `json:"upstreamErrors"`
	Period           string           `json:"period"`
}
