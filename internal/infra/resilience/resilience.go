// Package resilience provides fault-tolerance patterns for the Oracle
// upstream: circuit breaker and bulkhead. There is no retry helper; a
// failed upstream call surfaces immediately as a typed error and the
// calling agent decides whether to try again.
package resilience

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

// OnStateChange is notified when a breaker changes state; used to count
// open transitions per upstream host.
type OnStateChange func(host string, from, to gobreaker.State)

// NewCircuitBreaker creates a circuit breaker for one upstream host.
// isSuccessful decides which errors count against the host; nil treats
// every error as a failure. Callers use it to keep caller-side errors
// (bad credentials, unknown resources) from opening the breaker.
func NewCircuitBreaker(host string, onChange OnStateChange, isSuccessful func(error) bool) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        host,
		MaxRequests: 3,                // half-open: allow 3 requests
		Interval:    30 * time.Second, // closed: reset counters every 30s
		Timeout:     10 * time.Second, // open -> half-open after 10s
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if onChange != nil {
				onChange(name, from, to)
			}
		},
		IsSuccessful: isSuccessful,
	})
}

// Bulkhead limits concurrent access to a resource.
type Bulkhead struct {
	sem chan struct{}
}

// NewBulkhead creates a bulkhead with the given max concurrency.
func NewBulkhead(maxConcurrency int) *Bulkhead {
	return &Bulkhead{sem: make(chan struct{}, maxConcurrency)}
}

// Acquire blocks until a slot is available or context is cancelled.
func (b *Bulkhead) Acquire(ctx context.Context) error {
	select {
	case b.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot.
func (b *Bulkhead) Release() {
	<-b.sem
}
