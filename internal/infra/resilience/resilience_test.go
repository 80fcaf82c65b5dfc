package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"github.com/deandrade/oracle-ar-mcp/internal/infra/resilience"
)

func TestCircuitBreaker_OpensAfterFailures(t *testing.T) {
	opened := 0
	cb := resilience.NewCircuitBreaker("fa-test.oraclecloud.com", func(host string, from, to gobreaker.State) {
		if to == gobreaker.StateOpen {
			opened++
			if host != "fa-test.oraclecloud.com" {
				t.Errorf("expected host in state change, got %s", host)
			}
		}
	}, nil)

	boom := errors.New("connection refused")
	for i := 0; i < 6; i++ {
		_, _ = cb.Execute(func() (any, error) {
			return nil, boom
		})
	}

	if cb.State() != gobreaker.StateOpen {
		t.Fatalf("expected open breaker after repeated failures, got %v", cb.State())
	}
	if opened != 1 {
		t.Errorf("expected 1 open transition, got %d", opened)
	}

	// Open breaker fails fast without invoking fn.
	called := false
	_, err := cb.Execute(func() (any, error) {
		called = true
		return nil, nil
	})
	if err == nil {
		t.Fatal("expected fail-fast error from open breaker")
	}
	if called {
		t.Error("open breaker must not invoke the request")
	}
}

func TestCircuitBreaker_StaysClosedOnSuccess(t *testing.T) {
	cb := resilience.NewCircuitBreaker("ok-host", nil, nil)

	for i := 0; i < 10; i++ {
		if _, err := cb.Execute(func() (any, error) { return nil, nil }); err != nil {
			t.Fatalf("expected success, got %v", err)
		}
	}
	if cb.State() != gobreaker.StateClosed {
		t.Fatalf("expected closed breaker, got %v", cb.State())
	}
}

func TestCircuitBreaker_IgnoresClassifiedErrors(t *testing.T) {
	badCreds := errors.New("authentication failed")
	cb := resilience.NewCircuitBreaker("fa-test.oraclecloud.com", nil, func(err error) bool {
		return err == nil || errors.Is(err, badCreds)
	})

	for i := 0; i < 10; i++ {
		_, err := cb.Execute(func() (any, error) {
			return nil, badCreds
		})
		if !errors.Is(err, badCreds) {
			t.Fatalf("expected the original error back, got %v", err)
		}
	}

	if cb.State() != gobreaker.StateClosed {
		t.Fatalf("caller errors must not open the breaker, got %v", cb.State())
	}
}

func TestBulkhead_AcquireRelease(t *testing.T) {
	bh := resilience.NewBulkhead(2)

	if err := bh.Acquire(context.Background()); err != nil {
		t.Fatalf("expected acquire, got %v", err)
	}
	if err := bh.Acquire(context.Background()); err != nil {
		t.Fatalf("expected acquire, got %v", err)
	}

	// Third acquire should block; bound the wait with a short timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := bh.Acquire(ctx)
	if err == nil {
		t.Fatal("expected timeout on third acquire")
	}

	// Release one slot
	bh.Release()

	if err := bh.Acquire(context.Background()); err != nil {
		t.Fatalf("expected acquire after release, got %v", err)
	}
}
