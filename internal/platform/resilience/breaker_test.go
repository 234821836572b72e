package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errUpstream = errors.New("upstream 503")

func fail(context.Context) error { return errUpstream }
func pass(context.Context) error { return nil }

func TestBreaker_Transitions(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second})
	now := time.Date(2026, 9, 6, 19, 30, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	ctx := context.Background()

	if err := b.Do(ctx, fail, nil); !errors.Is(err, errUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	_ = b.Do(ctx, fail, nil)
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after threshold, got %s", state)
	}
	if err := b.Do(ctx, pass, nil); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if state := b.State(); state != StateHalfOpen {
		t.Fatalf("expected half-open after timeout, got %s", state)
	}
	if err := b.Do(ctx, pass, nil); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestBreaker_FailedProbeReopens(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second})
	now := time.Date(2026, 9, 6, 19, 30, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	ctx := context.Background()

	_ = b.Do(ctx, fail, nil)
	now = now.Add(2 * time.Second)
	_ = b.Do(ctx, fail, nil)

	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
}

func TestBreaker_IgnoresNonFailures(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 1})
	notFound := errors.New("not found")

	err := b.Do(context.Background(), func(context.Context) error { return notFound }, func(err error) bool {
		return !errors.Is(err, notFound)
	})
	if !errors.Is(err, notFound) {
		t.Fatalf("expected caller error returned, got %v", err)
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("non-failure must not trip, got %s", state)
	}
}

func TestBreaker_DisabledAndNil(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 3; i++ {
		_ = b.Do(context.Background(), fail, nil)
	}
	if err := b.Do(context.Background(), pass, nil); err != nil {
		t.Fatalf("disabled breaker should allow, got %v", err)
	}

	var nilBreaker *Breaker
	if err := nilBreaker.Do(context.Background(), pass, nil); err != nil {
		t.Fatalf("nil breaker should allow, got %v", err)
	}
}
