package ai

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// flakyProvider fails a fixed number of times, then succeeds.
type flakyProvider struct {
	failures int
	calls    int
}

func (f *flakyProvider) Name() string { return "flaky" }

func (f *flakyProvider) Analyze(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", fmt.Errorf("transient failure %d", f.calls)
	}
	return "ok", nil
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	p := &flakyProvider{}
	got, err := AnalyzeWithRetry(context.Background(), p, "prompt", time.Second, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" || p.calls != 1 {
		t.Fatalf("got %q after %d calls, want ok after 1", got, p.calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	p := &flakyProvider{failures: 10}
	_, err := AnalyzeWithRetry(context.Background(), p, "prompt", time.Second, 0)
	if err == nil {
		t.Fatalf("expected error after exhausted retries")
	}
	if p.calls != 1 {
		t.Fatalf("retries=0 must mean exactly 1 call, got %d", p.calls)
	}
}

func TestRetryStopsOnParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &flakyProvider{failures: 10}
	_, err := AnalyzeWithRetry(ctx, p, "prompt", time.Second, 5)
	if err == nil {
		t.Fatalf("expected cancellation error")
	}
	if p.calls > 1 {
		t.Fatalf("cancelled sequence kept retrying: %d calls", p.calls)
	}
}
