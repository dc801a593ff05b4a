// retry.go wraps a provider call with a per-attempt timeout and a
// bounded retry with doubling backoff. Transport failures are retried;
// contract violations in the parsed response are not (the parser runs
// after this layer and its errors are fatal per attempt).
package ai

import (
	"context"
	"fmt"
	"time"

	"insightagent/applog"
)

const initialBackoff = 2 * time.Second

// AnalyzeWithRetry calls provider.Analyze with a timeout per attempt and
// up to retries additional attempts after failures, doubling the delay
// between attempts. The parent context cancels the whole sequence.
func AnalyzeWithRetry(ctx context.Context, provider Provider, prompt string, timeout time.Duration, retries int) (string, error) {
	if retries < 0 {
		retries = 0
	}

	var lastErr error
	backoff := initialBackoff
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			applog.Warn("model call attempt %d/%d failed, retrying in %s: %v",
				attempt, retries+1, backoff, lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			backoff *= 2
		}

		callCtx, cancel := context.WithTimeout(ctx, timeout)
		response, err := provider.Analyze(callCtx, prompt)
		cancel()
		if err == nil {
			return response, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", fmt.Errorf("model call failed after %d attempts: %w", retries+1, lastErr)
}
