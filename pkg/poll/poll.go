// Package poll waits for asynchronous provider operations by repeatedly
// evaluating a condition at a fixed interval until it holds, fails, or a
// bounded timeout expires.
package poll

import (
	"context"
	"fmt"
	"launcher/pkg/logger"
	"launcher/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

// Condition is evaluated on every attempt. It returns the observed value,
// whether polling is complete, and an error that aborts polling immediately.
type Condition[T any] func(ctx context.Context) (T, bool, error)

// Options configure a poll loop.
type Options struct {
	// Interval is the fixed delay between attempts.
	Interval time.Duration
	// Timeout bounds the whole loop. Zero means no bound beyond ctx.
	Timeout time.Duration
	// Description names the awaited condition in logs and timeout errors.
	Description string
}

// Until evaluates cond immediately and then once per Interval until it reports
// done, returns an error, or Timeout expires. On timeout it returns an
// serrors.ErrTimeout error together with the last observed value.
func Until[T any](ctx context.Context, opts Options, cond Condition[T]) (T, error) {
	var last T

	if opts.Interval <= 0 {
		return last, serrors.With(serrors.ErrBadRequest, "poll interval must be positive")
	}

	var deadline <-chan time.Time
	if opts.Timeout > 0 {
		timer := time.NewTimer(opts.Timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		value, done, err := cond(ctx)
		last = value
		if err != nil {
			return last, err
		}
		if done {
			return last, nil
		}

		logger.Debug(ctx, "condition not met yet",
			zap.String("waitingFor", opts.Description),
			zap.Int("attempt", attempt))

		select {
		case <-ctx.Done():
			return last, fmt.Errorf("stopped waiting for %s: %w", opts.Description, ctx.Err())
		case <-deadline:
			return last, serrors.With(serrors.ErrTimeout,
				"timed out after %s waiting for %s", opts.Timeout, opts.Description)
		case <-ticker.C:
		}
	}
}
