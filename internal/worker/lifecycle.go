package worker

import (
	"context"
	"errors"
	"fmt"
	"launcher/internal/lifecycle"
	"launcher/pkg/logger"
	"launcher/pkg/serrors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// LaunchWorker is a River worker that runs lifecycle.Controller.Launch for the
// domain named in the job.
//
// Jobs are never retried: a failed launch has already reverted the domain and
// recorded the failure on it. A job for a domain that is busy or no longer in
// the expected state is cancelled.
type LaunchWorker struct {
	river.WorkerDefaults[lifecycle.LaunchJobArgs]

	controller lifecycle.Controller
	timeout    time.Duration
}

// NewLaunchWorker constructs a LaunchWorker. A zero timeout keeps River's
// default job timeout.
func NewLaunchWorker(controller lifecycle.Controller, timeout time.Duration) *LaunchWorker {
	return &LaunchWorker{controller: controller, timeout: timeout}
}

// Timeout bounds a single launch, which waits on certificate issuance.
func (w *LaunchWorker) Timeout(*river.Job[lifecycle.LaunchJobArgs]) time.Duration { return w.timeout }

// Work launches the domain.
func (w *LaunchWorker) Work(ctx context.Context, job *river.Job[lifecycle.LaunchJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("domainID", job.Args.DomainID))

	_, err := w.controller.Launch(ctx, job.Args.DomainID)

	return jobResult(ctx, "launch", err)
}

// UnlaunchWorker is a River worker that runs lifecycle.Controller.Unlaunch for
// the domain named in the job.
type UnlaunchWorker struct {
	river.WorkerDefaults[lifecycle.UnlaunchJobArgs]

	controller lifecycle.Controller
	timeout    time.Duration
}

// NewUnlaunchWorker constructs an UnlaunchWorker.
func NewUnlaunchWorker(controller lifecycle.Controller, timeout time.Duration) *UnlaunchWorker {
	return &UnlaunchWorker{controller: controller, timeout: timeout}
}

// Timeout bounds a single unlaunch, which waits on the distribution to deploy.
func (w *UnlaunchWorker) Timeout(*river.Job[lifecycle.UnlaunchJobArgs]) time.Duration { return w.timeout }

// Work unlaunches the domain.
func (w *UnlaunchWorker) Work(ctx context.Context, job *river.Job[lifecycle.UnlaunchJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("domainID", job.Args.DomainID))

	_, err := w.controller.Unlaunch(ctx, job.Args.DomainID)

	return jobResult(ctx, "unlaunch", err)
}

// jobResult maps the outcome of an operation to the River job result.
func jobResult(ctx context.Context, operation string, err error) error {
	if err == nil {
		logger.Info(ctx, "job completed", zap.String("operation", operation))

		return nil
	}

	if errors.Is(err, serrors.ErrConflict) || errors.Is(err, serrors.ErrNotFound) {
		logger.Warn(ctx, "job cancelled", zap.String("operation", operation), zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	return fmt.Errorf("could not %s domain: %w", operation, err)
}
