// Package worker runs lifecycle operations queued as River jobs.
package worker

import (
	"context"
	"fmt"
	"launcher/internal/config"
	"launcher/internal/lifecycle"
	"launcher/pkg/logger"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the worker pool.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently.
	MaxWorkers int
	// JobTimeout bounds a single launch or unlaunch.
	JobTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Worker.MaxWorkers,
		JobTimeout: cfg.Worker.JobTimeout,
	}
}

// Workers registers the lifecycle workers.
func Workers(controller lifecycle.Controller, options Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewLaunchWorker(controller, options.JobTimeout))
	river.AddWorker(workers, NewUnlaunchWorker(controller, options.JobTimeout))

	return workers
}

// Start creates a River client processing lifecycle jobs and starts it.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	controller lifecycle.Controller,
	options Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: Workers(controller, options),
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
