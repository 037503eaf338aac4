package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the queue tables living next to
// the domain records, so a job can be inserted in the same transaction as the
// change that triggered it.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted. False means a
	// unique job with the same args is already queued.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
