package lifecycle

import (
	"launcher/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// LaunchJobArgs contains the arguments of a launch job submitted to River.
type LaunchJobArgs struct {
	// DomainID is marked as unique so River keeps at most one unfinished
	// launch job per domain.
	DomainID domain.DomainID `json:"domainId" river:"unique"`
}

// Kind returns the River job kind used to register and dispatch the launch worker.
func (args LaunchJobArgs) Kind() string { return "LaunchDomainJob" }

// InsertOpts returns the River options used to enqueue a launch job.
func (args LaunchJobArgs) InsertOpts() river.InsertOpts { return insertOpts() }

// UnlaunchJobArgs contains the arguments of an unlaunch job submitted to River.
type UnlaunchJobArgs struct {
	DomainID domain.DomainID `json:"domainId" river:"unique"`
}

// Kind returns the River job kind used to register and dispatch the unlaunch worker.
func (args UnlaunchJobArgs) Kind() string { return "UnlaunchDomainJob" }

// InsertOpts returns the River options used to enqueue an unlaunch job.
func (args UnlaunchJobArgs) InsertOpts() river.InsertOpts { return insertOpts() }

// insertOpts disables retries: a failed operation reverts the domain and is
// reported through last_error instead of being attempted again.
func insertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			// unfinished jobs only, a domain can be launched again after it was unlaunched
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
