package jobs

import (
	"fmt"
)

// RunObserver receives the result of every scheduled run.
type RunObserver interface {
	ObserveAutoAssign(outcome string)
	ObserveOutboxRelay(published int, err error)
}

// NopObserver discards run results.
type NopObserver struct{}

func (NopObserver) ObserveAutoAssign(string)      {}
func (NopObserver) ObserveOutboxRelay(int, error) {}

// Job is a scheduled background task.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
}

// NewJobManager creates a job manager over the given jobs.
func NewJobManager(jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs}
}

// StartAll starts all scheduled jobs in order.
// A failed start stops the jobs already running.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
		jm.started = append(jm.started, job)
	}
	return nil
}

// StopAll stops the started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
