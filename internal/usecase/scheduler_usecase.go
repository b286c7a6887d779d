package usecase

import (
	"context"
	"time"
)

// SchedulerStatus is the daemon's externally visible state, mirrored by the
// ops API.
type SchedulerStatus struct {
	Running      bool          `json:"running"`
	Terminals    int64         `json:"terminals"`
	TodayRecords int64         `json:"today_records"`
	TotalRecords int64         `json:"total_records"`
	Interval     time.Duration `json:"interval"`
}

// Scheduler owns the 24/7 polling loop: Stopped -> Running -> Stopped.
type Scheduler interface {
	// Start launches the background poll loop. Calling Start while running
	// is a logged no-op, not an error.
	Start(ctx context.Context) error

	// Stop cancels the loop and waits, bounded, for the in-flight pass to
	// finish. Stopping a stopped scheduler is a no-op.
	Stop(ctx context.Context) error

	// Status reports the current daemon state and ledger counters.
	Status(ctx context.Context) (SchedulerStatus, error)
}
