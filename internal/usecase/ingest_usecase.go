// Package usecase defines the application's use case interfaces and the
// types they exchange.
package usecase

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// DayCandidate is a reconciled check-in/check-out proposal for one employee
// on one calendar day. Either timestamp may be nil when the day's punches
// did not produce it.
type DayCandidate struct {
	EmployeeID   uuid.UUID
	EmployeeName string
	BiometricID  string
	Date         time.Time // calendar day at UTC midnight, date-only semantics.
	CheckInAt    *time.Time
	CheckOutAt   *time.Time
	TerminalID   uuid.UUID
}

// ReconcileStats counts the fate of the punches fed into one reconciliation
// pass.
type ReconcileStats struct {
	// Resolved is the number of punches whose biometric id mapped to a
	// directory employee.
	Resolved int

	// Unresolved is the number of punches carrying an id the directory does
	// not know. They are reported and excluded, never silently dropped.
	Unresolved int

	// Failed is the number of punches dropped because the directory lookup
	// itself failed (infrastructure error, not a missing mapping).
	Failed int
}

// PollSummary aggregates the outcome of one full fleet pass.
type PollSummary struct {
	// Synced is the number of ledger records actually updated.
	Synced int `json:"synced"`

	// Errors is the number of data failures: unresolved punches and
	// per-candidate write failures.
	Errors int `json:"errors"`

	// Unreachable is the number of terminals skipped because they could not
	// be dialed or read this cycle. Counted apart from data errors; the
	// terminals stay active for the next cycle.
	Unreachable int `json:"unreachable"`
}

// Add folds another summary into s.
func (s *PollSummary) Add(other PollSummary) {
	s.Synced += other.Synced
	s.Errors += other.Errors
	s.Unreachable += other.Unreachable
}

// PunchReconciler derives per-day check-in/check-out candidates from the raw
// punches of one terminal fetch.
type PunchReconciler interface {
	// Reconcile buckets punches by (resolved employee, calendar day in loc),
	// applies the first/last derivation rule and returns the candidates in a
	// stable order. Lookup misses and failures are counted in the stats, not
	// returned as errors.
	Reconcile(ctx context.Context, punches []entity.RawPunch, loc *time.Location) ([]DayCandidate, ReconcileStats)
}

// LedgerWriter applies a candidate to the attendance ledger.
type LedgerWriter interface {
	// Apply upserts the (employee, date) record, filling check-in/check-out
	// only where currently unset. Returns whether a write occurred.
	// Applying the same candidate twice is safe.
	Apply(ctx context.Context, candidate DayCandidate) (bool, error)
}

// FleetPoller drives one full pass over the active terminal fleet.
type FleetPoller interface {
	// RunOnce polls every active terminal once, isolating per-terminal and
	// per-candidate failures, and returns the aggregated summary.
	RunOnce(ctx context.Context) (PollSummary, error)
}
