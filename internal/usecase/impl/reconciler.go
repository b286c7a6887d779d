// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/repository"
	"timeclock/internal/errors"
	"timeclock/internal/usecase"
)

// Punches before noon count as morning; a lone morning punch is a check-in,
// a lone afternoon punch is a check-out.
const noonHour = 12

type punchReconciler struct {
	directory repository.EmployeeDirectory
	logger    *slog.Logger
}

// NewPunchReconciler creates a new punch reconciler instance.
func NewPunchReconciler(directory repository.EmployeeDirectory, logger *slog.Logger) usecase.PunchReconciler {
	return &punchReconciler{
		directory: directory,
		logger:    logger,
	}
}

// dayBucket collects one employee's punches for one local calendar day.
type dayBucket struct {
	employee *entity.Employee
	date     time.Time // UTC midnight of the local calendar day.
	punches  []entity.RawPunch
}

// Reconcile buckets punches by (employee, local day) and derives one
// check-in/check-out pair per bucket:
//   - one punch: check-in when before noon, check-out otherwise;
//   - two or more: earliest is check-in, latest is check-out, interior
//     punches are discarded.
func (r *punchReconciler) Reconcile(ctx context.Context, punches []entity.RawPunch, loc *time.Location) ([]usecase.DayCandidate, usecase.ReconcileStats) {
	var stats usecase.ReconcileStats

	// Resolve each distinct biometric id once per pass.
	employees := map[string]*entity.Employee{}
	unknown := map[string]bool{}

	buckets := map[string]*dayBucket{}
	var order []string

	for _, punch := range punches {
		ts := punch.Timestamp.In(loc)

		emp, ok := r.resolve(ctx, punch.BiometricID, employees, unknown, &stats)
		if !ok {
			continue
		}
		stats.Resolved++

		year, month, day := ts.Date()
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		key := punch.BiometricID + "|" + date.Format(time.DateOnly)

		bucket, exists := buckets[key]
		if !exists {
			bucket = &dayBucket{employee: emp, date: date}
			buckets[key] = bucket
			order = append(order, key)
		}

		punch.Timestamp = ts
		bucket.punches = append(bucket.punches, punch)
	}

	// Stable output order: bucket date, then biometric id.
	sort.Slice(order, func(i, j int) bool {
		a, b := buckets[order[i]], buckets[order[j]]
		if !a.date.Equal(b.date) {
			return a.date.Before(b.date)
		}

		return a.employee.BiometricID < b.employee.BiometricID
	})

	candidates := make([]usecase.DayCandidate, 0, len(order))
	for _, key := range order {
		candidates = append(candidates, deriveCandidate(buckets[key]))
	}

	return candidates, stats
}

// resolve looks up a biometric id, caching hits and misses for the pass.
// Misses and lookup failures are counted per punch, not per id.
func (r *punchReconciler) resolve(ctx context.Context, biometricID string, employees map[string]*entity.Employee, unknown map[string]bool, stats *usecase.ReconcileStats) (*entity.Employee, bool) {
	if emp, ok := employees[biometricID]; ok {
		return emp, true
	}
	if unknown[biometricID] {
		stats.Unresolved++

		return nil, false
	}

	emp, err := r.directory.FindByBiometricID(ctx, biometricID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			r.logger.Warn("punch references unknown biometric id",
				slog.String("biometricID", biometricID))
			unknown[biometricID] = true
			stats.Unresolved++

			return nil, false
		}

		r.logger.Error("employee directory lookup failed",
			slog.String("biometricID", biometricID),
			slog.Any("error", err))
		stats.Failed++

		return nil, false
	}

	employees[biometricID] = emp

	return emp, true
}

func deriveCandidate(bucket *dayBucket) usecase.DayCandidate {
	sort.Slice(bucket.punches, func(i, j int) bool {
		return bucket.punches[i].Timestamp.Before(bucket.punches[j].Timestamp)
	})

	candidate := usecase.DayCandidate{
		EmployeeID:   bucket.employee.ID,
		EmployeeName: bucket.employee.DisplayName,
		BiometricID:  bucket.employee.BiometricID,
		Date:         bucket.date,
		TerminalID:   bucket.punches[0].TerminalID,
	}

	if len(bucket.punches) == 1 {
		ts := bucket.punches[0].Timestamp
		if ts.Hour() < noonHour {
			candidate.CheckInAt = &ts
		} else {
			candidate.CheckOutAt = &ts
		}

		return candidate
	}

	first := bucket.punches[0].Timestamp
	last := bucket.punches[len(bucket.punches)-1].Timestamp
	candidate.CheckInAt = &first
	candidate.CheckOutAt = &last

	return candidate
}
