package repository

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRecordNotFound is returned when an attendance record is not found.
var ErrRecordNotFound = errors.New("attendance record not found")

// AttendanceRepository defines the persistence operations on the attendance
// ledger. The ledger is the only shared mutable resource of the ingestion
// core; all writes go through GetOrCreateForUpdate + Save inside one
// transaction so concurrent cycles cannot race on the same (employee, date)
// row.
type AttendanceRepository interface {
	// GetOrCreateForUpdate fetches the record for (employee, date) with a
	// row-level lock, creating it with status "present" when absent. The
	// returned bool reports whether the record was created. Must be called
	// on a transaction-bound repository.
	GetOrCreateForUpdate(ctx context.Context, employeeID uuid.UUID, date time.Time, terminalID uuid.UUID) (*entity.AttendanceRecord, bool, error)

	// Save persists mutations made to a fetched record.
	Save(ctx context.Context, record *entity.AttendanceRecord) error

	// CountByDate returns the number of ledger rows for one calendar day.
	CountByDate(ctx context.Context, date time.Time) (int64, error)

	// CountAll returns the total number of ledger rows.
	CountAll(ctx context.Context) (int64, error)
}
