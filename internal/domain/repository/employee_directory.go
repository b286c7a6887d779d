package repository

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrEmployeeNotFound is returned when a biometric id resolves to no
// directory employee. Callers treat it as reportable, not fatal.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeDirectory is the read-only lookup into the externally owned user
// directory, keyed by the id terminals report punches under.
type EmployeeDirectory interface {
	// FindByBiometricID resolves a device-assigned id to an employee.
	// Returns ErrEmployeeNotFound when the id is unknown.
	FindByBiometricID(ctx context.Context, biometricID string) (*entity.Employee, error)
}
