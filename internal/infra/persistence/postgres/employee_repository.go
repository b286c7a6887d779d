package postgres

import (
	"context"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/repository"
	"timeclock/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// employeeDirectory implements the repository.EmployeeDirectory interface.
type employeeDirectory struct {
	db *gorm.DB
}

// NewEmployeeDirectory is the constructor for employeeDirectory.
func NewEmployeeDirectory(db *gorm.DB) repository.EmployeeDirectory {
	return &employeeDirectory{
		db: db,
	}
}

// FindByBiometricID resolves the id enrolled on a terminal to an employee.
// Inactive employees resolve too; their old punches may still arrive from a
// device's retained log.
func (repo *employeeDirectory) FindByBiometricID(ctx context.Context, biometricID string) (*entity.Employee, error) {
	var employeeM model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("biometric_id = ?", biometricID).
		First(&employeeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEmployeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find employee by biometric ID")
	}

	return toEmployeeDomain(&employeeM), nil
}

// --- Mapper Functions ---

// toEmployeeDomain converts a GORM EmployeeModel to a domain Employee entity.
func toEmployeeDomain(data *model.EmployeeModel) *entity.Employee {
	if data == nil {
		return nil
	}

	return &entity.Employee{
		ID:          data.ID,
		BiometricID: data.BiometricID,
		DisplayName: data.DisplayName,
		OfficeID:    data.OfficeID,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
	}
}
