package postgres

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/repository"
	"timeclock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// attendanceRepository implements the repository.AttendanceRepository interface.
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository is the constructor for attendanceRepository.
func NewAttendanceRepository(db *gorm.DB) repository.AttendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}

// GetOrCreateForUpdate loads the (employee, date) row with a FOR UPDATE lock,
// creating it first if absent. Meant to run inside txManager.Execute; the lock
// holds until that transaction commits, so two pollers reconciling overlapping
// punch windows serialize instead of double-writing.
func (repo *attendanceRepository) GetOrCreateForUpdate(ctx context.Context, employeeID uuid.UUID, date time.Time, terminalID uuid.UUID) (*entity.AttendanceRecord, bool, error) {
	record, err := repo.lockExisting(ctx, employeeID, date)
	if err == nil {
		return record, false, nil
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, false, err
	}

	recordM := &model.AttendanceRecordModel{
		EmployeeID: employeeID,
		Date:       date,
		Status:     entity.StatusPresent,
		TerminalID: &terminalID,
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Lost the create race; the winner's row exists now, lock that.
			record, err := repo.lockExisting(ctx, employeeID, date)

			return record, false, err
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, false, repository.ErrEmployeeNotFound
		}

		return nil, false, errors.Wrap(err, "failed to create attendance record")
	}

	return toAttendanceDomain(recordM), true, nil
}

func (repo *attendanceRepository) lockExisting(ctx context.Context, employeeID uuid.UUID, date time.Time) (*entity.AttendanceRecord, error) {
	var recordM model.AttendanceRecordModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("employee_id = ? AND date = ?", employeeID, date.Format(time.DateOnly)).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to lock attendance record")
	}

	return toAttendanceDomain(&recordM), nil
}

// Save persists the record's mutable fields.
func (repo *attendanceRepository) Save(ctx context.Context, record *entity.AttendanceRecord) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AttendanceRecordModel{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"check_in_at":  record.CheckInAt,
			"check_out_at": record.CheckOutAt,
			"status":       record.Status,
			"terminal_id":  record.TerminalID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save attendance record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// CountByDate returns the number of records for one calendar day.
func (repo *attendanceRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AttendanceRecordModel{}).
		Where("date = ?", date.Format(time.DateOnly)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count attendance records by date")
	}

	return count, nil
}

// CountAll returns the total size of the ledger.
func (repo *attendanceRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AttendanceRecordModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count attendance records")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAttendanceDomain converts a GORM AttendanceRecordModel to a domain AttendanceRecord entity.
func toAttendanceDomain(data *model.AttendanceRecordModel) *entity.AttendanceRecord {
	if data == nil {
		return nil
	}

	return &entity.AttendanceRecord{
		ID:         data.ID,
		EmployeeID: data.EmployeeID,
		Date:       data.Date,
		CheckInAt:  data.CheckInAt,
		CheckOutAt: data.CheckOutAt,
		Status:     data.Status,
		TerminalID: data.TerminalID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
