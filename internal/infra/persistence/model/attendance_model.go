package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecordModel is the GORM-specific struct for the 'attendance_records'
// table. One row per employee per calendar day; the composite unique index is
// what makes replayed punch windows idempotent at the database level.
type AttendanceRecordModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_employee_date"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_employee_date;index"`
	CheckInAt  *time.Time
	CheckOutAt *time.Time
	Status     string     `gorm:"type:varchar(20);not null;default:'present'"`
	TerminalID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}
