package model

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeModel is the GORM-specific struct for the 'employees' table.
// BiometricID is the numeric id enrolled on the terminals, kept as text
// because devices zero-pad it inconsistently.
type EmployeeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BiometricID string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	DisplayName string    `gorm:"type:varchar(255);not null"`
	OfficeID    uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
