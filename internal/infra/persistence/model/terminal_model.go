package model

import (
	"time"

	"github.com/google/uuid"
)

// TerminalModel is the GORM-specific struct for the 'terminals' table.
// It represents one biometric terminal the poller visits.
type TerminalModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name       string    `gorm:"type:varchar(100);not null"`
	IPAddress  string    `gorm:"type:varchar(45);not null;uniqueIndex:idx_terminals_endpoint"`
	Port       int       `gorm:"not null;default:4370;uniqueIndex:idx_terminals_endpoint"`
	Family     string    `gorm:"type:varchar(50);not null;default:'zkteco'"`
	OfficeID   uuid.UUID `gorm:"type:uuid;not null;index"`
	IsActive   bool      `gorm:"not null;default:true;index"`
	LastSyncAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (TerminalModel) TableName() string {
	return "terminals"
}
