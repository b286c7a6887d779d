package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the ingestion core's read-only view of the user directory.
// BiometricID is the identifier the employee is enrolled under on the
// terminals; it is the only key punches carry.
type Employee struct {
	ID          uuid.UUID `json:"id"`
	BiometricID string    `json:"biometric_id"`
	DisplayName string    `json:"display_name"`
	OfficeID    uuid.UUID `json:"office_id"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
