package entity

import (
	"time"

	"github.com/google/uuid"
)

// Attendance status values as recorded on the ledger.
const (
	StatusPresent = "present"
)

// AttendanceRecord is the ledger row for one employee on one calendar day.
// CheckInAt and CheckOutAt fill monotonically: each is set at most once and
// never overwritten, so replaying the same punches is a no-op.
type AttendanceRecord struct {
	ID         uuid.UUID  `json:"id"`
	EmployeeID uuid.UUID  `json:"employee_id"`
	Date       time.Time  `json:"date"` // calendar day, midnight, date-only semantics.
	CheckInAt  *time.Time `json:"check_in_at"`
	CheckOutAt *time.Time `json:"check_out_at"`
	Status     string     `json:"status"`
	TerminalID *uuid.UUID `json:"terminal_id"` // terminal that last contributed a timestamp.
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
