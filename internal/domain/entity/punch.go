package entity

import (
	"time"

	"github.com/google/uuid"
)

// RawPunch is a single clock event as reported by a terminal. Punches are
// fetched per poll cycle and reconciled in memory; they are never persisted
// verbatim.
type RawPunch struct {
	// BiometricID is the on-device user identifier, as enrolled on the
	// terminal. It may not resolve to a directory employee.
	BiometricID string

	// Timestamp is the punch time. Terminals report naive local wall-clock
	// time; the fetch layer attaches the configured zone before the punch
	// reaches the reconciler.
	Timestamp time.Time

	// TerminalID is the registry id of the originating terminal.
	TerminalID uuid.UUID
}
