// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTerminalNotFound is returned when a terminal is not found.
var ErrTerminalNotFound = errors.New("terminal not found")

// TerminalRepository defines read access to the device registry plus the
// single mutation the ingestion core performs: stamping last-sync.
type TerminalRepository interface {
	// ListActive retrieves all active terminals, ordered by name so fleet
	// passes visit devices in a stable order.
	ListActive(ctx context.Context) ([]*entity.Terminal, error)

	// CountActive returns the number of active terminals.
	CountActive(ctx context.Context) (int64, error)

	// UpdateLastSync stamps the terminal's last successful sync time.
	UpdateLastSync(ctx context.Context, terminalID uuid.UUID, syncedAt time.Time) error
}
