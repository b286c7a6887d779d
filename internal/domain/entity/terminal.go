// Package entity contains the core business objects of the project.
package entity

import (
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TerminalFamily tags the wire protocol a terminal speaks.
type TerminalFamily string

const (
	// FamilyZKTeco covers ZKTeco and ESSL clock-in terminals.
	FamilyZKTeco TerminalFamily = "zkteco"
)

// Terminal represents one physical biometric clock-in device.
// The registry is owned by external admin tooling; the ingestion core only
// reads it and stamps LastSyncAt after a successful fetch.
type Terminal struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	IPAddress  string         `json:"ip_address"`
	Port       int            `json:"port"`
	Family     TerminalFamily `json:"family"`
	OfficeID   uuid.UUID      `json:"office_id"`
	IsActive   bool           `json:"is_active"`
	LastSyncAt *time.Time     `json:"last_sync_at"` // nil until the first successful fetch.
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Addr returns the terminal's dialable host:port endpoint.
func (t *Terminal) Addr() string {
	return net.JoinHostPort(t.IPAddress, strconv.Itoa(t.Port))
}
