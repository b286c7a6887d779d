// Package service defines contracts for external collaborators of the domain.
package service

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrTerminalUnreachable is returned when a terminal cannot be dialed or
// stops responding mid-session. The fleet poller skips the terminal for the
// cycle; it stays active for the next one.
var ErrTerminalUnreachable = errors.New("terminal unreachable")

// TerminalDialer opens sessions against physical clock-in terminals.
type TerminalDialer interface {
	// Dial establishes a session with the terminal. Failures wrap
	// ErrTerminalUnreachable.
	Dial(ctx context.Context, terminal *entity.Terminal) (TerminalSession, error)
}

// TerminalSession is a live connection to one terminal. Callers must Close
// the session on every exit path.
type TerminalSession interface {
	// FetchPunches reads the terminal's stored attendance log. Terminals do
	// not expose only-new punches; overlapping windows across cycles are
	// expected and handled downstream.
	FetchPunches(ctx context.Context) ([]entity.RawPunch, error)

	// Close releases the session.
	Close() error
}
