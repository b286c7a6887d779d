package impl

import (
	"context"
	"log/slog"

	"timeclock/internal/domain/repository"
	"timeclock/internal/usecase"

	"github.com/pkg/errors"
)

type ledgerWriter struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewLedgerWriter creates a new attendance ledger writer instance.
func NewLedgerWriter(txManager repository.TransactionManager, logger *slog.Logger) usecase.LedgerWriter {
	return &ledgerWriter{
		txManager: txManager,
		logger:    logger,
	}
}

// Apply upserts the candidate's (employee, date) record. Check-in and
// check-out fill independently and only when unset; an already-set field is
// never overwritten, so replaying overlapping punch windows cannot flip-flop
// a timestamp. The whole read-modify-write runs in one transaction with the
// row locked.
func (w *ledgerWriter) Apply(ctx context.Context, candidate usecase.DayCandidate) (bool, error) {
	var updated bool

	err := w.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		ledger := factory.NewAttendanceRepository()

		record, created, err := ledger.GetOrCreateForUpdate(ctx, candidate.EmployeeID, candidate.Date, candidate.TerminalID)
		if err != nil {
			return errors.Wrap(err, "failed to load attendance record")
		}
		if created {
			w.logger.Debug("created attendance record",
				slog.String("employee", candidate.EmployeeName),
				slog.Time("date", candidate.Date))
		}

		if candidate.CheckInAt != nil && record.CheckInAt == nil {
			record.CheckInAt = candidate.CheckInAt
			updated = true
			w.logger.Info("check-in recorded",
				slog.String("employee", candidate.EmployeeName),
				slog.Time("at", *candidate.CheckInAt))
		}

		if candidate.CheckOutAt != nil && record.CheckOutAt == nil {
			record.CheckOutAt = candidate.CheckOutAt
			updated = true
			w.logger.Info("check-out recorded",
				slog.String("employee", candidate.EmployeeName),
				slog.Time("at", *candidate.CheckOutAt))
		}

		if !updated {
			// Processed but nothing to change; the record keeps its
			// original terminal attribution.
			return nil
		}

		terminalID := candidate.TerminalID
		record.TerminalID = &terminalID

		if err := ledger.Save(ctx, record); err != nil {
			return errors.Wrap(err, "failed to save attendance record")
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return updated, nil
}
