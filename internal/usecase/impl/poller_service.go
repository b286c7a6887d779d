package impl

import (
	"context"
	"log/slog"
	"time"

	"timeclock/config"
	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/repository"
	"timeclock/internal/domain/service"
	"timeclock/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FleetPollerParams holds dependencies for the fleet poller, injected by Fx.
type FleetPollerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Terminals  repository.TerminalRepository
	Dialer     service.TerminalDialer
	Reconciler usecase.PunchReconciler
	Ledger     usecase.LedgerWriter
}

type fleetPoller struct {
	terminals  repository.TerminalRepository
	dialer     service.TerminalDialer
	reconciler usecase.PunchReconciler
	ledger     usecase.LedgerWriter
	logger     *slog.Logger

	loc           *time.Location
	deviceTimeout time.Duration
	deviceDelay   time.Duration
}

// NewFleetPoller creates a new fleet poller instance.
func NewFleetPoller(params FleetPollerParams) (usecase.FleetPoller, error) {
	loc, err := params.Config.Poller.Location()
	if err != nil {
		return nil, err
	}

	return &fleetPoller{
		terminals:     params.Terminals,
		dialer:        params.Dialer,
		reconciler:    params.Reconciler,
		ledger:        params.Ledger,
		logger:        params.Logger,
		loc:           loc,
		deviceTimeout: params.Config.Poller.DeviceTimeout,
		deviceDelay:   params.Config.Poller.DeviceDelay,
	}, nil
}

// RunOnce performs one full fleet pass. A failing terminal never aborts the
// pass, and a failing candidate never loses the rest of its batch.
func (p *fleetPoller) RunOnce(ctx context.Context) (usecase.PollSummary, error) {
	var summary usecase.PollSummary

	terminals, err := p.terminals.ListActive(ctx)
	if err != nil {
		return summary, errors.Wrap(err, "failed to list active terminals")
	}

	p.logger.Info("fleet pass started", slog.Int("terminals", len(terminals)))

	for i, terminal := range terminals {
		if ctx.Err() != nil {
			break
		}

		// Politeness delay between terminals; some share one uplink and
		// rate-limit connections.
		if i > 0 && !p.pause(ctx) {
			break
		}

		summary.Add(p.pollTerminal(ctx, terminal))
	}

	p.logger.Info("fleet pass finished",
		slog.Int("synced", summary.Synced),
		slog.Int("errors", summary.Errors),
		slog.Int("unreachable", summary.Unreachable))

	return summary, nil
}

// pause waits out the inter-device delay. Returns false when the pass was
// cancelled while waiting.
func (p *fleetPoller) pause(ctx context.Context) bool {
	if p.deviceDelay <= 0 {
		return true
	}

	timer := time.NewTimer(p.deviceDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// pollTerminal fetches, reconciles and applies one terminal's punch log.
func (p *fleetPoller) pollTerminal(ctx context.Context, terminal *entity.Terminal) usecase.PollSummary {
	var summary usecase.PollSummary

	logger := p.logger.With(
		slog.String("terminal", terminal.Name),
		slog.String("addr", terminal.Addr()))

	dialCtx, cancel := context.WithTimeout(ctx, p.deviceTimeout)
	defer cancel()

	session, err := p.dialer.Dial(dialCtx, terminal)
	if err != nil {
		logger.Warn("terminal connection failed", slog.Any("error", err))
		summary.Unreachable++

		return summary
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warn("terminal session close failed", slog.Any("error", err))
		}
	}()

	punches, err := session.FetchPunches(dialCtx)
	if err != nil {
		logger.Warn("punch fetch failed", slog.Any("error", err))
		summary.Unreachable++

		return summary
	}

	if len(punches) == 0 {
		logger.Info("no punches on terminal")

		return summary
	}

	logger.Info("punches fetched", slog.Int("count", len(punches)))

	candidates, stats := p.reconciler.Reconcile(ctx, punches, p.loc)
	summary.Errors += stats.Unresolved + stats.Failed

	for _, candidate := range candidates {
		if ctx.Err() != nil {
			return summary
		}

		updated, err := p.ledger.Apply(ctx, candidate)
		if err != nil {
			logger.Error("ledger write failed",
				slog.String("employee", candidate.EmployeeName),
				slog.Time("date", candidate.Date),
				slog.Any("error", err))
			summary.Errors++

			continue
		}
		if updated {
			summary.Synced++
		}
	}

	if err := p.terminals.UpdateLastSync(ctx, terminal.ID, time.Now()); err != nil {
		logger.Warn("failed to stamp last sync", slog.Any("error", err))
	}

	return summary
}
