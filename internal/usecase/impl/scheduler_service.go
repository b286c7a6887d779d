package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"timeclock/config"
	"timeclock/internal/domain/lifecycle"
	"timeclock/internal/domain/repository"
	"timeclock/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Poller     usecase.FleetPoller
	Terminals  repository.TerminalRepository
	Attendance repository.AttendanceRepository
}

// scheduler drives the poll loop on a fixed interval. State is instance
// scoped so independent schedulers (e.g. in tests) never share a flag.
type scheduler struct {
	poller     usecase.FleetPoller
	terminals  repository.TerminalRepository
	attendance repository.AttendanceRepository
	logger     *slog.Logger

	interval time.Duration
	loc      *time.Location

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(params SchedulerParams) (usecase.Scheduler, error) {
	loc, err := params.Config.Poller.Location()
	if err != nil {
		return nil, err
	}

	return &scheduler{
		poller:     params.Poller,
		terminals:  params.Terminals,
		attendance: params.Attendance,
		logger:     params.Logger,
		interval:   params.Config.Poller.Interval,
		loc:        loc,
	}, nil
}

// Start launches the background poll loop. A second Start while running is a
// logged no-op.
func (s *scheduler) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.logger.Warn("scheduler already running")

		return nil
	}

	// The loop outlives the Start call; it is bound to its own context and
	// stopped only through Stop.
	loopCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	go s.run(loopCtx, s.done)

	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))

	return nil
}

// Stop cancels the loop and waits, bounded, for the in-flight pass.
func (s *scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	s.logger.Info("scheduler stopping")
	s.cancel()

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.done:
	case <-waitCtx.Done():
		s.running = false

		return errors.New("scheduler stop timed out waiting for in-flight pass")
	}

	s.running = false
	s.logger.Info("scheduler stopped")

	return nil
}

// Status reports the daemon state plus ledger counters, the way the ops API
// exposes them.
func (s *scheduler) Status(ctx context.Context) (usecase.SchedulerStatus, error) {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	status := usecase.SchedulerStatus{
		Running:  running,
		Interval: s.interval,
	}

	terminals, err := s.terminals.CountActive(ctx)
	if err != nil {
		return status, errors.Wrap(err, "failed to count terminals")
	}
	status.Terminals = terminals

	now := time.Now().In(s.loc)
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	todayCount, err := s.attendance.CountByDate(ctx, today)
	if err != nil {
		return status, errors.Wrap(err, "failed to count today's records")
	}
	status.TodayRecords = todayCount

	total, err := s.attendance.CountAll(ctx)
	if err != nil {
		return status, errors.Wrap(err, "failed to count records")
	}
	status.TotalRecords = total

	return status, nil
}

// run is the poll loop. One iteration = one full fleet pass; a failing or
// panicking iteration is logged and the loop sleeps the normal interval
// before retrying, so a single bad cycle can never kill the daemon.
func (s *scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		s.iterate(ctx)

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.interval):
		}
	}
}

func (s *scheduler) iterate(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("poll iteration panicked", slog.Any("panic", r))
		}
	}()

	summary, err := s.poller.RunOnce(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("poll iteration failed", slog.Any("error", err))
		}

		return
	}

	if summary.Synced > 0 || summary.Errors > 0 {
		s.logger.Info("poll iteration finished",
			slog.Int("synced", summary.Synced),
			slog.Int("errors", summary.Errors),
			slog.Int("unreachable", summary.Unreachable))
	}
}
