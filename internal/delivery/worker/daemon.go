// Package worker hosts the background poll daemon as a delivery, so the
// entrypoint starts it the same way it starts the HTTP server.
package worker

import (
	"context"
	"log/slog"

	"timeclock/config"
	"timeclock/internal/delivery"
	"timeclock/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DaemonParams holds dependencies for the poll daemon
type DaemonParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Scheduler usecase.Scheduler
}

type pollDaemon struct {
	cfg       *config.Config
	logger    *slog.Logger
	scheduler usecase.Scheduler
}

// NewDaemon creates the poll daemon delivery. The scheduler it wraps keeps
// running until shutdown, where the lifecycle hook waits out the in-flight
// fleet pass.
func NewDaemon(params DaemonParams) (delivery.Delivery, error) {
	daemon := &pollDaemon{
		cfg:       params.Cfg,
		logger:    params.Logger,
		scheduler: params.Scheduler,
	}

	params.Lc.Append(fx.Hook{
		OnStop: daemon.stop,
	})

	return daemon, nil
}

// Serve launches the poll loop. The loop itself runs in the background; the
// scheduler owns its goroutine.
func (d *pollDaemon) Serve(ctx context.Context) error {
	d.logger.Info("Starting poll daemon",
		slog.Duration("interval", d.cfg.Poller.Interval))

	if err := d.scheduler.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start poll daemon")
	}

	return nil
}

// stop gracefully shuts down the poll daemon
func (d *pollDaemon) stop(ctx context.Context) error {
	d.logger.Info("Shutting down poll daemon")

	return d.scheduler.Stop(ctx)
}
