// Package handler contains the HTTP handlers for the operations API.
package handler

import (
	"log/slog"
	"net/http"

	"timeclock/internal/delivery/http/response"
	"timeclock/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OpsHandlerParams holds dependencies for OpsHandler, injected by Fx.
type OpsHandlerParams struct {
	fx.In

	Scheduler usecase.Scheduler
	Poller    usecase.FleetPoller
	Logger    *slog.Logger
}

// OpsHandler exposes the daemon's operational controls: status, scheduler
// start/stop and on-demand fleet passes.
type OpsHandler struct {
	scheduler usecase.Scheduler
	poller    usecase.FleetPoller
	logger    *slog.Logger
}

// NewOpsHandler is the constructor for OpsHandler
func NewOpsHandler(params OpsHandlerParams) *OpsHandler {
	return &OpsHandler{
		scheduler: params.Scheduler,
		poller:    params.Poller,
		logger:    params.Logger,
	}
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Running             bool    `json:"running"`
	ActiveTerminals     int64   `json:"active_terminals"`
	TodayRecords        int64   `json:"today_records"`
	TotalRecords        int64   `json:"total_records"`
	PollIntervalSeconds float64 `json:"poll_interval_seconds"`
}

// GetStatus reports the scheduler state and ledger counters.
func (h *OpsHandler) GetStatus(c echo.Context) error {
	status, err := h.scheduler.Status(c.Request().Context())
	if err != nil {
		h.logger.Error("status query failed", slog.Any("error", err))

		return response.InternalServerError(c, "STATUS_QUERY_FAILED", "Failed to query scheduler status")
	}

	return response.Success(c, http.StatusOK, StatusResponse{
		Running:             status.Running,
		ActiveTerminals:     status.Terminals,
		TodayRecords:        status.TodayRecords,
		TotalRecords:        status.TotalRecords,
		PollIntervalSeconds: status.Interval.Seconds(),
	}, "")
}

// StartScheduler starts the background poll loop. Starting an already
// running scheduler succeeds without side effects.
func (h *OpsHandler) StartScheduler(c echo.Context) error {
	if err := h.scheduler.Start(c.Request().Context()); err != nil {
		h.logger.Error("scheduler start failed", slog.Any("error", err))

		return response.InternalServerError(c, "SCHEDULER_START_FAILED", "Failed to start scheduler")
	}

	return response.Success(c, http.StatusOK, nil, "Scheduler started")
}

// StopScheduler stops the background poll loop, waiting out any in-flight
// fleet pass.
func (h *OpsHandler) StopScheduler(c echo.Context) error {
	if err := h.scheduler.Stop(c.Request().Context()); err != nil {
		h.logger.Error("scheduler stop failed", slog.Any("error", err))

		return response.InternalServerError(c, "SCHEDULER_STOP_FAILED", "Failed to stop scheduler")
	}

	return response.Success(c, http.StatusOK, nil, "Scheduler stopped")
}

// PollRunResponse is the body of POST /poll/run.
type PollRunResponse struct {
	Synced      int `json:"synced"`
	Errors      int `json:"errors"`
	Unreachable int `json:"unreachable"`
}

// RunPoll performs one synchronous fleet pass, independent of the scheduler.
// Used for backfills and for verifying a fleet change without waiting for
// the next tick.
func (h *OpsHandler) RunPoll(c echo.Context) error {
	summary, err := h.poller.RunOnce(c.Request().Context())
	if err != nil {
		h.logger.Error("manual fleet pass failed", slog.Any("error", err))

		return response.InternalServerError(c, "POLL_RUN_FAILED", "Failed to run fleet pass")
	}

	return response.Success(c, http.StatusOK, PollRunResponse{
		Synced:      summary.Synced,
		Errors:      summary.Errors,
		Unreachable: summary.Unreachable,
	}, "Fleet pass finished")
}
