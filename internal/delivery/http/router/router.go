// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"timeclock/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OpsHandler *handler.OpsHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	opsHandler *handler.OpsHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		opsHandler: params.OpsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.GET("/status", r.opsHandler.GetStatus)

	schedulerGroup := e.Group("/scheduler")
	{
		schedulerGroup.POST("/start", r.opsHandler.StartScheduler)
		schedulerGroup.POST("/stop", r.opsHandler.StopScheduler)
	}

	pollGroup := e.Group("/poll")
	{
		pollGroup.POST("/run", r.opsHandler.RunPoll)
	}
}
