// Package router contains routing setup for the local gateway.
package router

import (
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/router/handler"
	"jobboard/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	JobHandler         *handler.JobHandler
	ApplicationHandler *handler.ApplicationHandler
	DashboardHandler   *handler.DashboardHandler
	GateMiddleware     *middleware.GateMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	jobHandler         *handler.JobHandler
	applicationHandler *handler.ApplicationHandler
	dashboardHandler   *handler.DashboardHandler
	gateMiddleware     *middleware.GateMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		jobHandler:         params.JobHandler,
		applicationHandler: params.ApplicationHandler,
		dashboardHandler:   params.DashboardHandler,
		gateMiddleware:     params.GateMiddleware,
	}
}

// RegisterRoutes sets up all the gateway routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me)
		authGroup.POST("/profile/refresh", r.authHandler.RefreshProfile)
		authGroup.PATCH("/profile", r.authHandler.UpdateProfile)
	}

	// Public catalog
	jobsGroup := e.Group("/jobs")
	{
		jobsGroup.GET("", r.jobHandler.ListJobs)
		jobsGroup.GET("/search", r.jobHandler.SearchJobs)
		jobsGroup.GET("/categories", r.jobHandler.ListCategories)
		jobsGroup.GET("/:id", r.jobHandler.GetJob)
	}

	seekerGroup := e.Group("/seeker")
	seekerGroup.Use(r.gateMiddleware.RequireRole(entity.RoleJobSeeker))
	{
		seekerGroup.GET("/dashboard", r.dashboardHandler.Seeker)
		seekerGroup.POST("/jobs/:id/apply", r.applicationHandler.Apply)
		seekerGroup.GET("/applications", r.applicationHandler.MyApplications)
		seekerGroup.GET("/saved", r.applicationHandler.SavedJobs)
		seekerGroup.POST("/saved/:id", r.applicationHandler.SaveJob)
		seekerGroup.DELETE("/saved/:id", r.applicationHandler.UnsaveJob)
		seekerGroup.PUT("/saved/:id", r.applicationHandler.EnsureSaved)
		seekerGroup.POST("/saved/:id/toggle", r.applicationHandler.ToggleSaved)
	}

	employerGroup := e.Group("/employer")
	employerGroup.Use(r.gateMiddleware.RequireRole(entity.RoleEmployer))
	{
		employerGroup.GET("/dashboard", r.dashboardHandler.Employer)
		employerGroup.GET("/jobs", r.jobHandler.ListEmployerJobs)
		employerGroup.POST("/jobs", r.jobHandler.CreateJob)
		employerGroup.PATCH("/jobs/:id", r.jobHandler.UpdateJob)
		employerGroup.PUT("/jobs/:id/active", r.jobHandler.SetJobActive)
		employerGroup.DELETE("/jobs/:id", r.jobHandler.DeleteJob)
		employerGroup.GET("/applications", r.applicationHandler.EmployerApplications)
		employerGroup.PATCH("/applications/:id/status", r.applicationHandler.UpdateStatus)
	}
}
