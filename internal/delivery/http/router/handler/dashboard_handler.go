package handler

import (
	"log/slog"
	"net/http"

	"jobboard/internal/delivery/http/response"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the role-specific landing views.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler.
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// Employer returns the employer dashboard.
func (h *DashboardHandler) Employer(c echo.Context) error {
	view, err := h.dashboardUC.EmployerDashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &EmployerDashboardResponse{
		TotalJobs:           view.Stats.TotalJobs,
		ActiveJobs:          view.Stats.ActiveJobs,
		TotalApplications:   view.Stats.TotalApplications,
		PendingApplications: view.Stats.PendingApplications,
		StatusCounts:        toStatusCounts(view.StatusCounts),
		RecentJobs:          toJobResponses(view.RecentJobs),
		RecentApplications:  toApplicationResponses(view.RecentApplications),
	})
}

// Seeker returns the job seeker dashboard.
func (h *DashboardHandler) Seeker(c echo.Context) error {
	view, err := h.dashboardUC.SeekerDashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &SeekerDashboardResponse{
		TotalApplications:   view.Stats.TotalApplications,
		PendingApplications: view.Stats.PendingApplications,
		SavedJobs:           view.Stats.SavedJobs,
		StatusCounts:        toStatusCounts(view.StatusCounts),
		RecentApplications:  toApplicationResponses(view.RecentApplications),
		RecentSavedJobs:     toSavedJobResponses(view.RecentSavedJobs),
	})
}
