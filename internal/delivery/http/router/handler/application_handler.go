package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"jobboard/internal/delivery/http/response"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ApplicationHandlerParams holds dependencies for ApplicationHandler, injected by Fx.
type ApplicationHandlerParams struct {
	fx.In

	ApplicationUC usecase.ApplicationUsecase
	Logger        *slog.Logger
}

// ApplicationHandler serves applications and saved jobs.
type ApplicationHandler struct {
	applicationUC usecase.ApplicationUsecase
	logger        *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler.
func NewApplicationHandler(params ApplicationHandlerParams) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUC: params.ApplicationUC,
		logger:        params.Logger,
	}
}

// UpdateStatusRequest represents the request body for moving an application.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// EnsureSavedRequest represents the request body for setting saved membership.
type EnsureSavedRequest struct {
	Saved *bool `json:"saved" validate:"required"`
}

// SavedStateResponse reports saved membership after a change.
type SavedStateResponse struct {
	JobID int64 `json:"job_id"`
	Saved bool  `json:"saved"`
}

// ApplyResponse carries the new application and the job it was made for.
type ApplyResponse struct {
	Application *ApplicationResponse `json:"application"`
	Job         *JobResponse         `json:"job"`
}

// Apply submits an application for a job.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.ApplyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}

	out, err := h.applicationUC.Apply(c.Request().Context(), jobID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &ApplyResponse{
		Application: toApplicationResponse(out.Application),
		Job:         toJobResponse(out.Job),
	})
}

// MyApplications lists the job seeker's applications, optionally filtered by ?status=.
func (h *ApplicationHandler) MyApplications(c echo.Context) error {
	list, err := h.applicationUC.MyApplications(c.Request().Context(), entity.ApplicationStatus(c.QueryParam("status")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toApplicationList(list))
}

// EmployerApplications lists applications received, optionally for ?job_id= and ?status=.
func (h *ApplicationHandler) EmployerApplications(c echo.Context) error {
	var jobID *int64
	if raw := c.QueryParam("job_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domainerrors.NewValidationError().Add("job_id", "A valid integer is required.")
		}
		jobID = &id
	}

	list, err := h.applicationUC.EmployerApplications(c.Request().Context(), jobID, entity.ApplicationStatus(c.QueryParam("status")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toApplicationList(list))
}

// UpdateStatus moves an application to a new status.
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	applicationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	app, err := h.applicationUC.UpdateStatus(c.Request().Context(), applicationID, entity.ApplicationStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toApplicationResponse(app))
}

// SavedJobs lists the job seeker's saved jobs.
func (h *ApplicationHandler) SavedJobs(c echo.Context) error {
	saved, err := h.applicationUC.SavedJobs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSavedJobResponses(saved))
}

// SaveJob adds a job to the saved list.
func (h *ApplicationHandler) SaveJob(c echo.Context) error {
	return h.setSaved(c, true)
}

// UnsaveJob removes a job from the saved list.
func (h *ApplicationHandler) UnsaveJob(c echo.Context) error {
	return h.setSaved(c, false)
}

// EnsureSaved sets membership to the requested state.
func (h *ApplicationHandler) EnsureSaved(c echo.Context) error {
	var req EnsureSavedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid saved input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	return h.setSaved(c, *req.Saved)
}

// ToggleSaved flips membership and reports the new state.
func (h *ApplicationHandler) ToggleSaved(c echo.Context) error {
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	saved, err := h.applicationUC.ToggleSaved(c.Request().Context(), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &SavedStateResponse{JobID: jobID, Saved: saved})
}

func (h *ApplicationHandler) setSaved(c echo.Context, saved bool) error {
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.applicationUC.EnsureSaved(c.Request().Context(), jobID, saved); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &SavedStateResponse{JobID: jobID, Saved: saved})
}

func toApplicationList(list *usecase.ApplicationList) *ApplicationListResponse {
	return &ApplicationListResponse{
		Results: toApplicationResponses(list.Items),
		Status:  string(list.Status),
		Counts:  toStatusCounts(list.Counts),
	}
}
