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

// JobHandlerParams holds dependencies for JobHandler, injected by Fx.
type JobHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// JobHandler serves the job catalog.
type JobHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewJobHandler is the constructor for JobHandler.
func NewJobHandler(params JobHandlerParams) *JobHandler {
	return &JobHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListJobs returns one page of jobs for the query-string filter.
func (h *JobHandler) ListJobs(c echo.Context) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		return err
	}

	page, err := h.catalogUC.List(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(page))
}

// SearchJobs is ListJobs for search-as-you-type: a response overtaken by a
// newer search is answered with a conflict instead of stale results.
func (h *JobHandler) SearchJobs(c echo.Context) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		return err
	}

	page, err := h.catalogUC.Latest(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageResponse(page))
}

// GetJob returns a single job.
func (h *JobHandler) GetJob(c echo.Context) error {
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	job, err := h.catalogUC.Job(c.Request().Context(), jobID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJobResponse(job))
}

// ListCategories returns every job category.
func (h *JobHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryResponses(categories))
}

// ListEmployerJobs returns the employer's own postings.
func (h *JobHandler) ListEmployerJobs(c echo.Context) error {
	jobs, err := h.catalogUC.EmployerJobs(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJobResponses(jobs))
}

// CreateJob posts a job for the employer.
func (h *JobHandler) CreateJob(c echo.Context) error {
	var input usecase.JobInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	job, err := h.catalogUC.CreateJob(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toJobResponse(job))
}

// UpdateJob changes the fields present in the body.
func (h *JobHandler) UpdateJob(c echo.Context) error {
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.JobInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	job, err := h.catalogUC.UpdateJob(c.Request().Context(), jobID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJobResponse(job))
}

type jobActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

// SetJobActive opens or closes a posting.
func (h *JobHandler) SetJobActive(c echo.Context) error {
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req jobActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}
	if req.IsActive == nil {
		return domainerrors.NewValidationError().Add("is_active", "This field is required.")
	}

	job, err := h.catalogUC.SetJobActive(c.Request().Context(), jobID, *req.IsActive)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJobResponse(job))
}

// DeleteJob removes a posting.
func (h *JobHandler) DeleteJob(c echo.Context) error {
	jobID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteJob(c.Request().Context(), jobID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// filterFromQuery builds a JobFilter from search, category, job_type, location,
// min_salary, max_salary, experience and page. Absent parameters stay empty.
func filterFromQuery(c echo.Context) (entity.JobFilter, error) {
	verr := domainerrors.NewValidationError()
	filter := entity.NewJobFilter().
		WithSearch(c.QueryParam("search")).
		WithJobType(entity.JobType(c.QueryParam("job_type"))).
		WithLocation(c.QueryParam("location"))

	if raw := c.QueryParam("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			verr.Add("category", "A valid integer is required.")
		} else {
			filter = filter.WithCategory(&id)
		}
	}

	minSalary := parseFloatParam(c, "min_salary", verr)
	maxSalary := parseFloatParam(c, "max_salary", verr)
	if minSalary != nil || maxSalary != nil {
		filter = filter.WithSalaryRange(minSalary, maxSalary)
	}

	if raw := c.QueryParam("experience"); raw != "" {
		years, err := strconv.Atoi(raw)
		if err != nil {
			verr.Add("experience", "A valid integer is required.")
		} else {
			filter = filter.WithExperience(&years)
		}
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			verr.Add("page", "A valid integer is required.")
		} else {
			filter = filter.WithPage(page)
		}
	}

	if verr.HasErrors() {
		return filter, verr
	}

	return filter, nil
}

func parseFloatParam(c echo.Context, name string, verr *domainerrors.ValidationError) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		verr.Add(name, "A valid number is required.")

		return nil
	}

	return &v
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.NewValidationError().Add(name, "A valid integer is required.")
	}

	return id, nil
}
