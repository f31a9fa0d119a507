package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	listing service.ListingService
	session usecase.SessionUsecase
	logger  *slog.Logger

	// latest is the ticket of the newest Latest call.
	latest atomic.Uint64
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Listing service.ListingService
	Session usecase.SessionUsecase
	Logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		listing: params.Listing,
		session: params.Session,
		logger:  params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns one page of jobs. A page past the end is not retried.
func (srv *catalogService) List(ctx context.Context, filter entity.JobFilter) (*entity.Page[*entity.Job], error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	page, err := srv.listing.Query(ctx, filter)
	if err != nil {
		srv.log(ctx).Warn("Job query failed", slog.Int("page", filter.Page), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list jobs")
	}

	return page, nil
}

// Latest is List for interactive searches: a result overtaken by a newer call is discarded.
func (srv *catalogService) Latest(ctx context.Context, filter entity.JobFilter) (*entity.Page[*entity.Job], error) {
	ticket := srv.latest.Add(1)

	page, err := srv.List(ctx, filter)

	if srv.latest.Load() != ticket {
		srv.log(ctx).Debug("Discarding superseded job query", slog.Uint64("ticket", ticket))

		return nil, errors.WithStack(domainerrors.ErrStaleResult)
	}

	return page, err
}

// Job returns a single job.
func (srv *catalogService) Job(ctx context.Context, jobID int64) (*entity.Job, error) {
	job, err := srv.listing.Get(ctx, jobID)

	return job, errors.Wrap(err, "failed to get job")
}

// Categories returns every job category.
func (srv *catalogService) Categories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.listing.Categories(ctx)

	return categories, errors.Wrap(err, "failed to list categories")
}

// EmployerJobs returns the signed-in employer's own postings.
func (srv *catalogService) EmployerJobs(ctx context.Context) ([]*entity.Job, error) {
	if _, err := requireRole(srv.session, entity.RoleEmployer); err != nil {
		return nil, err
	}

	jobs, err := srv.listing.EmployerJobs(ctx)

	return jobs, errors.Wrap(err, "failed to list employer jobs")
}

// CreateJob posts a job for the signed-in employer. Field rules are left to the listing service.
func (srv *catalogService) CreateJob(ctx context.Context, input usecase.JobInput) (*entity.Job, error) {
	user, err := requireRole(srv.session, entity.RoleEmployer)
	if err != nil {
		return nil, err
	}

	draft, err := draftFromInput(input)
	if err != nil {
		return nil, err
	}

	job, err := srv.listing.Create(ctx, draft)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create job")
	}

	srv.log(ctx).Info("Job posted", slog.Int64("employer_id", user.ID), slog.Int64("job_id", job.ID))

	return job, nil
}

// UpdateJob changes the set fields of one of the employer's postings.
func (srv *catalogService) UpdateJob(ctx context.Context, jobID int64, input usecase.JobInput) (*entity.Job, error) {
	if _, err := requireRole(srv.session, entity.RoleEmployer); err != nil {
		return nil, err
	}

	draft, err := draftFromInput(input)
	if err != nil {
		return nil, err
	}

	job, err := srv.listing.Update(ctx, jobID, draft)

	return job, errors.Wrapf(err, "failed to update job %d", jobID)
}

// SetJobActive toggles whether a posting accepts applications.
func (srv *catalogService) SetJobActive(ctx context.Context, jobID int64, active bool) (*entity.Job, error) {
	if _, err := requireRole(srv.session, entity.RoleEmployer); err != nil {
		return nil, err
	}

	job, err := srv.listing.Update(ctx, jobID, &entity.JobDraft{IsActive: &active})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to change job %d", jobID)
	}

	// The write response does not echo is_active.
	job.IsActive = active

	srv.log(ctx).Info("Job availability changed", slog.Int64("job_id", jobID), slog.Bool("active", active))

	return job, nil
}

// DeleteJob removes one of the employer's postings.
func (srv *catalogService) DeleteJob(ctx context.Context, jobID int64) error {
	if _, err := requireRole(srv.session, entity.RoleEmployer); err != nil {
		return err
	}

	if err := srv.listing.Delete(ctx, jobID); err != nil {
		return errors.Wrapf(err, "failed to delete job %d", jobID)
	}

	srv.log(ctx).Info("Job deleted", slog.Int64("job_id", jobID))

	return nil
}

func draftFromInput(input usecase.JobInput) (*entity.JobDraft, error) {
	draft := &entity.JobDraft{
		Title:              input.Title,
		Description:        input.Description,
		Requirements:       input.Requirements,
		Location:           input.Location,
		CategoryID:         input.CategoryID,
		SalaryMin:          input.SalaryMin,
		SalaryMax:          input.SalaryMax,
		ExperienceRequired: input.ExperienceRequired,
		SkillsRequired:     input.SkillsRequired,
		IsActive:           input.IsActive,
	}

	if input.JobType != nil {
		jobType := entity.JobType(*input.JobType)
		draft.JobType = &jobType
	}

	if input.Deadline != nil && *input.Deadline != "" {
		deadline, err := time.Parse(time.DateOnly, *input.Deadline)
		if err != nil {
			return nil, domainerrors.NewValidationError().Add("deadline", "Use the YYYY-MM-DD format.")
		}
		draft.Deadline = &deadline
	}

	return draft, nil
}

func validateFilter(filter entity.JobFilter) error {
	verr := domainerrors.NewValidationError()

	if filter.Page < 1 {
		verr.Add("page", "Page numbers start at 1.")
	}
	if filter.JobType != "" && !filter.JobType.IsValid() {
		verr.Add("job_type", "Unknown job type.")
	}
	if filter.MinSalary != nil && filter.MaxSalary != nil && *filter.MinSalary > *filter.MaxSalary {
		verr.Add("max_salary", "Maximum salary must be greater than minimum salary.")
	}
	if filter.Experience != nil && *filter.Experience < 0 {
		verr.Add("experience", "Experience cannot be negative.")
	}

	if verr.HasErrors() {
		return verr
	}

	return nil
}
