package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/infra/validation"
	"jobboard/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// applicationService implements the ApplicationUsecase interface.
type applicationService struct {
	applications service.ApplicationService
	listing      service.ListingService
	session      usecase.SessionUsecase
	validate     *validator.Validate
	logger       *slog.Logger
	now          func() time.Time

	// applyMu serialises Apply per job so a second submission sees the first.
	locksMu sync.Mutex
	applyMu map[int64]*sync.Mutex
}

// ApplicationServiceParams holds dependencies for ApplicationService, injected by Fx.
type ApplicationServiceParams struct {
	fx.In

	Applications service.ApplicationService
	Listing      service.ListingService
	Session      usecase.SessionUsecase
	Validate     *validator.Validate
	Logger       *slog.Logger
}

// NewApplicationService is the constructor for applicationService.
func NewApplicationService(params ApplicationServiceParams) usecase.ApplicationUsecase {
	return &applicationService{
		applications: params.Applications,
		listing:      params.Listing,
		session:      params.Session,
		validate:     params.Validate,
		logger:       params.Logger,
		now:          time.Now,
		applyMu:      make(map[int64]*sync.Mutex),
	}
}

func (srv *applicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *applicationService) jobLock(jobID int64) *sync.Mutex {
	srv.locksMu.Lock()
	defer srv.locksMu.Unlock()

	mu, ok := srv.applyMu[jobID]
	if !ok {
		mu = &sync.Mutex{}
		srv.applyMu[jobID] = mu
	}

	return mu
}

// Apply submits an application after checking the job is open, that the
// seeker has not applied yet and that required attachments are present.
func (srv *applicationService) Apply(ctx context.Context, jobID int64, input usecase.ApplyInput) (*usecase.ApplyOutput, error) {
	user, err := requireRole(srv.session, entity.RoleJobSeeker)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(srv.validate, input); err != nil {
		return nil, err
	}

	mu := srv.jobLock(jobID)
	mu.Lock()
	defer mu.Unlock()

	srv.log(ctx).Info("Applying for job", slog.Int64("job_id", jobID), slog.Int64("user_id", user.ID))

	job, err := srv.listing.Get(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load job")
	}

	if !job.IsActive {
		return nil, domainerrors.NewValidationError().Add("job", "This job is no longer accepting applications.")
	}
	if job.DeadlinePassed(srv.now()) {
		return nil, domainerrors.NewValidationError().Add("job", "Application deadline has passed.")
	}

	mine, err := srv.applications.ListMine(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing applications")
	}
	for _, app := range mine {
		if app.JobID == jobID {
			return nil, errors.Wrapf(domainerrors.ErrAlreadyApplied, "application %d", app.ID)
		}
	}

	verr := domainerrors.NewValidationError()
	if job.RequiresCoverLetter && strings.TrimSpace(input.CoverLetter) == "" {
		verr.Add("cover_letter", "This job requires a cover letter.")
	}
	if job.RequiresResume && strings.TrimSpace(input.ResumeRef) == "" {
		verr.Add("resume", "This job requires a resume.")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	app, err := srv.applications.Create(ctx, &service.ApplyRequest{
		JobID:       jobID,
		CoverLetter: input.CoverLetter,
		ResumeRef:   input.ResumeRef,
	})
	if err != nil {
		srv.log(ctx).Warn("Application rejected", slog.Int64("job_id", jobID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to submit application")
	}

	if app.JobTitle == "" {
		app.JobTitle = job.Title
	}
	if app.ApplicantID == 0 {
		app.ApplicantID = user.ID
	}

	applied := *job
	applied.HasApplied = true

	return &usecase.ApplyOutput{Application: app, Job: &applied}, nil
}

// UpdateStatus moves one application along the status workflow.
// Invalid edges are rejected before anything is written.
func (srv *applicationService) UpdateStatus(ctx context.Context, applicationID int64, status entity.ApplicationStatus) (*entity.Application, error) {
	if _, err := requireRole(srv.session, entity.RoleEmployer); err != nil {
		return nil, err
	}

	if !status.IsValid() {
		return nil, domainerrors.NewValidationError().Add("status", "Invalid status.")
	}

	scoped, err := srv.applications.ListForEmployer(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load applications")
	}

	var current *entity.Application
	for _, app := range scoped {
		if app.ID == applicationID {
			current = app

			break
		}
	}
	if current == nil {
		return nil, domainerrors.ErrForbidden.WithDetails("application does not belong to your jobs")
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(string(current.Status) + " -> " + string(status))
	}

	updated, err := srv.applications.PatchStatus(ctx, applicationID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update application status")
	}

	srv.log(ctx).Info("Application status updated",
		slog.Int64("application_id", applicationID),
		slog.String("from", string(current.Status)),
		slog.String("to", string(status)),
	)

	return updated, nil
}

// ToggleSaved reads membership and flips it.
func (srv *applicationService) ToggleSaved(ctx context.Context, jobID int64) (bool, error) {
	saved, err := srv.SavedJobs(ctx)
	if err != nil {
		return false, err
	}

	if entity.ContainsJob(saved, jobID) {
		return false, srv.UnsaveJob(ctx, jobID)
	}

	return true, srv.SaveJob(ctx, jobID)
}

// SaveJob adds the job to the seeker's saved list. Saving twice succeeds.
func (srv *applicationService) SaveJob(ctx context.Context, jobID int64) error {
	if _, err := requireRole(srv.session, entity.RoleJobSeeker); err != nil {
		return err
	}

	return errors.Wrap(srv.applications.AddSaved(ctx, jobID), "failed to save job")
}

// UnsaveJob removes the job from the seeker's saved list. Removing an absent job succeeds.
func (srv *applicationService) UnsaveJob(ctx context.Context, jobID int64) error {
	if _, err := requireRole(srv.session, entity.RoleJobSeeker); err != nil {
		return err
	}

	err := srv.applications.RemoveSaved(ctx, jobID)
	if errors.Is(err, domainerrors.ErrNotFound) {
		return nil
	}

	return errors.Wrap(err, "failed to unsave job")
}

// EnsureSaved sets membership to saved.
func (srv *applicationService) EnsureSaved(ctx context.Context, jobID int64, saved bool) error {
	if saved {
		return srv.SaveJob(ctx, jobID)
	}

	return srv.UnsaveJob(ctx, jobID)
}

// MyApplications lists the seeker's applications filtered by status.
func (srv *applicationService) MyApplications(ctx context.Context, status entity.ApplicationStatus) (*usecase.ApplicationList, error) {
	if _, err := requireRole(srv.session, entity.RoleJobSeeker); err != nil {
		return nil, err
	}
	if err := validateStatusFilter(status); err != nil {
		return nil, err
	}

	apps, err := srv.applications.ListMine(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return newApplicationList(apps, status), nil
}

// EmployerApplications lists applications to the employer's jobs, optionally for one job.
func (srv *applicationService) EmployerApplications(ctx context.Context, jobID *int64, status entity.ApplicationStatus) (*usecase.ApplicationList, error) {
	if _, err := requireRole(srv.session, entity.RoleEmployer); err != nil {
		return nil, err
	}
	if err := validateStatusFilter(status); err != nil {
		return nil, err
	}

	apps, err := srv.applications.ListForEmployer(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return newApplicationList(apps, status), nil
}

// SavedJobs lists the seeker's saved jobs.
func (srv *applicationService) SavedJobs(ctx context.Context) ([]*entity.SavedJob, error) {
	user, err := requireRole(srv.session, entity.RoleJobSeeker)
	if err != nil {
		return nil, err
	}

	saved, err := srv.applications.ListSaved(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved jobs")
	}

	for _, s := range saved {
		s.ApplicantID = user.ID
	}

	return saved, nil
}

func validateStatusFilter(status entity.ApplicationStatus) error {
	if status != "" && !status.IsValid() {
		return domainerrors.NewValidationError().Add("status", "Invalid status.")
	}

	return nil
}

func newApplicationList(apps []*entity.Application, status entity.ApplicationStatus) *usecase.ApplicationList {
	return &usecase.ApplicationList{
		Items:  entity.FilterByStatus(apps, status),
		Counts: entity.CountByStatus(apps),
		Status: status,
	}
}
