package impl

import (
	"context"
	"log/slog"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	"jobboard/internal/domain/service"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	listing      service.ListingService
	applications service.ApplicationService
	session      usecase.SessionUsecase
	logger       *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	Listing      service.ListingService
	Applications service.ApplicationService
	Session      usecase.SessionUsecase
	Logger       *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		listing:      params.Listing,
		applications: params.Applications,
		session:      params.Session,
		logger:       params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EmployerDashboard fetches jobs and applications concurrently and joins them.
// Either failure fails the whole view.
func (srv *dashboardService) EmployerDashboard(ctx context.Context) (*entity.EmployerDashboard, error) {
	if _, err := requireRole(srv.session, entity.RoleEmployer); err != nil {
		return nil, err
	}

	var (
		jobs []*entity.Job
		apps []*entity.Application
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = srv.listing.EmployerJobs(gctx)

		return errors.Wrap(err, "failed to load jobs")
	})
	g.Go(func() error {
		var err error
		apps, err = srv.applications.ListForEmployer(gctx, nil)

		return errors.Wrap(err, "failed to load applications")
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Warn("Employer dashboard unavailable", slog.Any("error", err))

		return nil, err
	}

	return entity.BuildEmployerDashboard(jobs, apps), nil
}

// SeekerDashboard fetches applications and saved jobs concurrently and joins them.
func (srv *dashboardService) SeekerDashboard(ctx context.Context) (*entity.SeekerDashboard, error) {
	user, err := requireRole(srv.session, entity.RoleJobSeeker)
	if err != nil {
		return nil, err
	}

	var (
		apps  []*entity.Application
		saved []*entity.SavedJob
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		apps, err = srv.applications.ListMine(gctx)

		return errors.Wrap(err, "failed to load applications")
	})
	g.Go(func() error {
		var err error
		saved, err = srv.applications.ListSaved(gctx)

		return errors.Wrap(err, "failed to load saved jobs")
	})

	if err := g.Wait(); err != nil {
		srv.log(ctx).Warn("Seeker dashboard unavailable", slog.Any("error", err))

		return nil, err
	}

	for _, s := range saved {
		s.ApplicantID = user.ID
	}

	return entity.BuildSeekerDashboard(apps, saved), nil
}
