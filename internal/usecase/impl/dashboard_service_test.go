package impl

import (
	"context"
	"testing"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	mockService "jobboard/internal/mocks/service"
	mockUsecase "jobboard/internal/mocks/usecase"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dashboardServiceFixtures holds all test dependencies for dashboard service tests.
type dashboardServiceFixtures struct {
	service      usecase.DashboardUsecase
	listing      *mockService.MockListingService
	applications *mockService.MockApplicationService
}

func createTestDashboardService(t *testing.T, session *mockUsecase.MockSessionUsecase) dashboardServiceFixtures {
	listing := mockService.NewMockListingService(t)
	applications := mockService.NewMockApplicationService(t)

	srv := NewDashboardService(DashboardServiceParams{
		Listing:      listing,
		Applications: applications,
		Session:      session,
		Logger:       newDiscardLogger(),
	})

	return dashboardServiceFixtures{
		service:      srv,
		listing:      listing,
		applications: applications,
	}
}

func TestDashboardService_EmployerDashboard(t *testing.T) {
	fx := createTestDashboardService(t, signedInAs(t, 3, entity.RoleEmployer))

	fx.listing.EXPECT().EmployerJobs(mock.Anything).Return([]*entity.Job{
		{ID: 1, IsActive: true},
		{ID: 2, IsActive: true},
		{ID: 3},
	}, nil)
	fx.applications.EXPECT().ListForEmployer(mock.Anything, (*int64)(nil)).Return([]*entity.Application{
		{ID: 10, Status: entity.StatusPending},
		{ID: 11, Status: entity.StatusPending},
		{ID: 12, Status: entity.StatusAccepted},
	}, nil)

	view, err := fx.service.EmployerDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.EmployerStats{
		TotalJobs:           3,
		ActiveJobs:          2,
		TotalApplications:   3,
		PendingApplications: 2,
	}, view.Stats)
	assert.Equal(t, 1, view.StatusCounts.Of(entity.StatusAccepted))
}

func TestDashboardService_EmployerDashboard_NoPartialView(t *testing.T) {
	fx := createTestDashboardService(t, signedInAs(t, 3, entity.RoleEmployer))

	fx.listing.EXPECT().EmployerJobs(mock.Anything).Return([]*entity.Job{{ID: 1}}, nil).Maybe()
	fx.applications.EXPECT().ListForEmployer(mock.Anything, (*int64)(nil)).
		Return(nil, errors.WithStack(domainerrors.ErrNetwork))

	view, err := fx.service.EmployerDashboard(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrNetwork)
	assert.Nil(t, view)
}

func TestDashboardService_SeekerDashboard(t *testing.T) {
	fx := createTestDashboardService(t, signedInAs(t, 9, entity.RoleJobSeeker))

	fx.applications.EXPECT().ListMine(mock.Anything).Return([]*entity.Application{
		{ID: 1, Status: entity.StatusPending},
		{ID: 2, Status: entity.StatusReviewed},
	}, nil)
	fx.applications.EXPECT().ListSaved(mock.Anything).Return([]*entity.SavedJob{
		{JobID: 4}, {JobID: 5}, {JobID: 6},
	}, nil)

	view, err := fx.service.SeekerDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, entity.SeekerStats{TotalApplications: 2, PendingApplications: 1, SavedJobs: 3}, view.Stats)
	require.Len(t, view.RecentSavedJobs, 3)
	assert.Equal(t, int64(9), view.RecentSavedJobs[0].ApplicantID)
}

func TestDashboardService_SeekerDashboard_NoPartialView(t *testing.T) {
	fx := createTestDashboardService(t, signedInAs(t, 9, entity.RoleJobSeeker))

	fx.applications.EXPECT().ListMine(mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrSessionExpired))
	fx.applications.EXPECT().ListSaved(mock.Anything).Return(nil, nil).Maybe()

	view, err := fx.service.SeekerDashboard(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrSessionExpired)
	assert.Nil(t, view)
}

func TestDashboardService_WrongRole(t *testing.T) {
	employer := createTestDashboardService(t, signedInAs(t, 3, entity.RoleEmployer))
	_, err := employer.service.SeekerDashboard(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	seeker := createTestDashboardService(t, signedInAs(t, 9, entity.RoleJobSeeker))
	_, err = seeker.service.EmployerDashboard(context.Background())
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}
