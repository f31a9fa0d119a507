package impl

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/infra/validation"
	mockService "jobboard/internal/mocks/service"
	mockUsecase "jobboard/internal/mocks/usecase"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// applicationServiceFixtures holds all test dependencies for application service tests.
type applicationServiceFixtures struct {
	service      usecase.ApplicationUsecase
	applications *mockService.MockApplicationService
	listing      *mockService.MockListingService
}

func createTestApplicationService(t *testing.T, session *mockUsecase.MockSessionUsecase) applicationServiceFixtures {
	applications := mockService.NewMockApplicationService(t)
	listing := mockService.NewMockListingService(t)

	srv := NewApplicationService(ApplicationServiceParams{
		Applications: applications,
		Listing:      listing,
		Session:      session,
		Validate:     validation.New(),
		Logger:       newDiscardLogger(),
	})

	return applicationServiceFixtures{
		service:      srv,
		applications: applications,
		listing:      listing,
	}
}

func openJob(id int64) *entity.Job {
	return &entity.Job{ID: id, Title: "Backend Engineer", IsActive: true}
}

// --- Apply ---

func TestApplicationService_Apply_Success(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))
	ctx := context.Background()

	job := openJob(7)
	job.RequiresCoverLetter = true

	fx.listing.EXPECT().Get(ctx, int64(7)).Return(job, nil)
	fx.applications.EXPECT().ListMine(ctx).Return([]*entity.Application{{ID: 1, JobID: 3}}, nil)
	fx.applications.EXPECT().Create(ctx, &service.ApplyRequest{JobID: 7, CoverLetter: "Hello"}).
		Return(&entity.Application{ID: 44, JobID: 7, Status: entity.StatusPending}, nil)

	out, err := fx.service.Apply(ctx, 7, usecase.ApplyInput{CoverLetter: "Hello"})
	require.NoError(t, err)

	assert.Equal(t, int64(44), out.Application.ID)
	assert.Equal(t, "Backend Engineer", out.Application.JobTitle)
	assert.Equal(t, int64(9), out.Application.ApplicantID)
	assert.True(t, out.Job.HasApplied)
	assert.False(t, job.HasApplied, "the fetched job is not mutated")
}

func TestApplicationService_Apply_Preconditions(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -2)

	tests := []struct {
		name  string
		job   *entity.Job
		input usecase.ApplyInput
		field string
	}{
		{
			name:  "inactive job",
			job:   &entity.Job{ID: 7, IsActive: false},
			field: "job",
		},
		{
			name:  "deadline passed",
			job:   &entity.Job{ID: 7, IsActive: true, Deadline: &yesterday},
			field: "job",
		},
		{
			name:  "missing cover letter",
			job:   &entity.Job{ID: 7, IsActive: true, RequiresCoverLetter: true},
			input: usecase.ApplyInput{CoverLetter: "   "},
			field: "cover_letter",
		},
		{
			name:  "missing resume",
			job:   &entity.Job{ID: 7, IsActive: true, RequiresResume: true},
			field: "resume",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))
			ctx := context.Background()

			fx.listing.EXPECT().Get(ctx, int64(7)).Return(tt.job, nil)
			fx.applications.EXPECT().ListMine(ctx).Return(nil, nil).Maybe()

			_, err := fx.service.Apply(ctx, 7, tt.input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			verr, ok := domainerrors.AsValidation(err)
			require.True(t, ok)
			assert.Contains(t, verr.Fields, tt.field)
			fx.applications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestApplicationService_Apply_InputTooLong(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))

	_, err := fx.service.Apply(context.Background(), 7, usecase.ApplyInput{CoverLetter: strings.Repeat("x", 5001)})

	verr, ok := domainerrors.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "cover_letter")
}

func TestApplicationService_Apply_AlreadyApplied(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))
	ctx := context.Background()

	fx.listing.EXPECT().Get(ctx, int64(7)).Return(openJob(7), nil)
	fx.applications.EXPECT().ListMine(ctx).Return([]*entity.Application{{ID: 2, JobID: 7}}, nil)

	_, err := fx.service.Apply(ctx, 7, usecase.ApplyInput{})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyApplied)
}

func TestApplicationService_Apply_ServerDuplicateIsAlreadyApplied(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))
	ctx := context.Background()

	fx.listing.EXPECT().Get(ctx, int64(7)).Return(openJob(7), nil)
	fx.applications.EXPECT().ListMine(ctx).Return(nil, nil)
	fx.applications.EXPECT().Create(ctx, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrAlreadyApplied))

	_, err := fx.service.Apply(ctx, 7, usecase.ApplyInput{})
	require.ErrorIs(t, err, domainerrors.ErrAlreadyApplied)
}

func TestApplicationService_Apply_ConcurrentSubmissionsCreateOnce(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))
	ctx := context.Background()

	var created atomic.Bool

	fx.listing.EXPECT().Get(ctx, int64(7)).Return(openJob(7), nil).Twice()
	fx.applications.EXPECT().ListMine(ctx).
		RunAndReturn(func(context.Context) ([]*entity.Application, error) {
			if created.Load() {
				return []*entity.Application{{ID: 44, JobID: 7}}, nil
			}

			return nil, nil
		}).Twice()
	fx.applications.EXPECT().Create(ctx, mock.Anything).
		RunAndReturn(func(context.Context, *service.ApplyRequest) (*entity.Application, error) {
			time.Sleep(20 * time.Millisecond)
			created.Store(true)

			return &entity.Application{ID: 44, JobID: 7, Status: entity.StatusPending}, nil
		}).Once()

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		duplicate atomic.Int32
	)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := fx.service.Apply(ctx, 7, usecase.ApplyInput{})
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, domainerrors.ErrAlreadyApplied):
				duplicate.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(1), duplicate.Load())
}

func TestApplicationService_Apply_RoleChecks(t *testing.T) {
	t.Run("employer is forbidden", func(t *testing.T) {
		fx := createTestApplicationService(t, signedInAs(t, 3, entity.RoleEmployer))

		_, err := fx.service.Apply(context.Background(), 7, usecase.ApplyInput{})
		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("signed out", func(t *testing.T) {
		fx := createTestApplicationService(t, signedOut(t))

		_, err := fx.service.Apply(context.Background(), 7, usecase.ApplyInput{})
		require.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
	})
}

// --- UpdateStatus ---

func TestApplicationService_UpdateStatus_TransitionGrid(t *testing.T) {
	allowed := map[[2]entity.ApplicationStatus]bool{
		{entity.StatusPending, entity.StatusReviewed}:     true,
		{entity.StatusPending, entity.StatusRejected}:     true,
		{entity.StatusReviewed, entity.StatusShortlisted}: true,
		{entity.StatusReviewed, entity.StatusRejected}:    true,
		{entity.StatusShortlisted, entity.StatusAccepted}: true,
		{entity.StatusShortlisted, entity.StatusRejected}: true,
	}

	for _, from := range entity.AllStatuses {
		for _, to := range entity.AllStatuses {
			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				fx := createTestApplicationService(t, signedInAs(t, 3, entity.RoleEmployer))
				ctx := context.Background()

				fx.applications.EXPECT().ListForEmployer(ctx, (*int64)(nil)).
					Return([]*entity.Application{{ID: 1, Status: entity.StatusPending}, {ID: 5, Status: from}}, nil)

				if allowed[[2]entity.ApplicationStatus{from, to}] {
					fx.applications.EXPECT().PatchStatus(ctx, int64(5), to).
						Return(&entity.Application{ID: 5, Status: to}, nil).Once()

					updated, err := fx.service.UpdateStatus(ctx, 5, to)
					require.NoError(t, err)
					assert.Equal(t, to, updated.Status)

					return
				}

				_, err := fx.service.UpdateStatus(ctx, 5, to)
				require.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
				fx.applications.AssertNotCalled(t, "PatchStatus", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	}
}

func TestApplicationService_UpdateStatus_NotOwned(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 3, entity.RoleEmployer))
	ctx := context.Background()

	fx.applications.EXPECT().ListForEmployer(ctx, (*int64)(nil)).
		Return([]*entity.Application{{ID: 1, Status: entity.StatusPending}}, nil)

	_, err := fx.service.UpdateStatus(ctx, 99, entity.StatusReviewed)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestApplicationService_UpdateStatus_Rejections(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		fx := createTestApplicationService(t, signedInAs(t, 3, entity.RoleEmployer))

		_, err := fx.service.UpdateStatus(context.Background(), 5, "hired")
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("job seeker is forbidden", func(t *testing.T) {
		fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))

		_, err := fx.service.UpdateStatus(context.Background(), 5, entity.StatusReviewed)
		require.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

// --- Saved jobs ---

func TestApplicationService_ToggleSaved_IsSelfInverse(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))
	ctx := context.Background()

	var (
		mu    sync.Mutex
		saved = map[int64]bool{}
	)
	fx.applications.EXPECT().ListSaved(ctx).
		RunAndReturn(func(context.Context) ([]*entity.SavedJob, error) {
			mu.Lock()
			defer mu.Unlock()

			var out []*entity.SavedJob
			for id := range saved {
				out = append(out, &entity.SavedJob{JobID: id})
			}

			return out, nil
		})
	fx.applications.EXPECT().AddSaved(ctx, int64(7)).
		RunAndReturn(func(_ context.Context, id int64) error {
			mu.Lock()
			defer mu.Unlock()
			saved[id] = true

			return nil
		}).Once()
	fx.applications.EXPECT().RemoveSaved(ctx, int64(7)).
		RunAndReturn(func(_ context.Context, id int64) error {
			mu.Lock()
			defer mu.Unlock()
			delete(saved, id)

			return nil
		}).Once()

	on, err := fx.service.ToggleSaved(ctx, 7)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := fx.service.ToggleSaved(ctx, 7)
	require.NoError(t, err)
	assert.False(t, off)

	assert.Empty(t, saved)
}

func TestApplicationService_UnsaveJob_AbsentSucceeds(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))
	ctx := context.Background()

	fx.applications.EXPECT().RemoveSaved(ctx, int64(7)).Return(errors.WithStack(domainerrors.ErrNotFound))

	require.NoError(t, fx.service.UnsaveJob(ctx, 7))
}

func TestApplicationService_EnsureSaved(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))
	ctx := context.Background()

	fx.applications.EXPECT().AddSaved(ctx, int64(7)).Return(nil).Twice()
	fx.applications.EXPECT().RemoveSaved(ctx, int64(8)).Return(nil).Once()

	require.NoError(t, fx.service.EnsureSaved(ctx, 7, true))
	require.NoError(t, fx.service.EnsureSaved(ctx, 7, true))
	require.NoError(t, fx.service.EnsureSaved(ctx, 8, false))
}

func TestApplicationService_SaveJob_EmployerForbidden(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 3, entity.RoleEmployer))

	err := fx.service.SaveJob(context.Background(), 7)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.ToggleSaved(context.Background(), 7)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestApplicationService_SavedJobs_FillsApplicant(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))
	ctx := context.Background()

	fx.applications.EXPECT().ListSaved(ctx).Return([]*entity.SavedJob{{JobID: 7}, {JobID: 8}}, nil)

	saved, err := fx.service.SavedJobs(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	for _, s := range saved {
		assert.Equal(t, int64(9), s.ApplicantID)
	}
}

// --- Lists ---

func TestApplicationService_MyApplications_FiltersAndCounts(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))
	ctx := context.Background()

	fx.applications.EXPECT().ListMine(ctx).Return([]*entity.Application{
		{ID: 1, Status: entity.StatusPending},
		{ID: 2, Status: entity.StatusRejected},
		{ID: 3, Status: entity.StatusPending},
	}, nil)

	list, err := fx.service.MyApplications(ctx, entity.StatusPending)
	require.NoError(t, err)

	assert.Len(t, list.Items, 2)
	assert.Equal(t, 3, list.Counts.All)
	assert.Equal(t, 2, list.Counts.Of(entity.StatusPending))
	assert.Equal(t, 0, list.Counts.Of(entity.StatusAccepted))
	assert.Equal(t, entity.StatusPending, list.Status)
}

func TestApplicationService_MyApplications_UnknownStatus(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 9, entity.RoleJobSeeker))

	_, err := fx.service.MyApplications(context.Background(), "archived")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestApplicationService_EmployerApplications_ScopedToJob(t *testing.T) {
	fx := createTestApplicationService(t, signedInAs(t, 3, entity.RoleEmployer))
	ctx := context.Background()

	jobID := int64(7)
	fx.applications.EXPECT().ListForEmployer(ctx, &jobID).Return([]*entity.Application{
		{ID: 1, JobID: 7, Status: entity.StatusReviewed},
	}, nil)

	list, err := fx.service.EmployerApplications(ctx, &jobID, "")
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
	assert.Equal(t, 1, list.Counts.Of(entity.StatusReviewed))
}
