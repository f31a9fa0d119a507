package service

import (
	"context"

	"jobboard/internal/domain/entity"
)

// ListingService is the remote job listing API.
type ListingService interface {
	// Query returns one page of active jobs matching the filter.
	Query(ctx context.Context, filter entity.JobFilter) (*entity.Page[*entity.Job], error)

	// Get returns a single job.
	Get(ctx context.Context, jobID int64) (*entity.Job, error)

	// Categories returns every job category.
	Categories(ctx context.Context) ([]*entity.Category, error)

	// EmployerJobs returns the jobs posted by the signed-in employer.
	EmployerJobs(ctx context.Context) ([]*entity.Job, error)

	// Create posts a new job for the signed-in employer.
	Create(ctx context.Context, draft *entity.JobDraft) (*entity.Job, error)

	// Update changes the set fields of one of the signed-in employer's jobs.
	Update(ctx context.Context, jobID int64, draft *entity.JobDraft) (*entity.Job, error)

	// Delete removes one of the signed-in employer's jobs.
	Delete(ctx context.Context, jobID int64) error
}
