package usecase

import (
	"context"

	"jobboard/internal/domain/entity"
)

// JobInput carries the fields of a posting an employer writes. Nil fields are not sent,
// and field rules are enforced by the listing service.
type JobInput struct {
	Title              *string  `json:"title"`
	Description        *string  `json:"description"`
	Requirements       *string  `json:"requirements"`
	Location           *string  `json:"location"`
	JobType            *string  `json:"job_type"`
	CategoryID         *int64   `json:"category"`
	SalaryMin          *float64 `json:"salary_min"`
	SalaryMax          *float64 `json:"salary_max"`
	ExperienceRequired *int     `json:"experience_required"`
	SkillsRequired     *string  `json:"skills_required"`
	Deadline           *string  `json:"deadline"` // YYYY-MM-DD
	IsActive           *bool    `json:"is_active"`
}

// CatalogUsecase queries the job catalog and manages an employer's own postings.
type CatalogUsecase interface {
	// List returns one page of jobs matching every non-empty filter field.
	List(ctx context.Context, filter entity.JobFilter) (*entity.Page[*entity.Job], error)

	// Latest behaves like List but fails with ErrStaleResult when a newer
	// Latest call was issued before this one resolved.
	Latest(ctx context.Context, filter entity.JobFilter) (*entity.Page[*entity.Job], error)

	Job(ctx context.Context, jobID int64) (*entity.Job, error)
	Categories(ctx context.Context) ([]*entity.Category, error)

	// EmployerJobs returns the signed-in employer's own postings.
	EmployerJobs(ctx context.Context) ([]*entity.Job, error)

	CreateJob(ctx context.Context, input JobInput) (*entity.Job, error)
	UpdateJob(ctx context.Context, jobID int64, input JobInput) (*entity.Job, error)

	// SetJobActive opens or closes a posting for applications.
	SetJobActive(ctx context.Context, jobID int64, active bool) (*entity.Job, error)

	DeleteJob(ctx context.Context, jobID int64) error
}
