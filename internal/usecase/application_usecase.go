package usecase

import (
	"context"

	"jobboard/internal/domain/entity"
)

// --- Input DTOs ---

// ApplyInput defines the data submitted with an application.
type ApplyInput struct {
	CoverLetter string `json:"cover_letter" validate:"max=5000"`
	ResumeRef   string `json:"resume" validate:"max=500"`
}

// --- Output DTOs ---

// ApplyOutput returns the created application and the job it belongs to.
type ApplyOutput struct {
	Application *entity.Application
	Job         *entity.Job
}

// ApplicationList is a status-filtered view of applications with counts over the unfiltered set.
type ApplicationList struct {
	Items  []*entity.Application
	Counts entity.StatusCounts
	Status entity.ApplicationStatus
}

// ApplicationUsecase drives the application workflow and the saved-job relation.
type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID int64, input ApplyInput) (*ApplyOutput, error)
	UpdateStatus(ctx context.Context, applicationID int64, status entity.ApplicationStatus) (*entity.Application, error)

	// ToggleSaved flips membership and returns the new state.
	ToggleSaved(ctx context.Context, jobID int64) (bool, error)
	SaveJob(ctx context.Context, jobID int64) error
	UnsaveJob(ctx context.Context, jobID int64) error
	EnsureSaved(ctx context.Context, jobID int64, saved bool) error

	// MyApplications lists the job seeker's applications. An empty status means all.
	MyApplications(ctx context.Context, status entity.ApplicationStatus) (*ApplicationList, error)
	EmployerApplications(ctx context.Context, jobID *int64, status entity.ApplicationStatus) (*ApplicationList, error)
	SavedJobs(ctx context.Context) ([]*entity.SavedJob, error)
}
