package service

import (
	"context"

	"jobboard/internal/domain/entity"
)

// ApplyRequest is the payload of a new application.
type ApplyRequest struct {
	JobID       int64
	CoverLetter string
	ResumeRef   string
}

// ApplicationService is the remote application and saved-job API.
type ApplicationService interface {
	// Create submits an application for the signed-in job seeker.
	Create(ctx context.Context, req *ApplyRequest) (*entity.Application, error)

	// ListMine returns the applications of the signed-in job seeker.
	ListMine(ctx context.Context) ([]*entity.Application, error)

	// ListForEmployer returns applications to the signed-in employer's jobs,
	// optionally restricted to one job.
	ListForEmployer(ctx context.Context, jobID *int64) ([]*entity.Application, error)

	// PatchStatus sets the status of one application.
	PatchStatus(ctx context.Context, applicationID int64, status entity.ApplicationStatus) (*entity.Application, error)

	// AddSaved saves a job for the signed-in job seeker.
	AddSaved(ctx context.Context, jobID int64) error

	// RemoveSaved removes a saved job.
	RemoveSaved(ctx context.Context, jobID int64) error

	// ListSaved returns the saved jobs of the signed-in job seeker.
	ListSaved(ctx context.Context) ([]*entity.SavedJob, error)
}
