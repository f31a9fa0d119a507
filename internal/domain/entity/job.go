package entity

import "time"

// JobType classifies the engagement offered by a job.
type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypePartTime   JobType = "part_time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
	// JobTypeRemote is still emitted by the listing service for older postings.
	JobTypeRemote JobType = "remote"
)

// IsValid checks if the JobType is a known value.
func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeFreelance, JobTypeRemote:
		return true
	default:
		return false
	}
}

// Job is a posting owned by an employer. IsSaved and HasApplied are relative to the
// requesting job seeker and are always computed by the listing service.
type Job struct {
	ID                  int64
	Title               string
	EmployerName        string
	Location            string
	JobType             JobType
	SalaryMin           *float64
	SalaryMax           *float64
	CategoryID          *int64
	CategoryName        string
	ExperienceRequired  int
	CreatedAt           time.Time
	Deadline            *time.Time
	IsActive            bool
	IsSaved             bool
	HasApplied          bool
	RequiresCoverLetter bool
	RequiresResume      bool
}

// DeadlinePassed reports whether the application deadline lies before the given day.
func (j *Job) DeadlinePassed(now time.Time) bool {
	if j.Deadline == nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	deadline := time.Date(j.Deadline.Year(), j.Deadline.Month(), j.Deadline.Day(), 0, 0, 0, 0, now.Location())

	return today.After(deadline)
}

// AcceptsApplications reports whether new applications can be submitted.
func (j *Job) AcceptsApplications(now time.Time) bool {
	return j.IsActive && !j.DeadlinePassed(now)
}

// Category groups jobs for filtering.
type Category struct {
	ID        int64
	Name      string
	Slug      string
	JobsCount int
}

// JobDraft carries the employer-editable fields of a posting.
// Nil fields are omitted, so an update only touches what is set.
type JobDraft struct {
	Title              *string
	Description        *string
	Requirements       *string
	Location           *string
	JobType            *JobType
	CategoryID         *int64
	SalaryMin          *float64
	SalaryMax          *float64
	ExperienceRequired *int
	SkillsRequired     *string
	Deadline           *time.Time
	IsActive           *bool
}
