package handler

import (
	"time"

	"jobboard/internal/domain/entity"
)

// UserResponse is the public view of the signed-in account.
type UserResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	UserType    string `json:"user_type"`
	DisplayName string `json:"display_name"`
}

// JobResponse is the public view of a job posting.
type JobResponse struct {
	ID                  int64      `json:"id"`
	Title               string     `json:"title"`
	EmployerName        string     `json:"employer_name"`
	Location            string     `json:"location"`
	JobType             string     `json:"job_type"`
	SalaryMin           *float64   `json:"salary_min,omitempty"`
	SalaryMax           *float64   `json:"salary_max,omitempty"`
	CategoryID          *int64     `json:"category_id,omitempty"`
	CategoryName        string     `json:"category_name,omitempty"`
	ExperienceRequired  int        `json:"experience_required"`
	CreatedAt           time.Time  `json:"created_at"`
	Deadline            *time.Time `json:"deadline,omitempty"`
	IsActive            bool       `json:"is_active"`
	IsSaved             bool       `json:"is_saved"`
	HasApplied          bool       `json:"has_applied"`
	RequiresCoverLetter bool       `json:"requires_cover_letter"`
	RequiresResume      bool       `json:"requires_resume"`
}

// PageResponse is one page of jobs.
type PageResponse struct {
	Results     []*JobResponse `json:"results"`
	Count       int            `json:"count"`
	Page        int            `json:"page"`
	HasNext     bool           `json:"has_next"`
	HasPrevious bool           `json:"has_previous"`
}

// CategoryResponse is a job category for filter menus.
type CategoryResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	JobsCount int    `json:"jobs_count"`
}

// ApplicationResponse is the public view of an application.
type ApplicationResponse struct {
	ID             int64      `json:"id"`
	JobID          int64      `json:"job_id"`
	JobTitle       string     `json:"job_title"`
	ApplicantID    int64      `json:"applicant_id,omitempty"`
	ApplicantName  string     `json:"applicant_name,omitempty"`
	ApplicantEmail string     `json:"applicant_email,omitempty"`
	Status         string     `json:"status"`
	NextStatuses   []string   `json:"next_statuses"`
	CoverLetter    string     `json:"cover_letter,omitempty"`
	Resume         string     `json:"resume,omitempty"`
	AppliedAt      time.Time  `json:"applied_at"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
}

// ApplicationListResponse is a filtered list with counts over every status.
type ApplicationListResponse struct {
	Results []*ApplicationResponse `json:"results"`
	Status  string                 `json:"status"`
	Counts  map[string]int         `json:"counts"`
}

// SavedJobResponse is one entry of the saved list.
type SavedJobResponse struct {
	JobID   int64        `json:"job_id"`
	Job     *JobResponse `json:"job,omitempty"`
	SavedAt time.Time    `json:"saved_at"`
}

// EmployerDashboardResponse is the employer landing view.
type EmployerDashboardResponse struct {
	TotalJobs           int                    `json:"total_jobs"`
	ActiveJobs          int                    `json:"active_jobs"`
	TotalApplications   int                    `json:"total_applications"`
	PendingApplications int                    `json:"pending_applications"`
	StatusCounts        map[string]int         `json:"status_counts"`
	RecentJobs          []*JobResponse         `json:"recent_jobs"`
	RecentApplications  []*ApplicationResponse `json:"recent_applications"`
}

// SeekerDashboardResponse is the job seeker landing view.
type SeekerDashboardResponse struct {
	TotalApplications   int                    `json:"total_applications"`
	PendingApplications int                    `json:"pending_applications"`
	SavedJobs           int                    `json:"saved_jobs"`
	StatusCounts        map[string]int         `json:"status_counts"`
	RecentApplications  []*ApplicationResponse `json:"recent_applications"`
	RecentSavedJobs     []*SavedJobResponse    `json:"recent_saved_jobs"`
}

func toUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		UserType:    u.Role.String(),
		DisplayName: u.DisplayName,
	}
}

func toJobResponse(j *entity.Job) *JobResponse {
	if j == nil {
		return nil
	}

	return &JobResponse{
		ID:                  j.ID,
		Title:               j.Title,
		EmployerName:        j.EmployerName,
		Location:            j.Location,
		JobType:             string(j.JobType),
		SalaryMin:           j.SalaryMin,
		SalaryMax:           j.SalaryMax,
		CategoryID:          j.CategoryID,
		CategoryName:        j.CategoryName,
		ExperienceRequired:  j.ExperienceRequired,
		CreatedAt:           j.CreatedAt,
		Deadline:            j.Deadline,
		IsActive:            j.IsActive,
		IsSaved:             j.IsSaved,
		HasApplied:          j.HasApplied,
		RequiresCoverLetter: j.RequiresCoverLetter,
		RequiresResume:      j.RequiresResume,
	}
}

func toJobResponses(jobs []*entity.Job) []*JobResponse {
	out := make([]*JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}

	return out
}

func toPageResponse(p *entity.Page[*entity.Job]) *PageResponse {
	return &PageResponse{
		Results:     toJobResponses(p.Items),
		Count:       p.TotalCount,
		Page:        p.Number,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
	}
}

func toCategoryResponses(categories []*entity.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, &CategoryResponse{ID: c.ID, Name: c.Name, Slug: c.Slug, JobsCount: c.JobsCount})
	}

	return out
}

func toApplicationResponse(a *entity.Application) *ApplicationResponse {
	next := a.Status.NextStatuses()
	nextStatuses := make([]string, 0, len(next))
	for _, s := range next {
		nextStatuses = append(nextStatuses, string(s))
	}

	return &ApplicationResponse{
		ID:             a.ID,
		JobID:          a.JobID,
		JobTitle:       a.JobTitle,
		ApplicantID:    a.ApplicantID,
		ApplicantName:  a.ApplicantName,
		ApplicantEmail: a.ApplicantEmail,
		Status:         string(a.Status),
		NextStatuses:   nextStatuses,
		CoverLetter:    a.CoverLetter,
		Resume:         a.ResumeRef,
		AppliedAt:      a.AppliedAt,
		ReviewedAt:     a.ReviewedAt,
	}
}

func toApplicationResponses(apps []*entity.Application) []*ApplicationResponse {
	out := make([]*ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toApplicationResponse(a))
	}

	return out
}

func toStatusCounts(c entity.StatusCounts) map[string]int {
	out := make(map[string]int, len(c.Counts)+1)
	out["all"] = c.All
	for status, n := range c.Counts {
		out[string(status)] = n
	}

	return out
}

func toSavedJobResponses(saved []*entity.SavedJob) []*SavedJobResponse {
	out := make([]*SavedJobResponse, 0, len(saved))
	for _, s := range saved {
		out = append(out, &SavedJobResponse{JobID: s.JobID, Job: toJobResponse(s.Job), SavedAt: s.SavedAt})
	}

	return out
}
