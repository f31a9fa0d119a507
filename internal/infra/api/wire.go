// Package api adapts the remote job-board REST API to the domain service ports.
package api

import (
	"bytes"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobboard/internal/domain/entity"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

var null = []byte("null")

// decimal accepts a JSON number, a numeric string or null.
type decimal struct {
	Value *float64
}

func (d *decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		d.Value = nil

		return nil
	}

	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	if raw == "" {
		d.Value = nil

		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid decimal %s", string(data))
	}
	d.Value = &v

	return nil
}

// wireTime accepts RFC 3339 timestamps, naive timestamps and plain dates.
type wireTime struct {
	Time time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	time.DateOnly,
}

func (t *wireTime) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "invalid time")
	}
	if raw == nil || *raw == "" {
		t.Time = time.Time{}

		return nil
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, *raw); err == nil {
			t.Time = parsed

			return nil
		}
	}

	return errors.Errorf("unrecognised time %q", *raw)
}

func (t wireTime) ptr() *time.Time {
	if t.Time.IsZero() {
		return nil
	}
	v := t.Time

	return &v
}

// ref is a related object that arrives either as its id or as a nested object.
type ref struct {
	ID          int64
	Name        string
	Title       string
	FullName    string
	CompanyName string
	Email       string
	Nested      bool
}

func (r *ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		*r = ref{}

		return nil
	}

	if data[0] != '{' {
		raw := string(data)
		if unquoted, err := strconv.Unquote(raw); err == nil {
			raw = unquoted
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid reference %s", string(data))
		}
		*r = ref{ID: id}

		return nil
	}

	var obj struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Title       string `json:"title"`
		FullName    string `json:"full_name"`
		CompanyName string `json:"company_name"`
		Email       string `json:"email"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return errors.Wrap(err, "invalid nested reference")
	}

	*r = ref{
		ID:          obj.ID,
		Name:        obj.Name,
		Title:       obj.Title,
		FullName:    obj.FullName,
		CompanyName: obj.CompanyName,
		Email:       obj.Email,
		Nested:      true,
	}

	return nil
}

// list is a collection that arrives either as a bare array or as a paginated envelope.
type list[T any] struct {
	Items    []T
	Count    int
	Next     bool
	Previous bool

	// NextPage is the page number carried by the next link, or 0 when absent or unreadable.
	NextPage int
}

func (l *list[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		*l = list[T]{}

		return nil
	}

	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return errors.Wrap(err, "invalid list")
		}
		*l = list[T]{Items: items, Count: len(items)}

		return nil
	}

	var page struct {
		Count    int     `json:"count"`
		Next     *string `json:"next"`
		Previous *string `json:"previous"`
		Results  []T     `json:"results"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return errors.Wrap(err, "invalid page")
	}

	*l = list[T]{
		Items:    page.Results,
		Count:    page.Count,
		Next:     page.Next != nil && *page.Next != "",
		Previous: page.Previous != nil && *page.Previous != "",
	}
	if l.Next {
		l.NextPage = pageNumber(*page.Next)
	}

	return nil
}

// pageNumber extracts the page query parameter of a next link.
func pageNumber(link string) int {
	u, err := url.Parse(link)
	if err != nil {
		return 0
	}

	n, err := strconv.Atoi(u.Query().Get("page"))
	if err != nil || n < 1 {
		return 0
	}

	return n
}

type jobWire struct {
	ID                  int64    `json:"id"`
	Title               string   `json:"title"`
	EmployerName        string   `json:"employer_name"`
	Employer            ref      `json:"employer"`
	CategoryName        string   `json:"category_name"`
	Category            ref      `json:"category"`
	Location            string   `json:"location"`
	JobType             string   `json:"job_type"`
	SalaryMin           decimal  `json:"salary_min"`
	SalaryMax           decimal  `json:"salary_max"`
	ExperienceRequired  int      `json:"experience_required"`
	IsActive            bool     `json:"is_active"`
	Deadline            wireTime `json:"deadline"`
	CreatedAt           wireTime `json:"created_at"`
	IsSaved             bool     `json:"is_saved"`
	HasApplied          bool     `json:"has_applied"`
	RequiresCoverLetter bool     `json:"requires_cover_letter"`
	RequiresResume      bool     `json:"requires_resume"`
}

func (w *jobWire) toDomain() *entity.Job {
	job := &entity.Job{
		ID:                  w.ID,
		Title:               w.Title,
		EmployerName:        w.EmployerName,
		Location:            w.Location,
		JobType:             entity.JobType(w.JobType),
		SalaryMin:           w.SalaryMin.Value,
		SalaryMax:           w.SalaryMax.Value,
		CategoryName:        w.CategoryName,
		ExperienceRequired:  w.ExperienceRequired,
		CreatedAt:           w.CreatedAt.Time,
		Deadline:            w.Deadline.ptr(),
		IsActive:            w.IsActive,
		IsSaved:             w.IsSaved,
		HasApplied:          w.HasApplied,
		RequiresCoverLetter: w.RequiresCoverLetter,
		RequiresResume:      w.RequiresResume,
	}

	if job.EmployerName == "" {
		job.EmployerName = w.Employer.CompanyName
	}
	if w.Category.ID != 0 {
		id := w.Category.ID
		job.CategoryID = &id
	}
	if job.CategoryName == "" {
		job.CategoryName = w.Category.Name
	}

	return job
}

// jobRef is a job that arrives either as its id or as a nested listing object.
type jobRef struct {
	jobWire
}

func (j *jobRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		return json.Unmarshal(data, &j.jobWire)
	}

	var r ref
	if err := r.UnmarshalJSON(data); err != nil {
		return err
	}
	j.jobWire = jobWire{ID: r.ID}

	return nil
}

type categoryWire struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	JobsCount int    `json:"jobs_count"`
}

func (w *categoryWire) toDomain() *entity.Category {
	return &entity.Category{
		ID:        w.ID,
		Name:      w.Name,
		Slug:      w.Slug,
		JobsCount: w.JobsCount,
	}
}

type applicationWire struct {
	ID             int64    `json:"id"`
	Job            ref      `json:"job"`
	JobTitle       string   `json:"job_title"`
	Applicant      ref      `json:"applicant"`
	ApplicantName  string   `json:"applicant_name"`
	ApplicantEmail string   `json:"applicant_email"`
	CoverLetter    string   `json:"cover_letter"`
	Resume         *string  `json:"resume"`
	Status         string   `json:"status"`
	AppliedAt      wireTime `json:"applied_at"`
	ReviewedAt     wireTime `json:"reviewed_at"`
}

func (w *applicationWire) toDomain() *entity.Application {
	app := &entity.Application{
		ID:             w.ID,
		JobID:          w.Job.ID,
		JobTitle:       w.JobTitle,
		ApplicantID:    w.Applicant.ID,
		ApplicantName:  w.ApplicantName,
		ApplicantEmail: w.ApplicantEmail,
		Status:         entity.ApplicationStatus(w.Status),
		CoverLetter:    w.CoverLetter,
		AppliedAt:      w.AppliedAt.Time,
		ReviewedAt:     w.ReviewedAt.ptr(),
	}

	if w.Resume != nil {
		app.ResumeRef = *w.Resume
	}
	if app.JobTitle == "" {
		app.JobTitle = w.Job.Title
	}
	if app.ApplicantName == "" {
		app.ApplicantName = w.Applicant.FullName
	}
	if app.ApplicantEmail == "" {
		app.ApplicantEmail = w.Applicant.Email
	}

	return app
}

type savedJobWire struct {
	ID      int64    `json:"id"`
	Job     jobRef   `json:"job"`
	SavedAt wireTime `json:"saved_at"`
}

// toDomain leaves ApplicantID unset; the service does not echo the owner.
func (w *savedJobWire) toDomain() *entity.SavedJob {
	job := w.Job.toDomain()
	job.IsSaved = true

	return &entity.SavedJob{
		JobID:   job.ID,
		Job:     job,
		SavedAt: w.SavedAt.Time,
	}
}

type profileWire struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	Profile  *struct {
		CompanyName string `json:"company_name"`
		FullName    string `json:"full_name"`
	} `json:"profile"`
}

func (w *profileWire) toDomain() *entity.User {
	user := &entity.User{
		ID:          w.ID,
		Email:       w.Email,
		Role:        entity.Role(w.UserType),
		DisplayName: w.Email,
	}

	if w.Profile != nil {
		name := w.Profile.FullName
		if user.Role == entity.RoleEmployer {
			name = w.Profile.CompanyName
		}
		if strings.TrimSpace(name) != "" {
			user.DisplayName = name
		}
	}

	return user
}

type tokenPairWire struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// credentialsWire accepts the pair at the top level or nested under "tokens" or "token".
type credentialsWire struct {
	tokenPairWire
	Tokens *tokenPairWire `json:"tokens"`
	Token  *tokenPairWire `json:"token"`
}

func (w *credentialsWire) pair() tokenPairWire {
	switch {
	case w.Access != "":
		return w.tokenPairWire
	case w.Tokens != nil && w.Tokens.Access != "":
		return *w.Tokens
	case w.Token != nil:
		return *w.Token
	default:
		return tokenPairWire{}
	}
}
