package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/infra/transport"

	"github.com/pkg/errors"
)

const (
	pathJobs         = "/jobs/"
	pathCategories   = "/jobs/categories/"
	pathEmployerJobs = "/jobs/employer/jobs/"
	pathCreateJob    = pathEmployerJobs + "create/"
)

// listingClient implements service.ListingService over the REST API.
type listingClient struct {
	client *transport.Client
}

// NewListingClient is the constructor for listingClient.
func NewListingClient(client *transport.Client) service.ListingService {
	return &listingClient{client: client}
}

// Query returns one page of active jobs matching the filter.
func (c *listingClient) Query(ctx context.Context, filter entity.JobFilter) (*entity.Page[*entity.Job], error) {
	var resp list[jobWire]

	err := c.client.Do(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   pathJobs,
		Query:  queryFromFilter(filter),
		Auth:   true,
	}, &resp)
	if err != nil {
		if transport.IsStatus(err, http.StatusNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrPageOutOfRange, "page %d", filter.Page)
		}

		return nil, errors.Wrap(err, "failed to query jobs")
	}

	page := &entity.Page[*entity.Job]{
		Items:       make([]*entity.Job, 0, len(resp.Items)),
		TotalCount:  resp.Count,
		Number:      filter.Page,
		HasNext:     resp.Next,
		HasPrevious: resp.Previous,
	}
	for i := range resp.Items {
		page.Items = append(page.Items, resp.Items[i].toDomain())
	}

	return page, nil
}

// Get returns a single job.
func (c *listingClient) Get(ctx context.Context, jobID int64) (*entity.Job, error) {
	var resp jobWire

	err := c.client.Do(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   pathJobs + strconv.FormatInt(jobID, 10) + "/",
		Auth:   true,
	}, &resp)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get job %d", jobID)
	}

	return resp.toDomain(), nil
}

// Categories returns every job category.
func (c *listingClient) Categories(ctx context.Context) ([]*entity.Category, error) {
	items, err := collect[categoryWire](ctx, c.client, transport.Request{Method: http.MethodGet, Path: pathCategories})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(items))
	for i := range items {
		categories = append(categories, items[i].toDomain())
	}

	return categories, nil
}

// EmployerJobs returns the jobs posted by the signed-in employer.
func (c *listingClient) EmployerJobs(ctx context.Context) ([]*entity.Job, error) {
	items, err := collect[jobWire](ctx, c.client, transport.Request{Method: http.MethodGet, Path: pathEmployerJobs, Auth: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list employer jobs")
	}

	jobs := make([]*entity.Job, 0, len(items))
	for i := range items {
		jobs = append(jobs, items[i].toDomain())
	}

	return jobs, nil
}

// Create posts a new job. The service echoes the written fields, which may omit the id.
func (c *listingClient) Create(ctx context.Context, draft *entity.JobDraft) (*entity.Job, error) {
	var resp jobWire

	err := c.client.Do(ctx, transport.Request{Method: http.MethodPost, Path: pathCreateJob, Body: draftBody(draft), Auth: true}, &resp)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create job")
	}

	return resp.toDomain(), nil
}

// Update patches the set fields of a job.
func (c *listingClient) Update(ctx context.Context, jobID int64, draft *entity.JobDraft) (*entity.Job, error) {
	var resp jobWire

	err := c.client.Do(ctx, transport.Request{
		Method: http.MethodPatch,
		Path:   employerJobPath(jobID, "update/"),
		Body:   draftBody(draft),
		Auth:   true,
	}, &resp)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update job %d", jobID)
	}

	job := resp.toDomain()
	if job.ID == 0 {
		job.ID = jobID
	}

	return job, nil
}

// Delete removes a job.
func (c *listingClient) Delete(ctx context.Context, jobID int64) error {
	err := c.client.Do(ctx, transport.Request{Method: http.MethodDelete, Path: employerJobPath(jobID, "delete/"), Auth: true}, nil)

	return errors.Wrapf(err, "failed to delete job %d", jobID)
}

func employerJobPath(jobID int64, action string) string {
	return pathEmployerJobs + strconv.FormatInt(jobID, 10) + "/" + action
}

// draftBody encodes the set draft fields. Salaries travel as decimal strings and the deadline as a date.
func draftBody(draft *entity.JobDraft) map[string]any {
	body := map[string]any{}
	if draft == nil {
		return body
	}

	if draft.Title != nil {
		body["title"] = *draft.Title
	}
	if draft.Description != nil {
		body["description"] = *draft.Description
	}
	if draft.Requirements != nil {
		body["requirements"] = *draft.Requirements
	}
	if draft.Location != nil {
		body["location"] = *draft.Location
	}
	if draft.JobType != nil {
		body["job_type"] = string(*draft.JobType)
	}
	if draft.CategoryID != nil {
		body["category"] = *draft.CategoryID
	}
	if draft.SalaryMin != nil {
		body["salary_min"] = strconv.FormatFloat(*draft.SalaryMin, 'f', 2, 64)
	}
	if draft.SalaryMax != nil {
		body["salary_max"] = strconv.FormatFloat(*draft.SalaryMax, 'f', 2, 64)
	}
	if draft.ExperienceRequired != nil {
		body["experience_required"] = *draft.ExperienceRequired
	}
	if draft.SkillsRequired != nil {
		body["skills_required"] = *draft.SkillsRequired
	}
	if draft.Deadline != nil {
		body["deadline"] = draft.Deadline.Format(time.DateOnly)
	}
	if draft.IsActive != nil {
		body["is_active"] = *draft.IsActive
	}

	return body
}

// queryFromFilter encodes the non-empty filter fields. Fields combine with AND on the service side.
func queryFromFilter(filter entity.JobFilter) url.Values {
	q := url.Values{}

	if s := strings.TrimSpace(filter.Search); s != "" {
		q.Set("search", s)
	}
	if filter.CategoryID != nil {
		q.Set("category", strconv.FormatInt(*filter.CategoryID, 10))
	}
	if filter.JobType != "" {
		q.Set("job_type", string(filter.JobType))
	}
	if l := strings.TrimSpace(filter.Location); l != "" {
		q.Set("location", l)
	}
	if filter.MinSalary != nil {
		q.Set("min_salary", strconv.FormatFloat(*filter.MinSalary, 'f', -1, 64))
	}
	if filter.MaxSalary != nil {
		q.Set("max_salary", strconv.FormatFloat(*filter.MaxSalary, 'f', -1, 64))
	}
	if filter.Experience != nil {
		q.Set("experience", strconv.Itoa(*filter.Experience))
	}
	if filter.Page > 1 {
		q.Set("page", strconv.Itoa(filter.Page))
	}

	return q
}
