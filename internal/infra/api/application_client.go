package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/infra/transport"

	"github.com/pkg/errors"
)

const (
	pathApply                = "/jobs/applications/apply/"
	pathMyApplications       = "/jobs/applications/my-applications/"
	pathEmployerApplications = "/jobs/employer/applications/"
	pathSaved                = "/jobs/saved/"
)

const alreadyAppliedMarker = "already applied"

// applicationClient implements service.ApplicationService over the REST API.
type applicationClient struct {
	client *transport.Client
}

// NewApplicationClient is the constructor for applicationClient.
func NewApplicationClient(client *transport.Client) service.ApplicationService {
	return &applicationClient{client: client}
}

// Create submits an application for the signed-in job seeker.
func (c *applicationClient) Create(ctx context.Context, req *service.ApplyRequest) (*entity.Application, error) {
	body := map[string]any{"job": req.JobID}
	if req.CoverLetter != "" {
		body["cover_letter"] = req.CoverLetter
	}
	if req.ResumeRef != "" {
		body["resume"] = req.ResumeRef
	}

	var resp applicationWire

	err := c.client.Do(ctx, transport.Request{Method: http.MethodPost, Path: pathApply, Body: body, Auth: true}, &resp)
	if err != nil {
		if isAlreadyApplied(err) {
			return nil, errors.Wrapf(domainerrors.ErrAlreadyApplied, "job %d", req.JobID)
		}

		return nil, errors.Wrapf(err, "failed to apply for job %d", req.JobID)
	}

	app := resp.toDomain()
	if app.JobID == 0 {
		app.JobID = req.JobID
	}

	return app, nil
}

// ListMine returns the applications of the signed-in job seeker.
func (c *applicationClient) ListMine(ctx context.Context) ([]*entity.Application, error) {
	apps, err := c.listApplications(ctx, pathMyApplications, nil)

	return apps, errors.Wrap(err, "failed to list my applications")
}

// ListForEmployer returns applications to the signed-in employer's jobs.
func (c *applicationClient) ListForEmployer(ctx context.Context, jobID *int64) ([]*entity.Application, error) {
	var query url.Values
	if jobID != nil {
		query = url.Values{"job_id": {strconv.FormatInt(*jobID, 10)}}
	}

	apps, err := c.listApplications(ctx, pathEmployerApplications, query)

	return apps, errors.Wrap(err, "failed to list employer applications")
}

func (c *applicationClient) listApplications(ctx context.Context, path string, query url.Values) ([]*entity.Application, error) {
	items, err := collect[applicationWire](ctx, c.client, transport.Request{Method: http.MethodGet, Path: path, Query: query, Auth: true})
	if err != nil {
		return nil, err
	}

	apps := make([]*entity.Application, 0, len(items))
	for i := range items {
		apps = append(apps, items[i].toDomain())
	}

	return apps, nil
}

// PatchStatus sets the status of one application.
func (c *applicationClient) PatchStatus(ctx context.Context, applicationID int64, status entity.ApplicationStatus) (*entity.Application, error) {
	var resp applicationWire

	err := c.client.Do(ctx, transport.Request{
		Method: http.MethodPatch,
		Path:   pathEmployerApplications + strconv.FormatInt(applicationID, 10) + "/status/",
		Body:   map[string]string{"status": string(status)},
		Auth:   true,
	}, &resp)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update application %d", applicationID)
	}

	return resp.toDomain(), nil
}

// AddSaved saves a job. Saving an already saved job succeeds.
func (c *applicationClient) AddSaved(ctx context.Context, jobID int64) error {
	err := c.client.Do(ctx, transport.Request{Method: http.MethodPost, Path: savedPath(jobID), Auth: true}, nil)

	return errors.Wrapf(err, "failed to save job %d", jobID)
}

// RemoveSaved removes a saved job. The service answers 404 when it was not saved.
func (c *applicationClient) RemoveSaved(ctx context.Context, jobID int64) error {
	err := c.client.Do(ctx, transport.Request{Method: http.MethodDelete, Path: savedPath(jobID), Auth: true}, nil)

	return errors.Wrapf(err, "failed to unsave job %d", jobID)
}

// ListSaved returns the saved jobs of the signed-in job seeker.
func (c *applicationClient) ListSaved(ctx context.Context) ([]*entity.SavedJob, error) {
	items, err := collect[savedJobWire](ctx, c.client, transport.Request{Method: http.MethodGet, Path: pathSaved, Auth: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved jobs")
	}

	saved := make([]*entity.SavedJob, 0, len(items))
	for i := range items {
		saved = append(saved, items[i].toDomain())
	}

	return saved, nil
}

func savedPath(jobID int64) string {
	return pathSaved + strconv.FormatInt(jobID, 10) + "/"
}

func isAlreadyApplied(err error) bool {
	verr, ok := domainerrors.AsValidation(err)
	if !ok {
		return false
	}

	for _, messages := range verr.Fields {
		for _, msg := range messages {
			if strings.Contains(strings.ToLower(msg), alreadyAppliedMarker) {
				return true
			}
		}
	}

	return false
}
