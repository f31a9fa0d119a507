package api

import (
	"context"
	"net/http"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/infra/transport"

	"github.com/pkg/errors"
)

const (
	pathLogin    = "/auth/login/"
	pathRegister = "/auth/register/"
	pathRefresh  = "/auth/token/refresh/"
	pathProfile  = "/auth/profile/"

	pathEmployerProfile = "/auth/profile/employer/"
	pathSeekerProfile   = "/auth/profile/jobseeker/"
)

// identityClient implements service.IdentityService over the REST API.
type identityClient struct {
	client *transport.Client
}

// NewIdentityClient is the constructor for identityClient.
func NewIdentityClient(client *transport.Client) service.IdentityService {
	return &identityClient{client: client}
}

// Exchange trades an email/password pair for credentials.
func (c *identityClient) Exchange(ctx context.Context, email, password string) (*service.TokenPair, error) {
	var resp credentialsWire

	err := c.client.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   pathLogin,
		Body:   map[string]string{"email": email, "password": password},
	}, &resp)
	if err != nil {
		if transport.IsStatus(err, http.StatusUnauthorized) || transport.IsStatus(err, http.StatusBadRequest) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "credential exchange rejected")
		}

		return nil, errors.Wrap(err, "credential exchange failed")
	}

	pair := resp.pair()
	if pair.Access == "" {
		return nil, errors.Wrap(domainerrors.ErrInternalError.WithDetails("no access token in response"), "credential exchange failed")
	}

	return &service.TokenPair{AccessToken: pair.Access, RefreshToken: pair.Refresh}, nil
}

// ExchangeRefresh trades a refresh credential for a new access credential.
func (c *identityClient) ExchangeRefresh(ctx context.Context, refreshToken string) (string, error) {
	var resp tokenPairWire

	err := c.client.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   pathRefresh,
		Body:   map[string]string{"refresh": refreshToken},
	}, &resp)
	if err != nil {
		if transport.IsStatus(err, http.StatusUnauthorized) || transport.IsStatus(err, http.StatusBadRequest) {
			return "", errors.Wrap(domainerrors.ErrSessionExpired, "refresh credential rejected")
		}

		return "", errors.Wrap(err, "credential renewal failed")
	}

	if resp.Access == "" {
		return "", errors.Wrap(domainerrors.ErrSessionExpired, "no access token in renewal response")
	}

	return resp.Access, nil
}

// FetchProfile returns the profile of the signed-in user.
func (c *identityClient) FetchProfile(ctx context.Context) (*entity.User, error) {
	var resp profileWire

	if err := c.client.Do(ctx, transport.Request{Method: http.MethodGet, Path: pathProfile, Auth: true}, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to fetch profile")
	}

	return resp.toDomain(), nil
}

// Register creates an account and returns its credentials.
func (c *identityClient) Register(ctx context.Context, req *service.RegisterRequest) (*service.RegisterResult, error) {
	body := map[string]string{
		"email":            req.Email,
		"password":         req.Password,
		"password_confirm": req.PasswordConfirm,
		"user_type":        string(req.Role),
	}
	if req.FullName != "" {
		body["full_name"] = req.FullName
	}
	if req.CompanyName != "" {
		body["company_name"] = req.CompanyName
	}
	if req.Phone != "" {
		body["phone"] = req.Phone
	}

	var resp struct {
		credentialsWire
		User *profileWire `json:"user"`
	}

	if err := c.client.Do(ctx, transport.Request{Method: http.MethodPost, Path: pathRegister, Body: body}, &resp); err != nil {
		return nil, errors.Wrap(err, "registration failed")
	}

	result := &service.RegisterResult{}
	if resp.User != nil {
		result.User = resp.User.toDomain()
	}

	pair := resp.pair()
	result.Tokens = service.TokenPair{AccessToken: pair.Access, RefreshToken: pair.Refresh}

	return result, nil
}

// UpdateProfile patches the role-specific profile. Only non-empty fields are sent.
func (c *identityClient) UpdateProfile(ctx context.Context, role entity.Role, update *service.ProfileUpdate) error {
	var (
		path string
		body = map[string]any{}
	)

	set := func(key, value string) {
		if value != "" {
			body[key] = value
		}
	}

	switch role {
	case entity.RoleEmployer:
		path = pathEmployerProfile
		set("company_name", update.CompanyName)
		set("company_website", update.CompanyWebsite)
		set("description", update.Description)
		set("location", update.Location)
		set("contact_phone", update.Phone)
	case entity.RoleJobSeeker:
		path = pathSeekerProfile
		set("full_name", update.FullName)
		set("phone", update.Phone)
		set("skills", update.Skills)
		set("education", update.Education)
		set("bio", update.Bio)
		set("linkedin_url", update.LinkedInURL)
		set("github_url", update.GitHubURL)
		if update.ExperienceYears != nil {
			body["experience_years"] = *update.ExperienceYears
		}
	default:
		return errors.Wrapf(domainerrors.ErrForbidden.WithDetails("no profile for role "+role.String()), "failed to update profile")
	}

	err := c.client.Do(ctx, transport.Request{Method: http.MethodPatch, Path: path, Body: body, Auth: true}, nil)

	return errors.Wrap(err, "failed to update profile")
}
