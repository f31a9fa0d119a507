// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"jobboard/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email           string      `json:"email" validate:"required,email"`
	Password        string      `json:"password" validate:"required,min=8"`
	PasswordConfirm string      `json:"password_confirm" validate:"required,eqfield=Password"`
	Role            entity.Role `json:"user_type" validate:"required,oneof=employer job_seeker"`
	FullName        string      `json:"full_name" validate:"max=255"`
	CompanyName     string      `json:"company_name" validate:"max=255"`
	Phone           string      `json:"phone" validate:"max=20"`
}

// UpdateProfileInput carries profile fields to change. Empty fields are left as they are.
// Company fields apply to employers, personal ones to job seekers.
type UpdateProfileInput struct {
	FullName        string `json:"full_name" validate:"max=200"`
	Phone           string `json:"phone" validate:"max=20"`
	Skills          string `json:"skills"`
	ExperienceYears *int   `json:"experience_years" validate:"omitempty,min=0"`
	Education       string `json:"education"`
	Bio             string `json:"bio"`
	LinkedInURL     string `json:"linkedin_url" validate:"omitempty,url"`
	GitHubURL       string `json:"github_url" validate:"omitempty,url"`
	CompanyName     string `json:"company_name" validate:"max=100"`
	CompanyWebsite  string `json:"company_website" validate:"omitempty,url"`
	Description     string `json:"description"`
	Location        string `json:"location" validate:"max=100"`
}

// SessionUsecase owns the client session: credential acquisition, silent renewal and teardown.
// It also signs outgoing API requests, so it satisfies the transport's Credentials contract.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*entity.User, error)
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Logout clears the session unconditionally. It never fails.
	Logout(ctx context.Context)

	// CurrentUser returns the cached profile without I/O, or nil when signed out.
	CurrentUser() *entity.User

	// Session returns a snapshot of the current session.
	Session() entity.Session

	RefreshProfile(ctx context.Context) (*entity.User, error)

	// UpdateProfile changes the signed-in user's profile and re-fetches the cached copy.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*entity.User, error)

	// AccessToken returns the current access credential, or "" when signed out.
	AccessToken() string

	// RenewAccessCredential exchanges the refresh credential for a new access credential.
	// Concurrent callers share a single renewal.
	RenewAccessCredential(ctx context.Context, stale string) (string, error)

	// Expire destroys the session and signals SessionExpired subscribers.
	Expire(ctx context.Context)

	// Restore loads the persisted session.
	Restore(ctx context.Context) error

	// OnSessionExpired registers fn and returns a function that removes it.
	OnSessionExpired(fn func()) (unsubscribe func())
}
