// Package service defines the ports to the remote job-board services and other stateless domain logic.
package service

import (
	"context"

	"jobboard/internal/domain/entity"
)

// TokenPair is the credential pair issued by the identity service.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterRequest carries the fields accepted by account registration.
type RegisterRequest struct {
	Email           string
	Password        string
	PasswordConfirm string
	Role            entity.Role
	FullName        string
	CompanyName     string
	Phone           string
}

// RegisterResult is the account created by registration together with its implicit session.
type RegisterResult struct {
	User   *entity.User
	Tokens TokenPair
}

// ProfileUpdate carries the profile fields to change. Empty fields are left as they are.
// Which fields apply depends on the role: company fields for employers, personal ones for job seekers.
type ProfileUpdate struct {
	FullName string
	// Phone is the contact phone for employers.
	Phone           string
	Skills          string
	ExperienceYears *int
	Education       string
	Bio             string
	LinkedInURL     string
	GitHubURL       string

	CompanyName    string
	CompanyWebsite string
	Description    string
	Location       string
}

// IdentityService is the remote identity API.
type IdentityService interface {
	// Exchange trades an email/password pair for credentials.
	Exchange(ctx context.Context, email, password string) (*TokenPair, error)

	// ExchangeRefresh trades a refresh credential for a new access credential.
	ExchangeRefresh(ctx context.Context, refreshToken string) (string, error)

	// FetchProfile returns the profile of the signed-in user.
	FetchProfile(ctx context.Context) (*entity.User, error)

	// Register creates an account and returns its credentials.
	Register(ctx context.Context, req *RegisterRequest) (*RegisterResult, error)

	// UpdateProfile changes the role-specific profile of the signed-in user.
	UpdateProfile(ctx context.Context, role entity.Role, update *ProfileUpdate) error
}
