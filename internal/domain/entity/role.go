// Package entity contains the core business objects of the project.
package entity

// Role represents the account type a user is fixed to at registration.
type Role string

const (
	// RoleEmployer indicates an account that posts jobs and triages applications.
	RoleEmployer Role = "employer"
	// RoleJobSeeker indicates an account that browses, saves and applies to jobs.
	RoleJobSeeker Role = "job_seeker"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleEmployer, RoleJobSeeker:
		return true
	default:
		return false
	}
}
