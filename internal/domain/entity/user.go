package entity

// User is the profile of the account behind the current session.
// It is immutable for the life of a session and only replaced by an explicit profile re-fetch.
type User struct {
	ID          int64  // Identifier assigned by the identity service.
	Email       string // Login identifier.
	Role        Role   // employer or job_seeker.
	DisplayName string // Company name for employers, full name for job seekers, email otherwise.
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	return u != nil && u.Role == role
}
