package entity

import "time"

// Session is the client-side credential set for one signed-in account.
type Session struct {
	AccessToken     string    // Short-lived credential attached to API calls.
	RefreshToken    string    // Longer-lived credential used only to obtain a new access token.
	AccessExpiresAt time.Time // Decoded from the access token when available; informational only.
	User            *User     // Cached profile; nil until fetched.
}

// IsAuthenticated reports whether the session carries an access credential.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// Role returns the cached profile role, or an empty Role when no profile is cached.
func (s Session) Role() Role {
	if s.User == nil {
		return ""
	}

	return s.User.Role
}

// Clone returns a deep copy so callers cannot mutate the cached profile.
func (s Session) Clone() Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}

	return s
}
