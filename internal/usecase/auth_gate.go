package usecase

import "jobboard/internal/domain/entity"

// Verdict is the outcome of a gate check: allow, or redirect elsewhere.
type Verdict struct {
	Allow      bool
	RedirectTo string
}

// AuthGate decides whether a session may enter a route.
type AuthGate interface {
	// CanEnter is pure: it reads only its arguments and never mutates the session.
	CanEnter(requiredRole entity.Role, path string, session entity.Session) Verdict
}
