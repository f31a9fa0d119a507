package service

import "time"

// Claims are the readable claims of an access credential issued by the identity service.
type Claims struct {
	UserID    int64
	TokenType string
	ExpiresAt time.Time
}

// TokenInspector reads claims from a credential without verifying its signature.
// The client never holds the signing key; the identity service is the only verifier.
type TokenInspector interface {
	// Inspect decodes the claims of a token string.
	Inspect(token string) (*Claims, error)
}
