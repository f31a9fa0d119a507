// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"jobboard/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtInspector is a concrete implementation of the TokenInspector interface using the JWT standard.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{
		parser: jwt.NewParser(),
	}
}

// Inspect decodes the claims of an access token without checking its signature.
func (s *jwtInspector) Inspect(tokenString string) (*service.Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.Wrap(err, "failed to decode token")
	}

	result := &service.Claims{}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "invalid exp claim")
	}
	if exp != nil {
		result.ExpiresAt = exp.Time
	}

	if tokenType, ok := claims["token_type"].(string); ok {
		result.TokenType = tokenType
	}

	// The identity service puts the numeric user id in user_id; sub is the fallback.
	switch v := claims["user_id"].(type) {
	case float64:
		result.UserID = int64(v)
	case string:
		result.UserID, _ = strconv.ParseInt(v, 10, 64)
	default:
		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			result.UserID, _ = strconv.ParseInt(sub, 10, 64)
		}
	}

	return result, nil
}

// ExpiresAt returns the expiry of a token, or the zero time when it cannot be read.
func ExpiresAt(inspector service.TokenInspector, token string) time.Time {
	if inspector == nil || token == "" {
		return time.Time{}
	}

	claims, err := inspector.Inspect(token)
	if err != nil {
		return time.Time{}
	}

	return claims.ExpiresAt
}
