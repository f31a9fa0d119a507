// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"jobboard/internal/domain/entity"
)

// Slot names of the durable session store.
const (
	SlotAccessToken  = "access_token"
	SlotRefreshToken = "refresh_token"
	SlotUser         = "user"
)

// SessionRepository persists the client session in three slots:
// access token, refresh token and a snapshot of the user profile.
type SessionRepository interface {
	// Get returns the persisted session. An empty session is returned when nothing is stored.
	Get(ctx context.Context) (*entity.Session, error)

	// Set overwrites all three slots in one transaction.
	// A nil user clears the user slot.
	Set(ctx context.Context, session *entity.Session) error

	// SetAccessToken replaces only the access token slot.
	SetAccessToken(ctx context.Context, accessToken string) error

	// Clear removes all three slots in one transaction.
	Clear(ctx context.Context) error
}
