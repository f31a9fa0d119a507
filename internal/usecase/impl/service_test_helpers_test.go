package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"jobboard/internal/domain/entity"
	mockRepo "jobboard/internal/mocks/repository"
	mockUsecase "jobboard/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mintAccessToken signs a token the way the identity service does; the client never verifies it.
func mintAccessToken(t *testing.T, userID int64, ttl time.Duration) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"token_type": "access",
		"user_id":    userID,
		"exp":        time.Now().Add(ttl).Unix(),
	}).SignedString([]byte("identity-service-secret"))
	require.NoError(t, err)

	return token
}

// restoreSession seeds a session service through Restore.
func restoreSession(t *testing.T, srv interface{ Restore(context.Context) error }, repo *mockRepo.MockSessionRepository, session *entity.Session) {
	t.Helper()

	repo.EXPECT().Get(context.Background()).Return(session, nil).Once()
	require.NoError(t, srv.Restore(context.Background()))
}

// signedInAs returns a session mock that reports an authenticated user with role.
func signedInAs(t *testing.T, id int64, role entity.Role) *mockUsecase.MockSessionUsecase {
	t.Helper()

	session := mockUsecase.NewMockSessionUsecase(t)
	session.EXPECT().Session().Return(entity.Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         &entity.User{ID: id, Email: "user@example.com", Role: role, DisplayName: "User"},
	}).Maybe()

	return session
}

// signedOut returns a session mock with no credentials.
func signedOut(t *testing.T) *mockUsecase.MockSessionUsecase {
	t.Helper()

	session := mockUsecase.NewMockSessionUsecase(t)
	session.EXPECT().Session().Return(entity.Session{}).Maybe()

	return session
}
