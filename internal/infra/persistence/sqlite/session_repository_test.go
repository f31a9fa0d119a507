package sqlite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"jobboard/config"
	"jobboard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		TokenStore: &config.TokenStoreConfig{Path: filepath.Join(t.TempDir(), "nested", "session.db")},
	}
}

func openTestDB(t *testing.T, cfg *config.Config, logger *slog.Logger) *gorm.DB {
	t.Helper()

	db, err := Open(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { closeDB(t, db) })

	return db
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	_ = sqlDB.Close()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionRepository_EmptyStore(t *testing.T) {
	repo := NewSessionRepository(openTestDB(t, newTestConfig(t), discardLogger()))

	session, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, session.IsAuthenticated())
	assert.Empty(t, session.RefreshToken)
	assert.Nil(t, session.User)
}

func TestSessionRepository_SetOverwritesAllSlots(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(openTestDB(t, newTestConfig(t), discardLogger()))

	require.NoError(t, repo.Set(ctx, &entity.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         &entity.User{ID: 3, Email: "a@b.com", Role: entity.RoleJobSeeker, DisplayName: "Ada"},
	}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-1", got.AccessToken)
	assert.Equal(t, "refresh-1", got.RefreshToken)
	require.NotNil(t, got.User)
	assert.Equal(t, entity.RoleJobSeeker, got.User.Role)
	assert.Equal(t, "Ada", got.User.DisplayName)

	// No merge: a session without a user drops the old snapshot.
	require.NoError(t, repo.Set(ctx, &entity.Session{AccessToken: "access-2", RefreshToken: "refresh-2"}))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-2", got.AccessToken)
	assert.Equal(t, "refresh-2", got.RefreshToken)
	assert.Nil(t, got.User)
}

func TestSessionRepository_SetAccessTokenKeepsOtherSlots(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(openTestDB(t, newTestConfig(t), discardLogger()))

	require.NoError(t, repo.Set(ctx, &entity.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         &entity.User{ID: 1, Role: entity.RoleEmployer},
	}))
	require.NoError(t, repo.SetAccessToken(ctx, "access-2"))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-2", got.AccessToken)
	assert.Equal(t, "refresh-1", got.RefreshToken)
	assert.True(t, got.User.HasRole(entity.RoleEmployer))
}

func TestSessionRepository_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(openTestDB(t, newTestConfig(t), discardLogger()))

	require.NoError(t, repo.Set(ctx, &entity.Session{AccessToken: "a", RefreshToken: "r"}))
	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Session{}, *got)
}

func TestSessionRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(t)

	first, err := Open(cfg, discardLogger())
	require.NoError(t, err)
	require.NoError(t, NewSessionRepository(first).Set(ctx, &entity.Session{AccessToken: "a", RefreshToken: "r"}))
	closeDB(t, first)

	second := openTestDB(t, cfg, discardLogger())
	got, err := NewSessionRepository(second).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", got.AccessToken)
	assert.Equal(t, "r", got.RefreshToken)
}

func TestSessionRepository_DoesNotLogCredentials(t *testing.T) {
	ctx := context.Background()
	cfg := newTestConfig(t)
	cfg.Env.Debug = true

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	repo := NewSessionRepository(openTestDB(t, cfg, logger))

	require.NoError(t, repo.Set(ctx, &entity.Session{AccessToken: "secret-access", RefreshToken: "secret-refresh"}))

	assert.Contains(t, buf.String(), "session_slots")
	assert.NotContains(t, buf.String(), "secret-access")
	assert.NotContains(t, buf.String(), "secret-refresh")
}
