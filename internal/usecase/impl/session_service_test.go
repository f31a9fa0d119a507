package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/infra/auth"
	"jobboard/internal/infra/validation"
	mockRepo "jobboard/internal/mocks/repository"
	mockService "jobboard/internal/mocks/service"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service  usecase.SessionUsecase
	repo     *mockRepo.MockSessionRepository
	identity *mockService.MockIdentityService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	repo := mockRepo.NewMockSessionRepository(t)
	identity := mockService.NewMockIdentityService(t)

	srv := NewSessionService(SessionServiceParams{
		Repo:      repo,
		Identity:  identity,
		Inspector: auth.NewJWTInspector(),
		Validate:  validation.New(),
		Logger:    newDiscardLogger(),
	})

	return sessionServiceFixtures{
		service:  srv,
		repo:     repo,
		identity: identity,
	}
}

func sessionWith(access, refresh string, user *entity.User) *entity.Session {
	return &entity.Session{AccessToken: access, RefreshToken: refresh, User: user}
}

func matchSession(access, refresh string, withUser bool) interface{} {
	return mock.MatchedBy(func(s *entity.Session) bool {
		return s.AccessToken == access && s.RefreshToken == refresh && (s.User != nil) == withUser
	})
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	access := mintAccessToken(t, 7, 5*time.Minute)
	seeker := &entity.User{ID: 7, Email: "ada@example.com", Role: entity.RoleJobSeeker, DisplayName: "Ada"}

	fx.identity.EXPECT().Exchange(ctx, "ada@example.com", "correct-horse").
		Return(&service.TokenPair{AccessToken: access, RefreshToken: "r1"}, nil)
	fx.repo.EXPECT().Set(ctx, matchSession(access, "r1", false)).Return(nil).Once()
	fx.identity.EXPECT().FetchProfile(ctx).Return(seeker, nil)
	fx.repo.EXPECT().Set(ctx, matchSession(access, "r1", true)).Return(nil).Once()

	user, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, seeker, user)

	snapshot := fx.service.Session()
	assert.True(t, snapshot.IsAuthenticated())
	assert.Equal(t, entity.RoleJobSeeker, snapshot.Role())
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), snapshot.AccessExpiresAt, 2*time.Second)
	assert.Equal(t, access, fx.service.AccessToken())

	// The cached profile is a copy.
	fx.service.CurrentUser().DisplayName = "mutated"
	assert.Equal(t, "Ada", fx.service.CurrentUser().DisplayName)
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.identity.EXPECT().Exchange(ctx, "ada@example.com", "wrong").
		Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "credential exchange rejected"))

	user, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Nil(t, fx.service.CurrentUser())
}

func TestSessionService_Login_ValidatesInput(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "not-an-email"})

	verr, ok := domainerrors.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "password")
}

func TestSessionService_Login_ProfileFailureClearsSession(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.identity.EXPECT().Exchange(ctx, "ada@example.com", "pw").
		Return(&service.TokenPair{AccessToken: "a1", RefreshToken: "r1"}, nil)
	fx.repo.EXPECT().Set(ctx, matchSession("a1", "r1", false)).Return(nil).Once()
	fx.identity.EXPECT().FetchProfile(ctx).Return(nil, domainerrors.ErrNetwork)
	fx.repo.EXPECT().Clear(ctx).Return(nil).Once()

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrNetwork))
	assert.False(t, fx.service.Session().IsAuthenticated())
}

func TestSessionService_Register(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	employer := &entity.User{ID: 3, Email: "hr@acme.test", Role: entity.RoleEmployer, DisplayName: "Acme"}

	fx.identity.EXPECT().Register(ctx, mock.MatchedBy(func(req *service.RegisterRequest) bool {
		return req.Role == entity.RoleEmployer && req.CompanyName == "Acme"
	})).Return(&service.RegisterResult{
		User:   employer,
		Tokens: service.TokenPair{AccessToken: "a1", RefreshToken: "r1"},
	}, nil)
	fx.repo.EXPECT().Set(ctx, matchSession("a1", "r1", false)).Return(nil).Once()
	fx.repo.EXPECT().Set(ctx, matchSession("a1", "r1", true)).Return(nil).Once()

	user, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:           "hr@acme.test",
		Password:        "longenough",
		PasswordConfirm: "longenough",
		Role:            entity.RoleEmployer,
		CompanyName:     "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, employer, user)
	assert.True(t, fx.service.CurrentUser().HasRole(entity.RoleEmployer))
}

func TestSessionService_Register_ValidationErrors(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:           "hr@acme.test",
		Password:        "short",
		PasswordConfirm: "other",
		Role:            "admin",
	})

	verr, ok := domainerrors.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "password")
	assert.Contains(t, verr.Fields, "password_confirm")
	assert.Contains(t, verr.Fields, "user_type")
}

func TestSessionService_Register_ServerRejection(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	serverErr := domainerrors.NewValidationError().Add("email", "user with this email already exists.")
	fx.identity.EXPECT().Register(ctx, mock.Anything).Return(nil, serverErr)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email: "taken@example.com", Password: "longenough", PasswordConfirm: "longenough", Role: entity.RoleJobSeeker,
	})

	verr, ok := domainerrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, []string{"user with this email already exists."}, verr.Fields["email"])
}

func TestSessionService_Logout_IsUnconditional(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	restoreSession(t, fx.service, fx.repo, sessionWith("a1", "r1", &entity.User{ID: 1, Role: entity.RoleJobSeeker}))

	fx.repo.EXPECT().Clear(ctx).Return(errors.New("disk full")).Once()
	fx.service.Logout(ctx)
	assert.False(t, fx.service.Session().IsAuthenticated())
	assert.Nil(t, fx.service.CurrentUser())

	fx.repo.EXPECT().Clear(ctx).Return(nil).Once()
	fx.service.Logout(ctx)
	assert.False(t, fx.service.Session().IsAuthenticated())
}

func TestSessionService_Restore(t *testing.T) {
	fx := createTestSessionService(t)

	access := mintAccessToken(t, 1, time.Hour)
	restoreSession(t, fx.service, fx.repo, sessionWith(access, "r1", &entity.User{ID: 1, Role: entity.RoleEmployer}))

	snapshot := fx.service.Session()
	assert.Equal(t, access, snapshot.AccessToken)
	assert.Equal(t, entity.RoleEmployer, snapshot.Role())
	assert.False(t, snapshot.AccessExpiresAt.IsZero())
}

func TestSessionService_RefreshProfile(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	_, err := fx.service.RefreshProfile(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrNotAuthenticated))

	restoreSession(t, fx.service, fx.repo, sessionWith("a1", "r1", &entity.User{ID: 1, Role: entity.RoleJobSeeker, DisplayName: "Old"}))

	fx.identity.EXPECT().FetchProfile(ctx).Return(&entity.User{ID: 1, Role: entity.RoleJobSeeker, DisplayName: "New"}, nil)
	fx.repo.EXPECT().Set(ctx, matchSession("a1", "r1", true)).Return(nil).Once()

	user, err := fx.service.RefreshProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New", user.DisplayName)
	assert.Equal(t, "New", fx.service.CurrentUser().DisplayName)
}

func TestSessionService_RenewAccessCredential_Coalesces(t *testing.T) {
	fx := createTestSessionService(t)
	restoreSession(t, fx.service, fx.repo, sessionWith("stale", "r1", &entity.User{ID: 1, Role: entity.RoleJobSeeker}))

	const callers = 25

	var started sync.WaitGroup
	started.Add(callers)
	release := make(chan struct{})
	var exchanges atomic.Int32

	fx.identity.EXPECT().ExchangeRefresh(mock.Anything, "r1").
		RunAndReturn(func(context.Context, string) (string, error) {
			exchanges.Add(1)
			<-release

			return "fresh", nil
		}).Once()
	fx.repo.EXPECT().SetAccessToken(mock.Anything, "fresh").Return(nil).Once()

	results := make([]string, callers)
	errs := make([]error, callers)

	var done sync.WaitGroup
	done.Add(callers)
	for i := range callers {
		go func() {
			defer done.Done()
			started.Done()
			results[i], errs[i] = fx.service.RenewAccessCredential(context.Background(), "stale")
		}()
	}

	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	done.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, "fresh", results[i])
	}
	assert.Equal(t, int32(1), exchanges.Load())
	assert.Equal(t, "fresh", fx.service.AccessToken())
}

func TestSessionService_RenewAccessCredential_AlreadyRenewed(t *testing.T) {
	fx := createTestSessionService(t)
	restoreSession(t, fx.service, fx.repo, sessionWith("current", "r1", nil))

	token, err := fx.service.RenewAccessCredential(context.Background(), "older")
	require.NoError(t, err)
	assert.Equal(t, "current", token)
}

func TestSessionService_RenewAccessCredential_FailureExpires(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	restoreSession(t, fx.service, fx.repo, sessionWith("a1", "r1", &entity.User{ID: 1, Role: entity.RoleEmployer}))

	var signals atomic.Int32
	fx.service.OnSessionExpired(func() { signals.Add(1) })

	fx.identity.EXPECT().ExchangeRefresh(mock.Anything, "r1").
		Return("", errors.Wrap(domainerrors.ErrSessionExpired, "refresh credential rejected")).Once()
	fx.repo.EXPECT().Clear(mock.Anything).Return(nil).Once()

	_, err := fx.service.RenewAccessCredential(ctx, "a1")
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
	assert.False(t, fx.service.Session().IsAuthenticated())
	assert.Equal(t, int32(1), signals.Load())

	// Without a session there is nothing to renew and no network call.
	_, err = fx.service.RenewAccessCredential(ctx, "a1")
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
}

func TestSessionService_RenewAccessCredential_DiscardedAfterLogout(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	restoreSession(t, fx.service, fx.repo, sessionWith("a1", "r1", nil))

	entered := make(chan struct{})
	release := make(chan struct{})
	fx.identity.EXPECT().ExchangeRefresh(mock.Anything, "r1").
		RunAndReturn(func(context.Context, string) (string, error) {
			close(entered)
			<-release

			return "late", nil
		}).Once()
	fx.repo.EXPECT().Clear(ctx).Return(nil).Once()

	errCh := make(chan error, 1)
	go func() {
		_, err := fx.service.RenewAccessCredential(ctx, "a1")
		errCh <- err
	}()

	<-entered
	fx.service.Logout(ctx)
	close(release)

	err := <-errCh
	assert.True(t, errors.Is(err, domainerrors.ErrSessionExpired))
	assert.Empty(t, fx.service.AccessToken())
	fx.repo.AssertNotCalled(t, "SetAccessToken", mock.Anything, mock.Anything)
}

func TestSessionService_Expire(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	var first, second atomic.Int32
	unsubscribe := fx.service.OnSessionExpired(func() { first.Add(1) })
	fx.service.OnSessionExpired(func() { second.Add(1) })

	restoreSession(t, fx.service, fx.repo, sessionWith("a1", "r1", nil))
	fx.repo.EXPECT().Clear(ctx).Return(nil).Times(2)

	fx.service.Expire(ctx)
	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())

	// Expiring a signed-out session raises no signal.
	fx.service.Expire(ctx)
	assert.Equal(t, int32(1), second.Load())

	unsubscribe()
	restoreSession(t, fx.service, fx.repo, sessionWith("a2", "r2", nil))
	fx.repo.EXPECT().Clear(ctx).Return(nil).Once()
	fx.service.Expire(ctx)
	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(2), second.Load())
}

func TestSessionService_UpdateProfile(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{CompanyName: "Acme"})
	require.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)

	restoreSession(t, fx.service, fx.repo, sessionWith("a1", "r1", &entity.User{ID: 3, Role: entity.RoleEmployer, DisplayName: "Old Co"}))

	fx.identity.EXPECT().UpdateProfile(ctx, entity.RoleEmployer, &service.ProfileUpdate{CompanyName: "Acme", Location: "Berlin"}).Return(nil).Once()
	fx.identity.EXPECT().FetchProfile(ctx).Return(&entity.User{ID: 3, Role: entity.RoleEmployer, DisplayName: "Acme"}, nil).Once()
	fx.repo.EXPECT().Set(ctx, matchSession("a1", "r1", true)).Return(nil).Once()

	user, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{CompanyName: "Acme", Location: "Berlin"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", user.DisplayName)
	assert.Equal(t, "Acme", fx.service.CurrentUser().DisplayName)
}

func TestSessionService_UpdateProfile_RejectedKeepsCachedProfile(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	restoreSession(t, fx.service, fx.repo, sessionWith("a1", "r1", &entity.User{ID: 4, Role: entity.RoleJobSeeker, DisplayName: "Ada"}))

	_, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{LinkedInURL: "not a url"})
	verr, ok := domainerrors.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "linkedin_url")

	fx.identity.EXPECT().UpdateProfile(ctx, entity.RoleJobSeeker, mock.Anything).
		Return(domainerrors.NewValidationError().Add("phone", "Ensure this field has no more than 20 characters.")).Once()

	_, err = fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{FullName: "Ada Lovelace"})
	verr, ok = domainerrors.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, verr.Fields, "phone")
	assert.Equal(t, "Ada", fx.service.CurrentUser().DisplayName)
}

func TestSessionService_AccessExpiryFollowsInspector(t *testing.T) {
	repo := mockRepo.NewMockSessionRepository(t)
	identity := mockService.NewMockIdentityService(t)
	inspector := mockService.NewMockTokenInspector(t)

	srv := NewSessionService(SessionServiceParams{
		Repo:      repo,
		Identity:  identity,
		Inspector: inspector,
		Validate:  validation.New(),
		Logger:    newDiscardLogger(),
	})

	restoredExpiry := time.Date(2030, time.March, 1, 10, 0, 0, 0, time.UTC)
	inspector.EXPECT().Inspect("a1").Return(&service.Claims{UserID: 1, TokenType: "access", ExpiresAt: restoredExpiry}, nil).Once()
	restoreSession(t, srv, repo, sessionWith("a1", "r1", &entity.User{ID: 1, Role: entity.RoleJobSeeker}))
	assert.Equal(t, restoredExpiry, srv.Session().AccessExpiresAt)

	// An unreadable credential is still used; only its expiry is unknown.
	identity.EXPECT().ExchangeRefresh(mock.Anything, "r1").Return("opaque", nil).Once()
	repo.EXPECT().SetAccessToken(mock.Anything, "opaque").Return(nil).Once()
	inspector.EXPECT().Inspect("opaque").Return(nil, errors.New("token is malformed")).Once()

	token, err := srv.RenewAccessCredential(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "opaque", token)
	assert.Equal(t, "opaque", srv.AccessToken())
	assert.True(t, srv.Session().AccessExpiresAt.IsZero())
}
