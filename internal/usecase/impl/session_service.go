// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/infra/auth"
	"jobboard/internal/infra/validation"
	"jobboard/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// sessionService implements the SessionUsecase interface.
//
// Locking: flowMu serialises login, register and logout end to end.
// stateMu guards the in-memory session and generation; every store write
// happens under it so memory and store never disagree. Renewal and expiry
// take only stateMu, which lets a login's profile fetch trigger renewal.
type sessionService struct {
	repo      repository.SessionRepository
	identity  service.IdentityService
	inspector service.TokenInspector
	validate  *validator.Validate
	logger    *slog.Logger

	flowMu     sync.Mutex
	stateMu    sync.RWMutex
	session    entity.Session
	generation uint64

	renewals singleflight.Group

	subMu       sync.Mutex
	subscribers map[int]func()
	nextSubID   int
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Repo      repository.SessionRepository
	Identity  service.IdentityService
	Inspector service.TokenInspector
	Validate  *validator.Validate
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		repo:        params.Repo,
		identity:    params.Identity,
		inspector:   params.Inspector,
		validate:    params.Validate,
		logger:      params.Logger,
		subscribers: make(map[int]func()),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges credentials, persists the session and caches the profile.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	if err := validation.Struct(srv.validate, input); err != nil {
		return nil, err
	}

	srv.flowMu.Lock()
	defer srv.flowMu.Unlock()

	srv.log(ctx).Info("Signing in", slog.String("email", input.Email))

	pair, err := srv.identity.Exchange(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Sign in rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	return srv.establish(ctx, pair, nil)
}

// Register creates an account and signs in with the credentials it returns.
func (srv *sessionService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if err := validation.Struct(srv.validate, input); err != nil {
		return nil, err
	}

	srv.flowMu.Lock()
	defer srv.flowMu.Unlock()

	srv.log(ctx).Info("Registering account", slog.String("email", input.Email), slog.String("role", input.Role.String()))

	result, err := srv.identity.Register(ctx, &service.RegisterRequest{
		Email:           input.Email,
		Password:        input.Password,
		PasswordConfirm: input.PasswordConfirm,
		Role:            input.Role,
		FullName:        input.FullName,
		CompanyName:     input.CompanyName,
		Phone:           input.Phone,
	})
	if err != nil {
		return nil, errors.Wrap(err, "registration failed")
	}

	pair := &result.Tokens
	if pair.AccessToken == "" {
		// Some deployments do not issue tokens on registration.
		pair, err = srv.identity.Exchange(ctx, input.Email, input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "sign in after registration failed")
		}
	}

	return srv.establish(ctx, pair, result.User)
}

// establish persists a fresh session and resolves its profile. On profile
// failure the half-built session is cleared. Callers hold flowMu.
func (srv *sessionService) establish(ctx context.Context, pair *service.TokenPair, user *entity.User) (*entity.User, error) {
	gen, err := srv.replace(ctx, entity.Session{
		AccessToken:     pair.AccessToken,
		RefreshToken:    pair.RefreshToken,
		AccessExpiresAt: auth.ExpiresAt(srv.inspector, pair.AccessToken),
	})
	if err != nil {
		return nil, err
	}

	if user == nil || user.Role == "" {
		user, err = srv.identity.FetchProfile(ctx)
		if err != nil {
			srv.log(ctx).Error("Profile fetch failed, discarding session", slog.Any("error", err))
			srv.clearIf(ctx, gen)

			return nil, errors.Wrap(err, "failed to fetch profile")
		}
	}

	if err := srv.storeProfile(ctx, gen, user); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Signed in", slog.Int64("user_id", user.ID), slog.String("role", user.Role.String()))

	return cloneUser(user), nil
}

// Logout clears the session unconditionally. Store failures are logged, not returned.
func (srv *sessionService) Logout(ctx context.Context) {
	srv.flowMu.Lock()
	defer srv.flowMu.Unlock()

	srv.stateMu.Lock()
	srv.generation++
	srv.session = entity.Session{}
	err := srv.repo.Clear(ctx)
	srv.stateMu.Unlock()

	if err != nil {
		srv.log(ctx).Error("Failed to clear session store on logout", slog.Any("error", err))
	}

	srv.log(ctx).Info("Signed out")
}

// CurrentUser returns the cached profile without I/O.
func (srv *sessionService) CurrentUser() *entity.User {
	srv.stateMu.RLock()
	defer srv.stateMu.RUnlock()

	return cloneUser(srv.session.User)
}

// Session returns a snapshot of the current session.
func (srv *sessionService) Session() entity.Session {
	srv.stateMu.RLock()
	defer srv.stateMu.RUnlock()

	return srv.session.Clone()
}

// AccessToken returns the current access credential.
func (srv *sessionService) AccessToken() string {
	srv.stateMu.RLock()
	defer srv.stateMu.RUnlock()

	return srv.session.AccessToken
}

// RefreshProfile re-fetches the profile and overwrites the cached copy.
func (srv *sessionService) RefreshProfile(ctx context.Context) (*entity.User, error) {
	srv.stateMu.RLock()
	authenticated := srv.session.IsAuthenticated()
	gen := srv.generation
	srv.stateMu.RUnlock()

	if !authenticated {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "refresh profile")
	}

	user, err := srv.identity.FetchProfile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to refresh profile")
	}

	if err := srv.storeProfile(ctx, gen, user); err != nil {
		return nil, err
	}

	return cloneUser(user), nil
}

// UpdateProfile writes the profile for the session's role, then replaces the cached
// profile with the service's copy.
func (srv *sessionService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*entity.User, error) {
	if err := validation.Struct(srv.validate, input); err != nil {
		return nil, err
	}

	user := srv.CurrentUser()
	if user == nil {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "update profile")
	}

	srv.log(ctx).Info("Updating profile", slog.Int64("user_id", user.ID), slog.String("role", user.Role.String()))

	err := srv.identity.UpdateProfile(ctx, user.Role, &service.ProfileUpdate{
		FullName:        input.FullName,
		Phone:           input.Phone,
		Skills:          input.Skills,
		ExperienceYears: input.ExperienceYears,
		Education:       input.Education,
		Bio:             input.Bio,
		LinkedInURL:     input.LinkedInURL,
		GitHubURL:       input.GitHubURL,
		CompanyName:     input.CompanyName,
		CompanyWebsite:  input.CompanyWebsite,
		Description:     input.Description,
		Location:        input.Location,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return srv.RefreshProfile(ctx)
}

// RenewAccessCredential exchanges the refresh credential for a new access credential.
// At most one exchange per session generation is in flight; concurrent callers share it.
// If stale is no longer the current credential a renewal already happened and the
// current credential is returned without a network call.
func (srv *sessionService) RenewAccessCredential(ctx context.Context, stale string) (string, error) {
	srv.stateMu.RLock()
	current := srv.session
	gen := srv.generation
	srv.stateMu.RUnlock()

	if !current.IsAuthenticated() || current.RefreshToken == "" {
		return "", errors.Wrap(domainerrors.ErrSessionExpired, "no session to renew")
	}
	if stale != "" && stale != current.AccessToken {
		return current.AccessToken, nil
	}

	v, err, shared := srv.renewals.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		return srv.renew(context.WithoutCancel(ctx), gen, stale, current.RefreshToken)
	})
	if err != nil {
		return "", err
	}

	if shared {
		srv.log(ctx).Debug("Joined in-flight credential renewal")
	}

	return v.(string), nil
}

func (srv *sessionService) renew(ctx context.Context, gen uint64, stale, refreshToken string) (string, error) {
	// A flight that finished between the caller's check and this one already renewed stale.
	srv.stateMu.RLock()
	latest, sameGen := srv.session.AccessToken, srv.generation == gen
	srv.stateMu.RUnlock()
	if sameGen && stale != "" && latest != stale {
		return latest, nil
	}

	srv.log(ctx).Info("Renewing access credential")

	token, err := srv.identity.ExchangeRefresh(ctx, refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Credential renewal failed, expiring session", slog.Any("error", err))
		if srv.clearIf(ctx, gen) {
			srv.notifyExpired()
		}

		return "", errors.Wrap(domainerrors.ErrSessionExpired.WithDetails(err.Error()), "renewal failed")
	}

	srv.stateMu.Lock()
	defer srv.stateMu.Unlock()

	if srv.generation != gen {
		return "", errors.Wrap(domainerrors.ErrSessionExpired, "session replaced during renewal")
	}

	srv.session.AccessToken = token
	srv.session.AccessExpiresAt = auth.ExpiresAt(srv.inspector, token)
	if err := srv.repo.SetAccessToken(ctx, token); err != nil {
		srv.log(ctx).Error("Failed to persist renewed credential", slog.Any("error", err))
	}

	return token, nil
}

// Expire destroys the session and signals subscribers.
func (srv *sessionService) Expire(ctx context.Context) {
	srv.stateMu.Lock()
	wasAuthenticated := srv.session.IsAuthenticated()
	srv.generation++
	srv.session = entity.Session{}
	err := srv.repo.Clear(ctx)
	srv.stateMu.Unlock()

	if err != nil {
		srv.log(ctx).Error("Failed to clear session store on expiry", slog.Any("error", err))
	}

	if wasAuthenticated {
		srv.log(ctx).Warn("Session expired")
		srv.notifyExpired()
	}
}

// Restore loads the persisted session into memory.
func (srv *sessionService) Restore(ctx context.Context) error {
	stored, err := srv.repo.Get(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to restore session")
	}

	stored.AccessExpiresAt = auth.ExpiresAt(srv.inspector, stored.AccessToken)

	srv.stateMu.Lock()
	srv.generation++
	srv.session = *stored
	srv.stateMu.Unlock()

	if stored.IsAuthenticated() {
		srv.log(ctx).Info("Session restored", slog.String("role", stored.Role().String()))
	}

	return nil
}

// OnSessionExpired registers fn and returns a function that removes it.
func (srv *sessionService) OnSessionExpired(fn func()) func() {
	srv.subMu.Lock()
	defer srv.subMu.Unlock()

	id := srv.nextSubID
	srv.nextSubID++
	srv.subscribers[id] = fn

	return func() {
		srv.subMu.Lock()
		defer srv.subMu.Unlock()

		delete(srv.subscribers, id)
	}
}

func (srv *sessionService) notifyExpired() {
	srv.subMu.Lock()
	fns := make([]func(), 0, len(srv.subscribers))
	for _, fn := range srv.subscribers {
		fns = append(fns, fn)
	}
	srv.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// replace overwrites memory and store with a new session and returns its generation.
func (srv *sessionService) replace(ctx context.Context, session entity.Session) (uint64, error) {
	srv.stateMu.Lock()
	defer srv.stateMu.Unlock()

	if err := srv.repo.Set(ctx, &session); err != nil {
		return 0, errors.Wrap(err, "failed to persist session")
	}

	srv.generation++
	srv.session = session

	return srv.generation, nil
}

// storeProfile caches user on the session of generation gen.
func (srv *sessionService) storeProfile(ctx context.Context, gen uint64, user *entity.User) error {
	srv.stateMu.Lock()
	defer srv.stateMu.Unlock()

	if srv.generation != gen {
		return errors.Wrap(domainerrors.ErrSessionExpired, "session replaced while fetching profile")
	}

	next := srv.session
	next.User = cloneUser(user)
	if err := srv.repo.Set(ctx, &next); err != nil {
		return errors.Wrap(err, "failed to persist profile")
	}
	srv.session = next

	return nil
}

// clearIf clears the session when it still belongs to generation gen.
func (srv *sessionService) clearIf(ctx context.Context, gen uint64) bool {
	srv.stateMu.Lock()
	defer srv.stateMu.Unlock()

	if srv.generation != gen {
		return false
	}

	srv.generation++
	srv.session = entity.Session{}
	if err := srv.repo.Clear(ctx); err != nil {
		srv.log(ctx).Error("Failed to clear session store", slog.Any("error", err))
	}

	return true
}

func cloneUser(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}
	u := *user

	return &u
}
