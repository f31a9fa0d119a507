// Package handler contains the HTTP handlers of the local gateway.
package handler

import (
	"log/slog"
	"net/http"

	"jobboard/internal/delivery/http/response"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler exposes login, registration and the current session.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	user, err := h.sessionUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// Register handles the account creation request. The new account is signed in.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	user, err := h.sessionUC.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// Logout clears the session. It always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessionUC.Logout(c.Request().Context())

	return c.NoContent(http.StatusNoContent)
}

// Me returns the cached profile without contacting the identity service.
func (h *AuthHandler) Me(c echo.Context) error {
	user := h.sessionUC.CurrentUser()
	if user == nil {
		return errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// RefreshProfile re-fetches the profile from the identity service.
func (h *AuthHandler) RefreshProfile(c echo.Context) error {
	user, err := h.sessionUC.RefreshProfile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateProfile changes the signed-in user's profile and returns the re-fetched copy.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.sessionUC.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// HealthCheck is a simple handler to check if the gateway is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
