package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GateMiddleware applies AuthGate verdicts to routes.
type GateMiddleware struct {
	gate    usecase.AuthGate
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewGateMiddleware is the constructor for GateMiddleware.
func NewGateMiddleware(gate usecase.AuthGate, session usecase.SessionUsecase, logger *slog.Logger) *GateMiddleware {
	return &GateMiddleware{gate: gate, session: session, logger: logger}
}

// RequireRole is a middleware factory that lets through only sessions holding role.
// Every other request is redirected where the gate says. The verdict is computed
// per request from a fresh session snapshot.
func (m *GateMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snapshot := m.session.Session()

			verdict := m.gate.CanEnter(role, c.Request().URL.RequestURI(), snapshot)
			if !verdict.Allow {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Route gated",
					slog.String("required_role", role.String()),
					slog.String("redirect_to", verdict.RedirectTo),
				)

				return c.Redirect(http.StatusFound, verdict.RedirectTo)
			}

			deliverycontext.SetUser(c, snapshot.User)

			return next(c)
		}
	}
}
