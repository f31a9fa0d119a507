package impl

import (
	"net/url"

	"jobboard/config"
	"jobboard/internal/domain/entity"
	"jobboard/internal/usecase"
)

const nextParam = "next"

// authGate implements the AuthGate interface.
type authGate struct {
	loginPath string
	homePath  string
}

// NewAuthGate is the constructor for authGate.
func NewAuthGate(cfg *config.Config) usecase.AuthGate {
	gate := &authGate{loginPath: "/login", homePath: "/"}
	if cfg != nil && cfg.Gate != nil {
		if cfg.Gate.LoginPath != "" {
			gate.loginPath = cfg.Gate.LoginPath
		}
		if cfg.Gate.HomePath != "" {
			gate.homePath = cfg.Gate.HomePath
		}
	}

	return gate
}

// CanEnter allows open routes, sends anonymous visitors of gated routes to
// login with a return path, and sends signed-in users of the wrong role home.
// A role mismatch never ends the session.
func (g *authGate) CanEnter(requiredRole entity.Role, path string, session entity.Session) usecase.Verdict {
	if requiredRole == "" {
		return usecase.Verdict{Allow: true}
	}

	if !session.IsAuthenticated() {
		target := g.loginPath
		if path != "" {
			target += "?" + url.Values{nextParam: {path}}.Encode()
		}

		return usecase.Verdict{RedirectTo: target}
	}

	if session.Role() != requiredRole {
		return usecase.Verdict{RedirectTo: g.homePath}
	}

	return usecase.Verdict{Allow: true}
}
