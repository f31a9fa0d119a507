package impl

import (
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
)

// requireRole returns the signed-in user when it holds role.
func requireRole(session usecase.SessionUsecase, role entity.Role) (*entity.User, error) {
	snapshot := session.Session()
	if !snapshot.IsAuthenticated() {
		return nil, errors.Wrap(domainerrors.ErrNotAuthenticated, "sign in required")
	}

	if !snapshot.User.HasRole(role) {
		return nil, domainerrors.ErrForbidden.WithDetails("only a " + role.String() + " can do this")
	}

	return snapshot.User, nil
}
