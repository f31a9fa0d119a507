package usecase

import (
	"context"

	"jobboard/internal/domain/entity"
)

// DashboardUsecase builds the role-specific landing views.
type DashboardUsecase interface {
	EmployerDashboard(ctx context.Context) (*entity.EmployerDashboard, error)
	SeekerDashboard(ctx context.Context) (*entity.SeekerDashboard, error)
}
