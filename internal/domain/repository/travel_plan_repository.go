package repository

import (
	"context"

	"tourist/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPlanNotFound is returned when a travel plan is not found.
var ErrPlanNotFound = errors.New("travel plan not found")

// TravelPlanRepository defines the interface for travel plan operations.
type TravelPlanRepository interface {
	// CreatePlan persists a plan together with its days, items and budget.
	CreatePlan(ctx context.Context, plan *entity.TravelPlan) error

	// FindPlanByID loads a plan with days ordered by day number, items by order, and its budget.
	FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.TravelPlan, error)

	// FindPlansByUser returns the user's plans, newest first, fully loaded.
	FindPlansByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TravelPlan, error)

	// UpdatePlan saves the plan's own fields. Days and budget are left untouched.
	UpdatePlan(ctx context.Context, plan *entity.TravelPlan) error

	// SaveBudget creates or replaces the budget of a plan.
	SaveBudget(ctx context.Context, budget *entity.TripBudget) error

	// DeletePlan removes a plan with its days, items and budget.
	DeletePlan(ctx context.Context, id uuid.UUID) error
}
