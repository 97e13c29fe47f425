package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"tourist/internal/domain/entity"
	domainerrors "tourist/internal/domain/errors"

	"github.com/google/uuid"
)

// PlanInput carries the traveller's trip preferences for generating or editing a plan.
type PlanInput struct {
	Destination   string
	NumDays       int
	Budget        entity.BudgetTier
	StartDate     time.Time
	EndDate       time.Time
	Interests     []entity.InterestCategory
	HotelCost     float64
	TransportCost float64
	FoodCost      float64
}

// Validate checks the trip preferences; maxDays bounds NumDays.
func (in *PlanInput) Validate(maxDays int) error {
	if strings.TrimSpace(in.Destination) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("Destination is required.")
	}
	if in.NumDays < 1 || in.NumDays > maxDays {
		return domainerrors.ErrValidationFailed.WithDetails("Number of days must be between 1 and " + strconv.Itoa(maxDays) + ".")
	}
	if !in.Budget.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("Unknown budget tier.")
	}
	if len(in.Interests) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("Select at least one interest.")
	}
	for _, interest := range in.Interests {
		if !interest.IsValid() {
			return domainerrors.ErrValidationFailed.WithDetails("Unknown interest: " + string(interest) + ".")
		}
	}
	if in.EndDate.Before(in.StartDate) {
		return domainerrors.ErrValidationFailed.WithDetails("End date must be after start date.")
	}
	if in.NumDays > in.SpanDays() {
		return domainerrors.ErrValidationFailed.WithDetails("Number of days exceeds the selected date range.")
	}
	if in.HotelCost < 0 || in.TransportCost < 0 || in.FoodCost < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("Costs cannot be negative.")
	}

	return nil
}

// SpanDays is the inclusive number of calendar days between start and end.
func (in *PlanInput) SpanDays() int {
	start := time.Date(in.StartDate.Year(), in.StartDate.Month(), in.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(in.EndDate.Year(), in.EndDate.Month(), in.EndDate.Day(), 0, 0, 0, 0, time.UTC)

	return int(end.Sub(start).Hours()/24) + 1
}

// GeneratedPlan is an unsaved itinerary preview. Token addresses the stored draft.
type GeneratedPlan struct {
	Draft *entity.PlanDraft

	// UsedFallback is set when no place matched the interests and budget
	// and all active places were used instead.
	UsedFallback bool
}

// PlanDetail is a saved plan with the destination weather, when available.
type PlanDetail struct {
	Plan    *entity.TravelPlan
	Weather *entity.Weather
}

// ItineraryUsecase defines the lifecycle of a user's travel plans.
type ItineraryUsecase interface {
	GeneratePlan(ctx context.Context, userID uuid.UUID, input *PlanInput) (*GeneratedPlan, error)
	SavePlan(ctx context.Context, userID, token uuid.UUID) (*entity.TravelPlan, error)
	ListPlans(ctx context.Context, userID uuid.UUID) ([]*entity.TravelPlan, error)
	GetPlan(ctx context.Context, userID, planID uuid.UUID) (*PlanDetail, error)
	UpdatePlan(ctx context.Context, userID, planID uuid.UUID, input *PlanInput) (*entity.TravelPlan, error)
	DeletePlan(ctx context.Context, userID, planID uuid.UUID) error
}
