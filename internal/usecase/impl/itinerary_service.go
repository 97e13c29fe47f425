package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tourist/config"
	"tourist/internal/domain/entity"
	domainerrors "tourist/internal/domain/errors"
	"tourist/internal/domain/repository"
	"tourist/internal/domain/service"
	"tourist/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ItineraryServiceParams holds dependencies for the itinerary service, injected by Fx.
type ItineraryServiceParams struct {
	fx.In

	TouristPlaceRepo repository.TouristPlaceRepository
	TravelPlanRepo   repository.TravelPlanRepository
	DraftRepo        repository.DraftRepository
	TxManager        repository.TransactionManager
	Allocator        *Allocator
	Weather          service.WeatherProvider `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

type itineraryService struct {
	touristPlaceRepo repository.TouristPlaceRepository
	travelPlanRepo   repository.TravelPlanRepository
	draftRepo        repository.DraftRepository
	txManager        repository.TransactionManager
	allocator        *Allocator
	weather          service.WeatherProvider
	maxDays          int
	logger           *slog.Logger
}

// NewItineraryService creates the itinerary use case.
func NewItineraryService(params ItineraryServiceParams) usecase.ItineraryUsecase {
	settings := params.Config.ItinerarySettings()

	allocator := params.Allocator
	if allocator == nil {
		allocator = NewAllocator(settings.PlacesPerDay, nil)
	}

	return &itineraryService{
		touristPlaceRepo: params.TouristPlaceRepo,
		travelPlanRepo:   params.TravelPlanRepo,
		draftRepo:        params.DraftRepo,
		txManager:        params.TxManager,
		allocator:        allocator,
		weather:          params.Weather,
		maxDays:          settings.MaxDays,
		logger:           params.Logger,
	}
}

// GeneratePlan allocates matching tourist places over the trip days and stores the
// result as a draft for the user to save.
func (s *itineraryService) GeneratePlan(ctx context.Context, userID uuid.UUID, input *usecase.PlanInput) (*usecase.GeneratedPlan, error) {
	if err := input.Validate(s.maxDays); err != nil {
		return nil, err
	}

	pool, err := s.touristPlaceRepo.FindActive(ctx, repository.TouristPlaceFilter{
		Interests: input.Interests,
		Tiers:     input.Budget.EligibleTiers(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find candidate places: %w", err)
	}

	usedFallback := false
	if len(pool) == 0 {
		s.logger.WarnContext(ctx, "No tourist places match interests and budget, falling back to all active places",
			slog.String("userID", userID.String()),
			slog.String("budget", string(input.Budget)),
			slog.String("interests", entity.JoinInterests(input.Interests)),
		)

		pool, err = s.touristPlaceRepo.FindActive(ctx, repository.TouristPlaceFilter{})
		if err != nil {
			return nil, fmt.Errorf("failed to find active places: %w", err)
		}
		usedFallback = true
	}

	draft := &entity.PlanDraft{
		Token:       uuid.New(),
		UserID:      userID,
		Destination: input.Destination,
		NumDays:     input.NumDays,
		Budget:      input.Budget,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Interests:   input.Interests,
		Days:        s.allocator.Allocate(pool, input.NumDays),
		Costs:       costsOf(input),
		CreatedAt:   time.Now(),
	}

	if err := s.draftRepo.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to store plan draft: %w", err)
	}

	return &usecase.GeneratedPlan{
		Draft:        draft,
		UsedFallback: usedFallback,
	}, nil
}

// SavePlan persists the user's draft as a travel plan in one transaction.
// Places deleted since generation are skipped. The draft is claimed up front so a
// repeated save of the same token cannot create a second plan; it is put back when
// the transaction fails.
func (s *itineraryService) SavePlan(ctx context.Context, userID, token uuid.UUID) (*entity.TravelPlan, error) {
	draft, err := s.draftRepo.TakeDraft(ctx, userID, token)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return nil, domainerrors.ErrDraftNotFound
		}

		return nil, fmt.Errorf("failed to take plan draft: %w", err)
	}

	now := time.Now()
	plan := &entity.TravelPlan{
		ID:          uuid.New(),
		UserID:      userID,
		Destination: draft.Destination,
		NumDays:     draft.NumDays,
		Budget:      draft.Budget,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Interests:   draft.Interests,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if draft.Costs != nil {
		plan.TripBudget = &entity.TripBudget{
			ID:            uuid.New(),
			PlanID:        plan.ID,
			HotelCost:     draft.Costs.HotelCost,
			TransportCost: draft.Costs.TransportCost,
			FoodCost:      draft.Costs.FoodCost,
			UpdatedAt:     now,
		}
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		existing, err := factory.NewTouristPlaceRepository().FindByIDs(ctx, draft.PlaceIDs())
		if err != nil {
			return fmt.Errorf("failed to load drafted places: %w", err)
		}

		plan.Days = s.buildDays(ctx, plan.ID, draft.Days, existing)

		return factory.NewTravelPlanRepository().CreatePlan(ctx, plan)
	})
	if err != nil {
		if restoreErr := s.draftRepo.SaveDraft(ctx, draft); restoreErr != nil {
			s.logger.WarnContext(ctx, "Failed to restore plan draft",
				slog.String("token", token.String()),
				slog.Any("error", restoreErr),
			)
		}

		return nil, fmt.Errorf("failed to save travel plan: %w", err)
	}

	return plan, nil
}

// ListPlans returns the user's plans, newest first.
func (s *itineraryService) ListPlans(ctx context.Context, userID uuid.UUID) ([]*entity.TravelPlan, error) {
	plans, err := s.travelPlanRepo.FindPlansByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find plans by user: %w", err)
	}

	return plans, nil
}

// GetPlan returns one of the user's plans with the current weather at its destination.
func (s *itineraryService) GetPlan(ctx context.Context, userID, planID uuid.UUID) (*usecase.PlanDetail, error) {
	plan, err := s.ownedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	return &usecase.PlanDetail{
		Plan:    plan,
		Weather: s.currentWeather(ctx, plan.Destination),
	}, nil
}

// UpdatePlan edits the plan's own fields and creates or updates its budget.
func (s *itineraryService) UpdatePlan(ctx context.Context, userID, planID uuid.UUID, input *usecase.PlanInput) (*entity.TravelPlan, error) {
	if err := input.Validate(s.maxDays); err != nil {
		return nil, err
	}

	plan, err := s.ownedPlan(ctx, userID, planID)
	if err != nil {
		return nil, err
	}

	if input.NumDays*s.allocator.PlacesPerDay() < plan.TotalItems() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Number of days is too small for the places already scheduled.")
	}

	now := time.Now()
	plan.Destination = input.Destination
	plan.NumDays = input.NumDays
	plan.Budget = input.Budget
	plan.StartDate = input.StartDate
	plan.EndDate = input.EndDate
	plan.Interests = input.Interests
	plan.UpdatedAt = now

	budget := plan.TripBudget
	if budget == nil {
		budget = &entity.TripBudget{ID: uuid.New(), PlanID: plan.ID}
	}
	budget.HotelCost = input.HotelCost
	budget.TransportCost = input.TransportCost
	budget.FoodCost = input.FoodCost
	budget.UpdatedAt = now

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewTravelPlanRepository()
		if err := repo.UpdatePlan(ctx, plan); err != nil {
			return err
		}

		return repo.SaveBudget(ctx, budget)
	})
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, fmt.Errorf("failed to update travel plan: %w", err)
	}

	plan.TripBudget = budget

	return plan, nil
}

// DeletePlan removes one of the user's plans with everything under it.
func (s *itineraryService) DeletePlan(ctx context.Context, userID, planID uuid.UUID) error {
	if _, err := s.ownedPlan(ctx, userID, planID); err != nil {
		return err
	}

	if err := s.travelPlanRepo.DeletePlan(ctx, planID); err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return domainerrors.ErrPlanNotFound
		}

		return fmt.Errorf("failed to delete travel plan: %w", err)
	}

	return nil
}

// ownedPlan loads a plan and hides it from everyone but its owner.
func (s *itineraryService) ownedPlan(ctx context.Context, userID, planID uuid.UUID) (*entity.TravelPlan, error) {
	plan, err := s.travelPlanRepo.FindPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, fmt.Errorf("failed to find travel plan: %w", err)
	}

	if plan.UserID != userID {
		return nil, domainerrors.ErrPlanNotFound
	}

	return plan, nil
}

func (s *itineraryService) buildDays(ctx context.Context, planID uuid.UUID, buckets []entity.DayBucket, existing map[uint]*entity.TouristPlace) []*entity.DayPlan {
	days := make([]*entity.DayPlan, 0, len(buckets))
	for index, bucket := range buckets {
		day := &entity.DayPlan{
			ID:        uuid.New(),
			PlanID:    planID,
			DayNumber: index + 1,
			Items:     make([]*entity.DayPlaceItem, 0, len(bucket.Places)),
		}

		for order, drafted := range bucket.Places {
			place, ok := existing[drafted.ID]
			if !ok {
				s.logger.DebugContext(ctx, "Skipping drafted place that no longer exists",
					slog.Uint64("placeID", uint64(drafted.ID)),
					slog.Int("dayNumber", day.DayNumber),
				)

				continue
			}

			day.Items = append(day.Items, &entity.DayPlaceItem{
				ID:        uuid.New(),
				DayPlanID: day.ID,
				PlaceID:   place.ID,
				Place:     place,
				Order:     order,
			})
		}

		days = append(days, day)
	}

	return days
}

// currentWeather never fails; problems are reported on the returned value.
func (s *itineraryService) currentWeather(ctx context.Context, location string) *entity.Weather {
	if s.weather == nil {
		return nil
	}

	weather, err := s.weather.Current(ctx, location)
	if err != nil {
		s.logger.DebugContext(ctx, "Weather lookup failed",
			slog.String("location", location),
			slog.Any("error", err),
		)

		return &entity.Weather{Error: err.Error()}
	}

	return weather
}

// costsOf returns the traveller's cost figures, or nil when none were entered.
func costsOf(input *usecase.PlanInput) *entity.TripBudget {
	if input.HotelCost == 0 && input.TransportCost == 0 && input.FoodCost == 0 {
		return nil
	}

	return &entity.TripBudget{
		HotelCost:     input.HotelCost,
		TransportCost: input.TransportCost,
		FoodCost:      input.FoodCost,
	}
}
