package postgres

import (
	"context"

	"tourist/internal/domain/entity"
	domainerrors "tourist/internal/domain/errors"
	"tourist/internal/domain/repository"
	"tourist/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// travelPlanRepository implements the repository.TravelPlanRepository interface.
type travelPlanRepository struct {
	db *gorm.DB
}

// NewTravelPlanRepository is the constructor for travelPlanRepository.
func NewTravelPlanRepository(db *gorm.DB) repository.TravelPlanRepository {
	return &travelPlanRepository{
		db: db,
	}
}

// CreatePlan persists the plan with its days, items and budget.
// GORM inserts the nested has-many and has-one associations in the same statement chain.
func (repo *travelPlanRepository) CreatePlan(ctx context.Context, plan *entity.TravelPlan) error {
	planM := fromTravelPlanDomain(plan)

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("plan references an unknown tourist place")
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("duplicate day in plan")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create travel plan")
	}

	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

// FindPlanByID loads a plan with ordered days, ordered items and its budget.
func (repo *travelPlanRepository) FindPlanByID(ctx context.Context, id uuid.UUID) (*entity.TravelPlan, error) {
	var planM model.TravelPlanModel

	if err := repo.withAggregate(ctx).
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find travel plan by ID")
	}

	return toTravelPlanDomain(&planM), nil
}

// FindPlansByUser returns the user's plans, newest first.
func (repo *travelPlanRepository) FindPlansByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TravelPlan, error) {
	var planModels []*model.TravelPlanModel

	if err := repo.withAggregate(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find travel plans by user")
	}

	plans := make([]*entity.TravelPlan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toTravelPlanDomain(planM))
	}

	return plans, nil
}

// UpdatePlan saves the plan's own columns.
func (repo *travelPlanRepository) UpdatePlan(ctx context.Context, plan *entity.TravelPlan) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TravelPlanModel{}).
		Where("id = ?", plan.ID).
		Updates(map[string]any{
			"destination": plan.Destination,
			"num_days":    plan.NumDays,
			"budget":      string(plan.Budget),
			"start_date":  plan.StartDate,
			"end_date":    plan.EndDate,
			"interests":   entity.JoinInterests(plan.Interests),
			"updated_at":  plan.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update travel plan")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// SaveBudget inserts the budget or replaces the figures of the plan's existing one.
func (repo *travelPlanRepository) SaveBudget(ctx context.Context, budget *entity.TripBudget) error {
	budgetM := fromTripBudgetDomain(budget)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "plan_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"hotel_cost", "transport_cost", "food_cost", "updated_at"}),
		}).
		Create(budgetM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPlanNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save trip budget")
	}

	return nil
}

// DeletePlan removes the plan and everything under it. Children are deleted explicitly
// so the result does not depend on the database enforcing cascades.
func (repo *travelPlanRepository) DeletePlan(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dayIDs := tx.Model(&model.DayPlanModel{}).Select("id").Where("plan_id = ?", id)

		if err := tx.Where("day_plan_id IN (?)", dayIDs).Delete(&model.DayPlaceItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete day place items")
		}

		if err := tx.Where("plan_id = ?", id).Delete(&model.DayPlanModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete day plans")
		}

		if err := tx.Where("plan_id = ?", id).Delete(&model.TripBudgetModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete trip budget")
		}

		result := tx.Where("id = ?", id).Delete(&model.TravelPlanModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete travel plan")
		}

		if result.RowsAffected == 0 {
			return repository.ErrPlanNotFound
		}

		return nil
	})
}

// withAggregate preloads days by day number, items by order with their place, and the budget.
func (repo *travelPlanRepository) withAggregate(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("Days.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Days.Items.Place").
		Preload("TripBudget")
}

// --- Mapper Functions ---

func toTravelPlanDomain(data *model.TravelPlanModel) *entity.TravelPlan {
	if data == nil {
		return nil
	}

	plan := &entity.TravelPlan{
		ID:          data.ID,
		UserID:      data.UserID,
		Destination: data.Destination,
		NumDays:     data.NumDays,
		Budget:      entity.BudgetTier(data.Budget),
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Interests:   entity.SplitInterests(data.Interests),
		Days:        make([]*entity.DayPlan, 0, len(data.Days)),
		TripBudget:  toTripBudgetDomain(data.TripBudget),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	for _, dayM := range data.Days {
		day := &entity.DayPlan{
			ID:        dayM.ID,
			PlanID:    dayM.PlanID,
			DayNumber: dayM.DayNumber,
			Items:     make([]*entity.DayPlaceItem, 0, len(dayM.Items)),
		}
		for _, itemM := range dayM.Items {
			day.Items = append(day.Items, &entity.DayPlaceItem{
				ID:        itemM.ID,
				DayPlanID: itemM.DayPlanID,
				PlaceID:   itemM.PlaceID,
				Place:     toTouristPlaceDomain(itemM.Place),
				Order:     itemM.SortOrder,
				Notes:     itemM.Notes,
			})
		}
		plan.Days = append(plan.Days, day)
	}

	return plan
}

// fromTravelPlanDomain leaves item places unset so creating a plan never writes tourist places.
func fromTravelPlanDomain(data *entity.TravelPlan) *model.TravelPlanModel {
	if data == nil {
		return nil
	}

	planM := &model.TravelPlanModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Destination: data.Destination,
		NumDays:     data.NumDays,
		Budget:      string(data.Budget),
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		Interests:   entity.JoinInterests(data.Interests),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Days:        make([]*model.DayPlanModel, 0, len(data.Days)),
		TripBudget:  fromTripBudgetDomain(data.TripBudget),
	}

	for _, day := range data.Days {
		dayM := &model.DayPlanModel{
			ID:        day.ID,
			PlanID:    data.ID,
			DayNumber: day.DayNumber,
			Items:     make([]*model.DayPlaceItemModel, 0, len(day.Items)),
		}
		for _, item := range day.Items {
			dayM.Items = append(dayM.Items, &model.DayPlaceItemModel{
				ID:        item.ID,
				DayPlanID: day.ID,
				PlaceID:   item.PlaceID,
				SortOrder: item.Order,
				Notes:     item.Notes,
			})
		}
		planM.Days = append(planM.Days, dayM)
	}

	return planM
}

func toTripBudgetDomain(data *model.TripBudgetModel) *entity.TripBudget {
	if data == nil {
		return nil
	}

	return &entity.TripBudget{
		ID:            data.ID,
		PlanID:        data.PlanID,
		HotelCost:     data.HotelCost,
		TransportCost: data.TransportCost,
		FoodCost:      data.FoodCost,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromTripBudgetDomain(data *entity.TripBudget) *model.TripBudgetModel {
	if data == nil {
		return nil
	}

	return &model.TripBudgetModel{
		ID:            data.ID,
		PlanID:        data.PlanID,
		HotelCost:     data.HotelCost,
		TransportCost: data.TransportCost,
		FoodCost:      data.FoodCost,
		UpdatedAt:     data.UpdatedAt,
	}
}
