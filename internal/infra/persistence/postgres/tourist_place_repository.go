package postgres

import (
	"context"

	"tourist/internal/domain/entity"
	domainerrors "tourist/internal/domain/errors"
	"tourist/internal/domain/repository"
	"tourist/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// touristPlaceRepository implements the repository.TouristPlaceRepository interface.
type touristPlaceRepository struct {
	db *gorm.DB
}

// NewTouristPlaceRepository is the constructor for touristPlaceRepository.
func NewTouristPlaceRepository(db *gorm.DB) repository.TouristPlaceRepository {
	return &touristPlaceRepository{
		db: db,
	}
}

// FindActive returns active tourist places matching the filter, ordered by name.
func (repo *touristPlaceRepository) FindActive(ctx context.Context, filter repository.TouristPlaceFilter) ([]*entity.TouristPlace, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.TouristPlaceModel{}).
		Where("is_active = ?", true)

	if len(filter.Interests) > 0 {
		interests := make([]string, 0, len(filter.Interests))
		for _, interest := range filter.Interests {
			interests = append(interests, string(interest))
		}
		query = query.Where("interest IN ?", interests)
	}
	if len(filter.Tiers) > 0 {
		tiers := make([]string, 0, len(filter.Tiers))
		for _, tier := range filter.Tiers {
			tiers = append(tiers, string(tier))
		}
		query = query.Where("budget_tier IN ?", tiers)
	}

	var placeModels []*model.TouristPlaceModel
	if err := query.Order("name ASC").Find(&placeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active tourist places")
	}

	places := make([]*entity.TouristPlace, 0, len(placeModels))
	for _, placeM := range placeModels {
		places = append(places, toTouristPlaceDomain(placeM))
	}

	return places, nil
}

// FindByIDs returns the tourist places that still exist among ids, keyed by ID.
func (repo *touristPlaceRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*entity.TouristPlace, error) {
	found := make(map[uint]*entity.TouristPlace, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	var placeModels []*model.TouristPlaceModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&placeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tourist places by IDs")
	}

	for _, placeM := range placeModels {
		found[placeM.ID] = toTouristPlaceDomain(placeM)
	}

	return found, nil
}

// UpsertTouristPlace inserts the tourist place or overwrites the row with the same name.
func (repo *touristPlaceRepository) UpsertTouristPlace(ctx context.Context, place *entity.TouristPlace) error {
	placeM := fromTouristPlaceDomain(place)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"location", "description", "interest", "budget_tier", "estimated_cost", "image_url", "is_active",
			}),
		}).
		Create(placeM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid tourist place " + place.Name)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert tourist place")
	}

	place.ID = placeM.ID
	place.CreatedAt = placeM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toTouristPlaceDomain(data *model.TouristPlaceModel) *entity.TouristPlace {
	if data == nil {
		return nil
	}

	return &entity.TouristPlace{
		ID:            data.ID,
		Name:          data.Name,
		Location:      data.Location,
		Description:   data.Description,
		Interest:      entity.InterestCategory(data.Interest),
		BudgetTier:    entity.BudgetTier(data.BudgetTier),
		EstimatedCost: data.EstimatedCost,
		ImageURL:      data.ImageURL,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
	}
}

func fromTouristPlaceDomain(data *entity.TouristPlace) *model.TouristPlaceModel {
	if data == nil {
		return nil
	}

	return &model.TouristPlaceModel{
		ID:            data.ID,
		Name:          data.Name,
		Location:      data.Location,
		Description:   data.Description,
		Interest:      string(data.Interest),
		BudgetTier:    string(data.BudgetTier),
		EstimatedCost: data.EstimatedCost,
		ImageURL:      data.ImageURL,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
	}
}
