package postgres

import (
	"context"
	"strings"

	"tourist/internal/domain/entity"
	domainerrors "tourist/internal/domain/errors"
	"tourist/internal/domain/repository"
	"tourist/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// placeRepository implements the repository.PlaceRepository interface.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{
		db: db,
	}
}

// ListPlaces returns places matching the filter, newest first.
func (repo *placeRepository) ListPlaces(ctx context.Context, filter repository.PlaceFilter) ([]*entity.Place, error) {
	query := repo.db.WithContext(ctx).Model(&model.PlaceModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.Keyword != "" {
		pattern := containsPattern(filter.Keyword)
		query = query.Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(location) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\'", pattern, pattern, pattern)
	}
	if filter.NameOrLocation != "" {
		pattern := containsPattern(filter.NameOrLocation)
		query = query.Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(location) LIKE ? ESCAPE '\\'", pattern, pattern)
	}
	if filter.LocatedOnly {
		query = query.Where("latitude IS NOT NULL AND longitude IS NOT NULL")
	}

	var placeModels []*model.PlaceModel
	if err := query.Order("created_at DESC").Order("id DESC").Find(&placeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	places := make([]*entity.Place, 0, len(placeModels))
	for _, placeM := range placeModels {
		places = append(places, toPlaceDomain(placeM))
	}

	return places, nil
}

// FindPlaceByID retrieves a place by its ID.
func (repo *placeRepository) FindPlaceByID(ctx context.Context, id uint) (*entity.Place, error) {
	var placeM model.PlaceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&placeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find place by ID")
	}

	return toPlaceDomain(&placeM), nil
}

// UpsertPlace inserts the place or overwrites the row with the same name.
func (repo *placeRepository) UpsertPlace(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "location", "category", "latitude", "longitude", "image_url"}),
		}).
		Create(placeM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid place " + place.Name)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert place")
	}

	place.ID = placeM.ID
	place.CreatedAt = placeM.CreatedAt

	return nil
}

// hillStationRepository implements the repository.HillStationRepository interface.
type hillStationRepository struct {
	db *gorm.DB
}

// NewHillStationRepository is the constructor for hillStationRepository.
func NewHillStationRepository(db *gorm.DB) repository.HillStationRepository {
	return &hillStationRepository{
		db: db,
	}
}

// ListHillStations returns hill stations matching the filter, newest first.
func (repo *hillStationRepository) ListHillStations(ctx context.Context, filter repository.HillStationFilter) ([]*entity.HillStation, error) {
	query := repo.db.WithContext(ctx).Model(&model.HillStationModel{})

	if filter.State != "" {
		query = query.Where("LOWER(state) LIKE ? ESCAPE '\\'", containsPattern(filter.State))
	}
	if filter.City != "" {
		query = query.Where("LOWER(city) LIKE ? ESCAPE '\\'", containsPattern(filter.City))
	}
	if filter.Text != "" {
		pattern := containsPattern(filter.Text)
		query = query.Where("LOWER(city) LIKE ? ESCAPE '\\' OR LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(state) LIKE ? ESCAPE '\\'", pattern, pattern, pattern)
	}

	var stationModels []*model.HillStationModel
	if err := query.Order("created_at DESC").Order("id DESC").Find(&stationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list hill stations")
	}

	stations := make([]*entity.HillStation, 0, len(stationModels))
	for _, stationM := range stationModels {
		stations = append(stations, toHillStationDomain(stationM))
	}

	return stations, nil
}

// FindHillStationByID retrieves a hill station by its ID.
func (repo *hillStationRepository) FindHillStationByID(ctx context.Context, id uint) (*entity.HillStation, error) {
	var stationM model.HillStationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&stationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHillStationNotFound
		}

		return nil, errors.Wrap(err, "failed to find hill station by ID")
	}

	return toHillStationDomain(&stationM), nil
}

// ListLocations returns the distinct non-empty states and cities, sorted.
func (repo *hillStationRepository) ListLocations(ctx context.Context) ([]string, []string, error) {
	states, err := repo.distinctColumn(ctx, "state")
	if err != nil {
		return nil, nil, err
	}

	cities, err := repo.distinctColumn(ctx, "city")
	if err != nil {
		return nil, nil, err
	}

	return states, cities, nil
}

func (repo *hillStationRepository) distinctColumn(ctx context.Context, column string) ([]string, error) {
	values := make([]string, 0)

	if err := repo.db.WithContext(ctx).
		Model(&model.HillStationModel{}).
		Where(column+" <> ''").
		Distinct(column).
		Order(column).
		Pluck(column, &values).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list distinct hill station %s values", column)
	}

	return values, nil
}

// UpsertHillStation inserts the hill station or overwrites the row with the same name.
func (repo *hillStationRepository) UpsertHillStation(ctx context.Context, station *entity.HillStation) error {
	stationM := fromHillStationDomain(station)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"city", "district", "state", "country", "description",
				"best_time_to_visit", "temperature_range", "latitude", "longitude", "image_url",
			}),
		}).
		Create(stationM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid hill station " + station.Name)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert hill station")
	}

	station.ID = stationM.ID
	station.CreatedAt = stationM.CreatedAt

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds a case-insensitive substring pattern for `LIKE ? ESCAPE '\'`.
// Columns are lowered in SQL.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(text))) + "%"
}

// --- Mapper Functions ---

func toPlaceDomain(data *model.PlaceModel) *entity.Place {
	if data == nil {
		return nil
	}

	return &entity.Place{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Location:    data.Location,
		Category:    entity.PlaceCategory(data.Category),
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
	}
}

func fromPlaceDomain(data *entity.Place) *model.PlaceModel {
	if data == nil {
		return nil
	}

	category := data.Category
	if category == "" {
		category = entity.CategoryOther
	}

	return &model.PlaceModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Location:    data.Location,
		Category:    string(category),
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
	}
}

func toHillStationDomain(data *model.HillStationModel) *entity.HillStation {
	if data == nil {
		return nil
	}

	return &entity.HillStation{
		ID:               data.ID,
		Name:             data.Name,
		City:             data.City,
		District:         data.District,
		State:            data.State,
		Country:          data.Country,
		Description:      data.Description,
		BestTimeToVisit:  data.BestTimeToVisit,
		TemperatureRange: data.TemperatureRange,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		ImageURL:         data.ImageURL,
		CreatedAt:        data.CreatedAt,
	}
}

func fromHillStationDomain(data *entity.HillStation) *model.HillStationModel {
	if data == nil {
		return nil
	}

	country := data.Country
	if country == "" {
		country = entity.DefaultCountry
	}

	return &model.HillStationModel{
		ID:               data.ID,
		Name:             data.Name,
		City:             data.City,
		District:         data.District,
		State:            data.State,
		Country:          country,
		Description:      data.Description,
		BestTimeToVisit:  data.BestTimeToVisit,
		TemperatureRange: data.TemperatureRange,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		ImageURL:         data.ImageURL,
		CreatedAt:        data.CreatedAt,
	}
}
