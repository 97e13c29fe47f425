package repository

import (
	"context"

	"tourist/internal/domain/entity"
)

// TouristPlaceFilter narrows active tourist places. Empty slices do not filter.
type TouristPlaceFilter struct {
	Interests []entity.InterestCategory
	Tiers     []entity.BudgetTier
}

// TouristPlaceRepository defines the interface for itinerary candidate operations.
type TouristPlaceRepository interface {
	// FindActive returns active tourist places matching the filter, ordered by name.
	FindActive(ctx context.Context, filter TouristPlaceFilter) ([]*entity.TouristPlace, error)

	// FindByIDs returns the tourist places that still exist among ids, keyed by ID.
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*entity.TouristPlace, error)

	// UpsertTouristPlace creates the tourist place or updates the existing one with the same name.
	UpsertTouristPlace(ctx context.Context, place *entity.TouristPlace) error
}
