package usecase

import (
	"context"

	"tourist/internal/domain/entity"
)

// NearbyPlacesInput is a lookup against the external places provider.
type NearbyPlacesInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Category  entity.ExternalCategory
}

// ExploreUsecase defines the external nearby-places lookup.
type ExploreUsecase interface {
	// FetchNearby never fails; provider problems come back as an error marker on the result.
	FetchNearby(ctx context.Context, input *NearbyPlacesInput) *entity.NearbyPlacesResult
}
