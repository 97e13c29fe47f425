// Package service defines the interfaces of external collaborators used by the use cases.
package service

import (
	"context"

	"tourist/internal/domain/entity"

	"github.com/paulmach/orb"
)

// PlacesProvider looks up points of interest around a coordinate in an external catalog.
type PlacesProvider interface {
	// Name identifies the provider in logs.
	Name() string

	// FetchNearby returns places of the given category within radiusKm of center.
	// An empty result is not an error.
	FetchNearby(ctx context.Context, center orb.Point, radiusKm float64, category entity.ExternalCategory) ([]entity.ExternalPlace, error)
}
