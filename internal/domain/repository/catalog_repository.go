// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"tourist/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrPlaceNotFound is returned when a place is not found.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrHillStationNotFound is returned when a hill station is not found.
	ErrHillStationNotFound = errors.New("hill station not found")
)

// PlaceFilter narrows a place listing. Text fields match case-insensitively as substrings;
// empty fields do not filter.
type PlaceFilter struct {
	Category entity.PlaceCategory

	// Keyword matches name, location or description.
	Keyword string

	// NameOrLocation matches name or location.
	NameOrLocation string

	// LocatedOnly keeps places with both coordinates set.
	LocatedOnly bool
}

// HillStationFilter narrows a hill station listing. All matches are case-insensitive substrings.
type HillStationFilter struct {
	State string
	City  string

	// Text matches city, name or state.
	Text string
}

// PlaceRepository defines the interface for place catalog operations.
type PlaceRepository interface {
	// ListPlaces returns places matching the filter, newest first.
	ListPlaces(ctx context.Context, filter PlaceFilter) ([]*entity.Place, error)

	// FindPlaceByID retrieves a place by its ID.
	FindPlaceByID(ctx context.Context, id uint) (*entity.Place, error)

	// UpsertPlace creates the place or updates the existing one with the same name.
	UpsertPlace(ctx context.Context, place *entity.Place) error
}

// HillStationRepository defines the interface for hill station catalog operations.
type HillStationRepository interface {
	// ListHillStations returns hill stations matching the filter, newest first.
	ListHillStations(ctx context.Context, filter HillStationFilter) ([]*entity.HillStation, error)

	// FindHillStationByID retrieves a hill station by its ID.
	FindHillStationByID(ctx context.Context, id uint) (*entity.HillStation, error)

	// ListLocations returns the distinct, sorted states and cities of all hill stations.
	ListLocations(ctx context.Context) (states []string, cities []string, err error)

	// UpsertHillStation creates the hill station or updates the existing one with the same name.
	UpsertHillStation(ctx context.Context, station *entity.HillStation) error
}
