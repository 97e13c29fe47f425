package usecase

import (
	"context"

	"tourist/internal/domain/entity"
)

// ListPlacesInput filters the place listing. Query matches name, location or description.
type ListPlacesInput struct {
	Category entity.PlaceCategory
	Query    string
}

// ListHillStationsInput filters the hill station listing by state and city substrings.
type ListHillStationsInput struct {
	State string
	City  string
}

type PlaceDetail struct {
	Place  *entity.Place
	Nearby []entity.SearchResult
}

type HillStationDetail struct {
	HillStation *entity.HillStation
	Nearby      []entity.SearchResult
}

// HillStationListing carries the filtered stations and the full filter choices.
type HillStationListing struct {
	HillStations []*entity.HillStation
	States       []string
	Cities       []string
}

// CatalogUsecase defines the read side of the place and hill station catalogs.
type CatalogUsecase interface {
	ListPlaces(ctx context.Context, input *ListPlacesInput) ([]*entity.Place, error)
	GetPlace(ctx context.Context, id uint) (*PlaceDetail, error)
	ListHillStations(ctx context.Context, input *ListHillStationsInput) (*HillStationListing, error)
	GetHillStation(ctx context.Context, id uint) (*HillStationDetail, error)
}
