package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tourist/internal/domain/entity"
	domainerrors "tourist/internal/domain/errors"
	"tourist/internal/domain/repository"
	"tourist/internal/usecase"

	"go.uber.org/fx"
)

// CatalogServiceParams holds dependencies for the catalog service, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	PlaceRepo       repository.PlaceRepository
	HillStationRepo repository.HillStationRepository
	Search          usecase.SearchUsecase
	Logger          *slog.Logger
}

type catalogService struct {
	placeRepo       repository.PlaceRepository
	hillStationRepo repository.HillStationRepository
	search          usecase.SearchUsecase
	logger          *slog.Logger
}

// NewCatalogService creates the read side of the place and hill station catalogs.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		placeRepo:       params.PlaceRepo,
		hillStationRepo: params.HillStationRepo,
		search:          params.Search,
		logger:          params.Logger,
	}
}

func (s *catalogService) ListPlaces(ctx context.Context, input *usecase.ListPlacesInput) ([]*entity.Place, error) {
	if input.Category != "" && !input.Category.IsStorable() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Unknown place category: " + string(input.Category) + ".")
	}

	places, err := s.placeRepo.ListPlaces(ctx, repository.PlaceFilter{
		Category: input.Category,
		Keyword:  strings.TrimSpace(input.Query),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}

	return places, nil
}

func (s *catalogService) GetPlace(ctx context.Context, id uint) (*usecase.PlaceDetail, error) {
	place, err := s.placeRepo.FindPlaceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return nil, domainerrors.ErrPlaceNotFound
		}

		return nil, fmt.Errorf("failed to find place: %w", err)
	}

	nearby, err := s.search.NearbyItems(ctx, place)
	if err != nil {
		return nil, fmt.Errorf("failed to find items near place: %w", err)
	}

	return &usecase.PlaceDetail{Place: place, Nearby: nearby}, nil
}

func (s *catalogService) ListHillStations(ctx context.Context, input *usecase.ListHillStationsInput) (*usecase.HillStationListing, error) {
	stations, err := s.hillStationRepo.ListHillStations(ctx, repository.HillStationFilter{
		State: strings.TrimSpace(input.State),
		City:  strings.TrimSpace(input.City),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list hill stations: %w", err)
	}

	states, cities, err := s.hillStationRepo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hill station locations: %w", err)
	}

	return &usecase.HillStationListing{
		HillStations: stations,
		States:       states,
		Cities:       cities,
	}, nil
}

func (s *catalogService) GetHillStation(ctx context.Context, id uint) (*usecase.HillStationDetail, error) {
	station, err := s.hillStationRepo.FindHillStationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHillStationNotFound) {
			return nil, domainerrors.ErrHillStationNotFound
		}

		return nil, fmt.Errorf("failed to find hill station: %w", err)
	}

	nearby, err := s.search.NearbyItems(ctx, station)
	if err != nil {
		return nil, fmt.Errorf("failed to find items near hill station: %w", err)
	}

	return &usecase.HillStationDetail{HillStation: station, Nearby: nearby}, nil
}
