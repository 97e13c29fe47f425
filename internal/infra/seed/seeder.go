package seed

import (
	"context"
	"log/slog"

	"tourist/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SeederParams holds dependencies for Seeder, injected by Fx
type SeederParams struct {
	fx.In

	TouristPlaceRepo repository.TouristPlaceRepository
	PlaceRepo        repository.PlaceRepository
	HillStationRepo  repository.HillStationRepository
	Logger           *slog.Logger
}

// Seeder upserts a parsed catalog by name.
type Seeder struct {
	touristPlaceRepo repository.TouristPlaceRepository
	placeRepo        repository.PlaceRepository
	hillStationRepo  repository.HillStationRepository
	logger           *slog.Logger
}

// Summary counts the rows written per catalog.
type Summary struct {
	TouristPlaces int
	Places        int
	HillStations  int
}

func NewSeeder(params SeederParams) *Seeder {
	return &Seeder{
		touristPlaceRepo: params.TouristPlaceRepo,
		placeRepo:        params.PlaceRepo,
		hillStationRepo:  params.HillStationRepo,
		logger:           params.Logger,
	}
}

// Seed writes every catalog entry. It stops at the first failing row; rows already
// written stay, and running it again is safe.
func (s *Seeder) Seed(ctx context.Context, catalog *Catalog) (Summary, error) {
	var summary Summary

	for _, place := range catalog.TouristPlaces {
		if err := s.touristPlaceRepo.UpsertTouristPlace(ctx, place); err != nil {
			return summary, errors.Wrapf(err, "seed tourist place %q", place.Name)
		}
		summary.TouristPlaces++
	}

	for _, place := range catalog.Places {
		if err := s.placeRepo.UpsertPlace(ctx, place); err != nil {
			return summary, errors.Wrapf(err, "seed place %q", place.Name)
		}
		summary.Places++
	}

	for _, station := range catalog.HillStations {
		if err := s.hillStationRepo.UpsertHillStation(ctx, station); err != nil {
			return summary, errors.Wrapf(err, "seed hill station %q", station.Name)
		}
		summary.HillStations++
	}

	s.logger.InfoContext(ctx, "Catalog seeded",
		slog.Int("tourist_places", summary.TouristPlaces),
		slog.Int("places", summary.Places),
		slog.Int("hill_stations", summary.HillStations),
	)

	return summary, nil
}

// Module provides the seed FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSeeder),
)
