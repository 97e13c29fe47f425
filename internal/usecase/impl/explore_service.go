package impl

import (
	"context"
	"log/slog"

	"tourist/internal/domain/entity"
	"tourist/internal/domain/service"
	"tourist/internal/geo"
	"tourist/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultExploreRadiusKm = 2.0
	defaultExploreCategory = entity.ExternalAttraction
)

// ExploreServiceParams holds dependencies for the explore service, injected by Fx.
type ExploreServiceParams struct {
	fx.In

	Provider service.PlacesProvider
	Logger   *slog.Logger
}

type exploreService struct {
	provider service.PlacesProvider
	logger   *slog.Logger
}

// NewExploreService creates the external nearby-places use case.
func NewExploreService(params ExploreServiceParams) usecase.ExploreUsecase {
	return &exploreService{
		provider: params.Provider,
		logger:   params.Logger,
	}
}

// FetchNearby asks the configured provider for places around the input coordinate.
func (s *exploreService) FetchNearby(ctx context.Context, input *usecase.NearbyPlacesInput) *entity.NearbyPlacesResult {
	radiusKm := input.RadiusKm
	if radiusKm <= 0 {
		radiusKm = defaultExploreRadiusKm
	}

	category := input.Category
	if category == "" {
		category = defaultExploreCategory
	}

	center := geo.NewPoint(input.Latitude, input.Longitude)
	if !geo.IsValid(center) {
		return &entity.NearbyPlacesResult{Error: "invalid coordinates"}
	}

	places, err := s.provider.FetchNearby(ctx, center, radiusKm, category)
	if err != nil {
		s.logger.WarnContext(ctx, "Nearby places lookup failed",
			slog.String("provider", s.provider.Name()),
			slog.String("category", string(category)),
			slog.Float64("radiusKm", radiusKm),
			slog.Any("error", err),
		)

		return &entity.NearbyPlacesResult{Error: err.Error()}
	}

	if places == nil {
		places = []entity.ExternalPlace{}
	}

	s.logger.DebugContext(ctx, "Nearby places fetched",
		slog.String("provider", s.provider.Name()),
		slog.String("category", string(category)),
		slog.Int("count", len(places)),
	)

	return &entity.NearbyPlacesResult{Places: places}
}
