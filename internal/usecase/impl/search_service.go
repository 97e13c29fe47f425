package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"tourist/config"
	"tourist/internal/domain/entity"
	domainerrors "tourist/internal/domain/errors"
	"tourist/internal/domain/repository"
	"tourist/internal/geo"
	"tourist/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// SearchServiceParams holds dependencies for the search service, injected by Fx.
type SearchServiceParams struct {
	fx.In

	PlaceRepo       repository.PlaceRepository
	HillStationRepo repository.HillStationRepository
	Gazetteer       *geo.Gazetteer
	Config          *config.Config
	Logger          *slog.Logger
}

type searchService struct {
	placeRepo       repository.PlaceRepository
	hillStationRepo repository.HillStationRepository
	gazetteer       *geo.Gazetteer
	settings        config.SearchConfig
	logger          *slog.Logger
}

// NewSearchService creates the proximity search over both catalogs.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	gazetteer := params.Gazetteer
	if gazetteer == nil {
		gazetteer = geo.DefaultGazetteer()
	}

	return &searchService{
		placeRepo:       params.PlaceRepo,
		hillStationRepo: params.HillStationRepo,
		gazetteer:       gazetteer,
		settings:        params.Config.SearchSettings(),
		logger:          params.Logger,
	}
}

// Search resolves a center, gathers candidates from both catalogs, applies the
// place-type filter and orders by distance.
func (s *searchService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.SearchOutput, error) {
	radiusKm := input.RadiusKm
	if radiusKm == 0 {
		radiusKm = s.settings.DefaultRadiusKm
	}
	if radiusKm < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be positive")
	}

	output := &usecase.SearchOutput{}
	name := strings.TrimSpace(input.LocationName)

	var results []entity.SearchResult
	var err error
	if center, ok := s.resolveCenter(input, name); ok {
		output.Center = &center
		output.Mode = usecase.SearchModeCoordinates
		results, err = s.withinRadius(ctx, center, radiusKm)
	} else if name != "" {
		output.Mode = usecase.SearchModeText
		results, err = s.matchingText(ctx, name)
	} else {
		output.Mode = usecase.SearchModeAll
		results, err = s.everything(ctx)
	}
	if err != nil {
		return nil, err
	}

	if input.PlaceType != "" {
		results = slices.DeleteFunc(results, func(r entity.SearchResult) bool {
			return !entity.MatchesPlaceType(r.Item, input.PlaceType)
		})
	}

	sortByDistance(results)
	output.Results = results

	s.logger.DebugContext(ctx, "Search completed",
		slog.String("mode", string(output.Mode)),
		slog.String("placeType", string(input.PlaceType)),
		slog.Float64("radiusKm", radiusKm),
		slog.Int("total", len(results)),
	)

	return output, nil
}

// NearbyItems lists up to NearbyLimit items within NearbyRadiusKm of origin.
func (s *searchService) NearbyItems(ctx context.Context, origin entity.SearchableItem) ([]entity.SearchResult, error) {
	center, ok := origin.Coordinate()
	if !ok {
		return []entity.SearchResult{}, nil
	}

	results, err := s.withinRadius(ctx, center, s.settings.NearbyRadiusKm)
	if err != nil {
		return nil, err
	}

	self := entity.RefOf(origin)
	results = slices.DeleteFunc(results, func(r entity.SearchResult) bool {
		return entity.RefOf(r.Item) == self
	})

	sortByDistance(results)
	if len(results) > s.settings.NearbyLimit {
		results = results[:s.settings.NearbyLimit]
	}

	return results, nil
}

// resolveCenter prefers explicit coordinates over a gazetteer hit.
func (s *searchService) resolveCenter(input *usecase.SearchInput, name string) (orb.Point, bool) {
	if input.Latitude != nil && input.Longitude != nil {
		return geo.NewPoint(*input.Latitude, *input.Longitude), true
	}
	if name == "" {
		return orb.Point{}, false
	}

	return s.gazetteer.Resolve(name)
}

func (s *searchService) withinRadius(ctx context.Context, center orb.Point, radiusKm float64) ([]entity.SearchResult, error) {
	places, err := s.placeRepo.ListPlaces(ctx, repository.PlaceFilter{LocatedOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list located places: %w", err)
	}

	stations, err := s.hillStationRepo.ListHillStations(ctx, repository.HillStationFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list hill stations: %w", err)
	}

	results := make([]entity.SearchResult, 0, len(places)+len(stations))
	for _, item := range joinItems(places, stations) {
		point, ok := item.Coordinate()
		if !ok {
			continue
		}

		distance := geo.Distance(center, point)
		if distance > radiusKm {
			continue
		}

		rounded := geo.RoundKm(distance)
		results = append(results, entity.SearchResult{Item: item, DistanceKm: &rounded})
	}

	return results, nil
}

func (s *searchService) matchingText(ctx context.Context, name string) ([]entity.SearchResult, error) {
	places, err := s.placeRepo.ListPlaces(ctx, repository.PlaceFilter{NameOrLocation: name})
	if err != nil {
		return nil, fmt.Errorf("failed to search places by text: %w", err)
	}

	stations, err := s.hillStationRepo.ListHillStations(ctx, repository.HillStationFilter{Text: name})
	if err != nil {
		return nil, fmt.Errorf("failed to search hill stations by text: %w", err)
	}

	return withoutDistance(joinItems(places, stations)), nil
}

func (s *searchService) everything(ctx context.Context) ([]entity.SearchResult, error) {
	places, err := s.placeRepo.ListPlaces(ctx, repository.PlaceFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}

	stations, err := s.hillStationRepo.ListHillStations(ctx, repository.HillStationFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list hill stations: %w", err)
	}

	return withoutDistance(joinItems(places, stations)), nil
}

func joinItems(places []*entity.Place, stations []*entity.HillStation) []entity.SearchableItem {
	items := make([]entity.SearchableItem, 0, len(places)+len(stations))
	for _, place := range places {
		items = append(items, place)
	}
	for _, station := range stations {
		items = append(items, station)
	}

	return items
}

func withoutDistance(items []entity.SearchableItem) []entity.SearchResult {
	results := make([]entity.SearchResult, 0, len(items))
	for _, item := range items {
		results = append(results, entity.SearchResult{Item: item})
	}

	return results
}

// sortByDistance orders ascending with unknown distances last, keeping catalog order for ties.
func sortByDistance(results []entity.SearchResult) {
	slices.SortStableFunc(results, func(a, b entity.SearchResult) int {
		return cmp.Compare(a.SortDistance(), b.SortDistance())
	})
}
