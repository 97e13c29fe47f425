package usecase

import (
	"context"

	"tourist/internal/domain/entity"

	"github.com/paulmach/orb"
)

// SearchMode tells how a search picked its candidates.
type SearchMode string

const (
	// SearchModeCoordinates ranks every located item within the radius of a center.
	SearchModeCoordinates SearchMode = "coordinates"
	// SearchModeText matches the location name against catalog text fields.
	SearchModeText SearchMode = "text"
	// SearchModeAll returns both catalogs unfiltered by position or text.
	SearchModeAll SearchMode = "all"
)

// SearchInput is a proximity search request. Latitude and Longitude only take
// effect when both are set; a location name known to the gazetteer also yields a center.
type SearchInput struct {
	LocationName string
	Latitude     *float64
	Longitude    *float64
	PlaceType    entity.PlaceCategory
	RadiusKm     float64
}

// SearchOutput carries results in ascending distance, items without distance last.
type SearchOutput struct {
	Results []entity.SearchResult
	Center  *orb.Point
	Mode    SearchMode
}

// Total is the number of results after filtering.
func (o *SearchOutput) Total() int {
	return len(o.Results)
}

// SearchUsecase defines the proximity search over the place and hill station catalogs.
type SearchUsecase interface {
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// NearbyItems lists the closest catalog items around origin, origin excluded.
	// An origin without coordinates has no neighbours.
	NearbyItems(ctx context.Context, origin entity.SearchableItem) ([]entity.SearchResult, error)
}
