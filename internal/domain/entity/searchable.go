package entity

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
)

// ResultType tells which catalog a search result came from.
type ResultType string

const (
	ResultTypePlace       ResultType = "place"
	ResultTypeHillStation ResultType = "hill_station"
)

// SearchableItem is the common read view over Place and HillStation.
type SearchableItem interface {
	ItemID() uint
	ResultType() ResultType
	DisplayName() string
	DisplayCategory() PlaceCategory
	LocationLabel() string
	Coordinate() (orb.Point, bool)
}

// ItemRef identifies a catalog row across both catalogs.
type ItemRef struct {
	Type ResultType
	ID   uint
}

// RefOf returns the reference of a searchable item.
func RefOf(item SearchableItem) ItemRef {
	return ItemRef{Type: item.ResultType(), ID: item.ItemID()}
}

// SearchResult is a catalog item decorated for one search.
// DistanceKm is nil when the search had no center or the item has no coordinates.
type SearchResult struct {
	Item       SearchableItem
	DistanceKm *float64
}

// SortDistance returns the distance used for ordering; unknown distances sort last.
func (r SearchResult) SortDistance() float64 {
	if r.DistanceKm == nil {
		return math.Inf(1)
	}

	return *r.DistanceKm
}

// MatchesTemple is the TEMPLE filter. The catalogs carry no temple category, so an item
// qualifies when its category mentions "historical" or its name or location label
// mentions "temple".
func MatchesTemple(item SearchableItem) bool {
	if strings.Contains(strings.ToLower(string(item.DisplayCategory())), "historical") {
		return true
	}

	return containsFold(item.DisplayName(), "temple") || containsFold(item.LocationLabel(), "temple")
}

// MatchesPlaceType applies a search place-type filter to one item.
// Types with no catalog equivalent (HOTEL, HOSPITAL, ATTRACTION, RESTAURANT, OTHER)
// keep every item.
func MatchesPlaceType(item SearchableItem, placeType PlaceCategory) bool {
	switch placeType {
	case CategoryTemple:
		return MatchesTemple(item)
	case CategoryHillStation, CategoryBeach, CategoryHistorical, CategoryNature, CategoryAdventure, CategoryCity:
		return item.DisplayCategory() == placeType
	default:
		return true
	}
}
