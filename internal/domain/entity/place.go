package entity

import (
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// PlaceCategory classifies catalog entries and doubles as the search place-type filter.
type PlaceCategory string

const (
	CategoryBeach       PlaceCategory = "BEACH"
	CategoryHillStation PlaceCategory = "HILL_STATION"
	CategoryHistorical  PlaceCategory = "HISTORICAL"
	CategoryNature      PlaceCategory = "NATURE"
	CategoryAdventure   PlaceCategory = "ADVENTURE"
	CategoryCity        PlaceCategory = "CITY"
	CategoryOther       PlaceCategory = "OTHER"

	// Search-only filter values. No catalog row carries them.
	CategoryTemple     PlaceCategory = "TEMPLE"
	CategoryHotel      PlaceCategory = "HOTEL"
	CategoryHospital   PlaceCategory = "HOSPITAL"
	CategoryAttraction PlaceCategory = "ATTRACTION"
	CategoryRestaurant PlaceCategory = "RESTAURANT"
)

// PlaceCategories lists the categories a Place row may be stored with.
func PlaceCategories() []PlaceCategory {
	return []PlaceCategory{
		CategoryBeach,
		CategoryHillStation,
		CategoryHistorical,
		CategoryNature,
		CategoryAdventure,
		CategoryCity,
		CategoryOther,
	}
}

// SearchPlaceTypes lists the values accepted by the search place-type filter.
func SearchPlaceTypes() []PlaceCategory {
	return []PlaceCategory{
		CategoryHotel,
		CategoryHospital,
		CategoryTemple,
		CategoryAttraction,
		CategoryRestaurant,
		CategoryBeach,
		CategoryHillStation,
		CategoryHistorical,
		CategoryNature,
		CategoryAdventure,
		CategoryCity,
	}
}

// IsStorable reports whether c may be persisted on a Place.
func (c PlaceCategory) IsStorable() bool {
	for _, candidate := range PlaceCategories() {
		if c == candidate {
			return true
		}
	}

	return false
}

// IsSearchable reports whether c is an accepted search filter value.
func (c PlaceCategory) IsSearchable() bool {
	for _, candidate := range SearchPlaceTypes() {
		if c == candidate {
			return true
		}
	}

	return false
}

// Place is a general catalog entry. Coordinates are optional.
type Place struct {
	ID          uint
	Name        string
	Description string
	Location    string
	Category    PlaceCategory
	Latitude    *float64
	Longitude   *float64
	ImageURL    string
	CreatedAt   time.Time
}

func (p *Place) ItemID() uint {
	return p.ID
}

func (p *Place) ResultType() ResultType {
	return ResultTypePlace
}

func (p *Place) DisplayName() string {
	return p.Name
}

func (p *Place) DisplayCategory() PlaceCategory {
	if p.Category == "" {
		return CategoryOther
	}

	return p.Category
}

func (p *Place) LocationLabel() string {
	return p.Location
}

// Coordinate returns the place position when both latitude and longitude are set.
func (p *Place) Coordinate() (orb.Point, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*p.Longitude, *p.Latitude}, true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
