package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestPlace_Coordinate(t *testing.T) {
	located := &Place{Latitude: ptr(15.5), Longitude: ptr(73.8)}
	point, ok := located.Coordinate()
	assert.True(t, ok)
	assert.Equal(t, 15.5, point.Lat())
	assert.Equal(t, 73.8, point.Lon())

	halfLocated := &Place{Latitude: ptr(15.5)}
	_, ok = halfLocated.Coordinate()
	assert.False(t, ok)
}

func TestHillStation_DisplayCategoryIsAlwaysHillStation(t *testing.T) {
	station := &HillStation{Name: "Ooty", City: "Udhagamandalam"}

	assert.Equal(t, CategoryHillStation, station.DisplayCategory())
	assert.Equal(t, ResultTypeHillStation, station.ResultType())
	assert.Equal(t, "Udhagamandalam", station.LocationLabel())
}

func TestMatchesTemple(t *testing.T) {
	tests := []struct {
		name string
		item SearchableItem
		want bool
	}{
		{name: "historical category", item: &Place{Name: "Golconda Fort", Category: CategoryHistorical}, want: true},
		{name: "temple in name", item: &Place{Name: "Sun Temple", Category: CategoryOther}, want: true},
		{name: "temple in location", item: &Place{Name: "Ghat", Location: "Temple Road, Puri", Category: CategoryCity}, want: true},
		{name: "plain beach", item: &Place{Name: "Baga", Location: "Goa", Category: CategoryBeach}, want: false},
		{name: "hill station with temple city", item: &HillStation{Name: "Hill", City: "Temple Town"}, want: true},
		{name: "hill station without temple", item: &HillStation{Name: "Ooty", City: "Ooty"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesTemple(tt.item))
		})
	}
}

func TestMatchesPlaceType(t *testing.T) {
	beach := &Place{Name: "Baga", Category: CategoryBeach}
	hillPlace := &Place{Name: "Lonavala", Category: CategoryHillStation}
	station := &HillStation{Name: "Munnar"}

	assert.True(t, MatchesPlaceType(beach, CategoryBeach))
	assert.False(t, MatchesPlaceType(station, CategoryBeach))
	assert.True(t, MatchesPlaceType(station, CategoryHillStation))
	assert.True(t, MatchesPlaceType(hillPlace, CategoryHillStation))
	assert.False(t, MatchesPlaceType(beach, CategoryHillStation))

	for _, unfiltered := range []PlaceCategory{CategoryHotel, CategoryHospital, CategoryAttraction, CategoryRestaurant, CategoryOther, ""} {
		assert.True(t, MatchesPlaceType(beach, unfiltered), unfiltered)
		assert.True(t, MatchesPlaceType(station, unfiltered), unfiltered)
	}
}

func TestSearchResult_SortDistance(t *testing.T) {
	assert.True(t, math.IsInf(SearchResult{}.SortDistance(), 1))
	assert.Equal(t, 4.2, SearchResult{DistanceKm: ptr(4.2)}.SortDistance())
}

func TestPlaceCategory_Sets(t *testing.T) {
	assert.True(t, CategoryOther.IsStorable())
	assert.False(t, CategoryTemple.IsStorable())
	assert.True(t, CategoryTemple.IsSearchable())
	assert.False(t, CategoryOther.IsSearchable())
	assert.Len(t, SearchPlaceTypes(), 11)
}
