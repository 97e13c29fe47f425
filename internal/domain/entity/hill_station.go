package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// DefaultCountry is stored when a hill station is imported without a country.
const DefaultCountry = "India"

// HillStation is a catalog entry whose coordinates are always present.
type HillStation struct {
	ID               uint
	Name             string
	City             string
	District         string
	State            string
	Country          string
	Description      string
	BestTimeToVisit  string
	TemperatureRange string
	Latitude         float64
	Longitude        float64
	ImageURL         string
	CreatedAt        time.Time
}

func (h *HillStation) ItemID() uint {
	return h.ID
}

func (h *HillStation) ResultType() ResultType {
	return ResultTypeHillStation
}

func (h *HillStation) DisplayName() string {
	return h.Name
}

// DisplayCategory is always HILL_STATION; hill stations have no category column.
func (h *HillStation) DisplayCategory() PlaceCategory {
	return CategoryHillStation
}

// LocationLabel is the city, which is what listings show under the name.
func (h *HillStation) LocationLabel() string {
	return h.City
}

func (h *HillStation) Coordinate() (orb.Point, bool) {
	return orb.Point{h.Longitude, h.Latitude}, true
}
