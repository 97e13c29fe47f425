package impl

import (
	"io"
	"log/slog"
	"math"

	"tourist/config"
	"tourist/internal/domain/entity"
	"tourist/internal/geo"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Search: &config.SearchConfig{
			DefaultRadiusKm: 50,
			NearbyRadiusKm:  25,
			NearbyLimit:     6,
		},
		Itinerary: &config.ItineraryConfig{
			PlacesPerDay: 2,
			MaxDays:      30,
		},
	}
}

func float64Ptr(v float64) *float64 {
	return &v
}

// placeAt builds a located place at lat/lng.
func placeAt(id uint, name string, category entity.PlaceCategory, lat, lng float64) *entity.Place {
	return &entity.Place{
		ID:        id,
		Name:      name,
		Category:  category,
		Latitude:  float64Ptr(lat),
		Longitude: float64Ptr(lng),
	}
}

func hillStationAt(id uint, name string, lat, lng float64) *entity.HillStation {
	return &entity.HillStation{
		ID:        id,
		Name:      name,
		City:      name,
		State:     "Test State",
		Country:   entity.DefaultCountry,
		Latitude:  lat,
		Longitude: lng,
	}
}

// offsetNorth returns the latitude km kilometers north of lat on the same meridian.
func offsetNorth(lat, km float64) float64 {
	return lat + km/geo.EarthRadiusKm*180/math.Pi
}
