// Package geo holds the great-circle math and place-name lookups shared by search and catalog views.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used for all distances in this service.
// orb/geo uses the WGS84 equatorial radius, so distances are computed here instead.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two points
// given in decimal degrees, longitude first.
func DistanceKm(lon1, lat1, lon2, lat2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// Distance returns the great-circle distance in kilometers between two orb points.
func Distance(a, b orb.Point) float64 {
	return DistanceKm(a.Lon(), a.Lat(), b.Lon(), b.Lat())
}

// RoundKm rounds a distance to two decimals for display.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// IsValid reports whether p is a finite coordinate inside the lat/lon ranges.
func IsValid(p orb.Point) bool {
	lat, lon := p.Lat(), p.Lon()
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// NewPoint builds an orb point from latitude and longitude in that order,
// which is how coordinates arrive from requests and storage.
func NewPoint(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
