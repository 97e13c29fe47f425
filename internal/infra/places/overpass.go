// Package places implements the nearby-places providers: OpenStreetMap Overpass and Google Places.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tourist/config"
	"tourist/internal/domain/entity"
	"tourist/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// overpassTags maps categories to Overpass tag filters.
var overpassTags = map[entity.ExternalCategory]string{
	entity.ExternalHotel:      `["tourism"~"hotel|hostel|guest_house|motel|resort|apartment"]`,
	entity.ExternalTransport:  `["amenity"~"bus_station|bus_stop|taxi|ferry_terminal|train_station"]`,
	entity.ExternalAttraction: `["tourism"~"attraction|museum|viewpoint|zoo|theme_park|artwork"]`,
	entity.ExternalRestaurant: `["amenity"~"restaurant|cafe|fast_food|food_court"]`,
	entity.ExternalHospital:   `["amenity"~"hospital|clinic|doctors"]`,
	entity.ExternalTemple:     `["amenity"~"place_of_worship|shrine"]`,
}

const overpassFallbackTag = `["tourism"~"attraction"]`

type overpassClient struct {
	endpoint    string
	maxRadiusKm float64
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewOverpassClient creates a provider backed by the OpenStreetMap Overpass API.
func NewOverpassClient(cfg config.OverpassConfig, logger *slog.Logger) service.PlacesProvider {
	return &overpassClient{
		endpoint:    cfg.Endpoint,
		maxRadiusKm: cfg.MaxRadiusKm,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (c *overpassClient) Name() string {
	return "overpass"
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	Type   string            `json:"type"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FetchNearby posts an around-query for nodes, ways and relations. Ways and relations
// are positioned at their center; elements with no position are dropped.
func (c *overpassClient) FetchNearby(ctx context.Context, center orb.Point, radiusKm float64, category entity.ExternalCategory) ([]entity.ExternalPlace, error) {
	if c.maxRadiusKm > 0 {
		radiusKm = min(radiusKm, c.maxRadiusKm)
	}

	query := buildOverpassQuery(center, radiusKm, category)
	form := url.Values{"data": {query}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "OSM API Error")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "OSM API Error")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("OSM API Error: unexpected status %d", resp.StatusCode)
	}

	var payload overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "OSM API Error")
	}

	places := make([]entity.ExternalPlace, 0, len(payload.Elements))
	for _, element := range payload.Elements {
		lat, lon, ok := element.position()
		if !ok {
			continue
		}

		places = append(places, entity.ExternalPlace{
			Name:     tagOr(element.Tags, entity.UnnamedPlace, "name"),
			Lat:      lat,
			Lng:      lon,
			Category: category,
			Address:  tagOr(element.Tags, entity.NearbyAddress, "addr:full", "addr:street"),
			Source:   entity.SourceOpenStreetMap,
		})
	}

	c.logger.DebugContext(ctx, "Overpass lookup finished",
		slog.Int("elements", len(payload.Elements)),
		slog.Int("places", len(places)),
	)

	return places, nil
}

func (e overpassElement) position() (float64, float64, bool) {
	if e.Lat != nil && e.Lon != nil {
		return *e.Lat, *e.Lon, true
	}
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}

	return 0, 0, false
}

// buildOverpassQuery renders the Overpass QL for one category around center.
func buildOverpassQuery(center orb.Point, radiusKm float64, category entity.ExternalCategory) string {
	tag, ok := overpassTags[category]
	if !ok {
		tag = overpassFallbackTag
	}

	around := fmt.Sprintf("(around:%d,%s,%s)",
		int(radiusKm*1000),
		strconv.FormatFloat(center.Lat(), 'f', -1, 64),
		strconv.FormatFloat(center.Lon(), 'f', -1, 64),
	)

	var b strings.Builder
	b.WriteString("[out:json][timeout:60];\n(\n")
	for _, kind := range []string{"node", "way", "relation"} {
		b.WriteString("  " + kind + around + tag + ";\n")
	}
	b.WriteString(");\nout center body;\n")

	return b.String()
}

// tagOr returns the first non-empty tag among keys, or fallback.
func tagOr(tags map[string]string, fallback string, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(tags[key]); value != "" {
			return value
		}
	}

	return fallback
}
