package places

import (
	"context"
	"encoding/json"
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

// googlePlaceTypes maps categories to Google Places types.
var googlePlaceTypes = map[entity.ExternalCategory]string{
	entity.ExternalHotel:      "lodging",
	entity.ExternalTransport:  "bus_station",
	entity.ExternalAttraction: "tourist_attraction",
	entity.ExternalRestaurant: "restaurant",
	entity.ExternalHospital:   "hospital",
	entity.ExternalTemple:     "place_of_worship",
}

const (
	googleFallbackType = "tourist_attraction"

	googleStatusOK          = "OK"
	googleStatusZeroResults = "ZERO_RESULTS"
)

type googleClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGoogleClient creates a provider backed by the Google Places nearby search.
func NewGoogleClient(cfg config.GoogleConfig, logger *slog.Logger) service.PlacesProvider {
	return &googleClient{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (c *googleClient) Name() string {
	return "google"
}

type googleNearbyResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message"`
	Results      []googleResult `json:"results"`
}

type googleResult struct {
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Rating   *float64 `json:"rating"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// FetchNearby queries nearby search. OK and ZERO_RESULTS are successes; any other
// status is reported with the provider's own message.
func (c *googleClient) FetchNearby(ctx context.Context, center orb.Point, radiusKm float64, category entity.ExternalCategory) ([]entity.ExternalPlace, error) {
	placeType, ok := googlePlaceTypes[category]
	if !ok {
		placeType = googleFallbackType
	}

	params := url.Values{}
	params.Set("location", strconv.FormatFloat(center.Lat(), 'f', -1, 64)+","+strconv.FormatFloat(center.Lon(), 'f', -1, 64))
	params.Set("radius", strconv.FormatFloat(radiusKm*1000, 'f', -1, 64))
	params.Set("type", placeType)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "Google API Error")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "Google API Error")
	}
	defer resp.Body.Close()

	var payload googleNearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "Google API Error")
	}

	if payload.Status != googleStatusOK && payload.Status != googleStatusZeroResults {
		return nil, errors.Errorf("Google API Error: %s - %s", payload.Status, payload.ErrorMessage)
	}

	places := make([]entity.ExternalPlace, 0, len(payload.Results))
	for _, result := range payload.Results {
		name := strings.TrimSpace(result.Name)
		if name == "" {
			name = entity.UnnamedPlace
		}
		address := strings.TrimSpace(result.Vicinity)
		if address == "" {
			address = entity.NearbyAddress
		}

		places = append(places, entity.ExternalPlace{
			Name:     name,
			Lat:      result.Geometry.Location.Lat,
			Lng:      result.Geometry.Location.Lng,
			Category: category,
			Address:  address,
			Rating:   result.Rating,
			Source:   entity.SourceGooglePlaces,
		})
	}

	c.logger.DebugContext(ctx, "Google Places lookup finished",
		slog.String("status", payload.Status),
		slog.Int("places", len(places)),
	)

	return places, nil
}
