// Package weather implements the current-weather gateway against an OpenWeather-compatible API.
package weather

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"tourist/config"
	"tourist/internal/domain/entity"
	"tourist/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrAPIKeyMissing is returned when no API key is configured.
	ErrAPIKeyMissing = errors.New("API Key missing")

	errFetchFailed = "Error fetching weather"
)

// Params holds dependencies for the weather provider, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type openWeatherClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewOpenWeatherClient creates the weather provider from the weather config section.
func NewOpenWeatherClient(params Params) service.WeatherProvider {
	settings := params.Config.WeatherSettings()

	return &openWeatherClient{
		endpoint: settings.Endpoint,
		apiKey:   strings.TrimSpace(settings.APIKey),
		httpClient: &http.Client{
			Timeout: settings.Timeout,
		},
		logger: params.Logger,
	}
}

type currentWeatherResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Message string `json:"message"`
}

// Current returns the metric current weather for a free-text location.
func (c *openWeatherClient) Current(ctx context.Context, location string) (*entity.Weather, error) {
	if c.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	params := url.Values{}
	params.Set("q", location)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "weather request failed")
	}
	defer resp.Body.Close()

	var payload currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, errFetchFailed)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.DebugContext(ctx, "Weather provider rejected request",
			slog.String("location", location),
			slog.Int("status", resp.StatusCode),
		)

		if payload.Message != "" {
			return nil, errors.New(payload.Message)
		}

		return nil, errors.New(errFetchFailed)
	}

	weather := &entity.Weather{
		Temp:      payload.Main.Temp,
		Condition: "Unknown",
	}
	if len(payload.Weather) > 0 {
		weather.Condition = payload.Weather[0].Main
		weather.Description = payload.Weather[0].Description
		weather.Icon = payload.Weather[0].Icon
	}

	return weather, nil
}
