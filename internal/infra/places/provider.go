package places

import (
	"log/slog"
	"strings"

	"tourist/config"
	"tourist/internal/domain/service"

	"go.uber.org/fx"
)

// placeholderGoogleAPIKey is the sample value shipped in example configs; it counts as unset.
const placeholderGoogleAPIKey = "your-google-api-key-here"

// ProviderParams holds dependencies for the places provider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewPlacesProvider picks Google Places when a real API key is configured and
// falls back to OpenStreetMap Overpass otherwise.
func NewPlacesProvider(params ProviderParams) service.PlacesProvider {
	settings := params.Config.PlacesSettings()
	logger := params.Logger

	if hasGoogleKey(settings.Google.APIKey) {
		logger.Info("Using Google Places for nearby lookups",
			slog.String("endpoint", settings.Google.Endpoint),
		)

		return NewGoogleClient(settings.Google, logger)
	}

	logger.Info("Google Places key not configured, using OpenStreetMap Overpass",
		slog.String("endpoint", settings.Overpass.Endpoint),
	)

	return NewOverpassClient(settings.Overpass, logger)
}

func hasGoogleKey(key string) bool {
	key = strings.TrimSpace(key)

	return key != "" && key != placeholderGoogleAPIKey
}

// Module provides the places FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPlacesProvider),
)
