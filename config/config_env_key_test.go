package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"places": map[string]any{
			"google": map[string]any{
				"apiKey": "",
			},
			"overpass": map[string]any{
				"maxRadiusKm": 50,
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PLACES_GOOGLE_APIKEY", want: "places.google.apiKey"},
		{envKey: "PLACES_OVERPASS_MAXRADIUSKM", want: "places.overpass.maxRadiusKm"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfig_SettingsDefaults(t *testing.T) {
	var cfg *Config

	search := cfg.SearchSettings()
	assert.Equal(t, 50.0, search.DefaultRadiusKm)
	assert.Equal(t, []float64{1, 5, 10, 25, 50}, search.AllowedRadiiKm)
	assert.Equal(t, 25.0, search.NearbyRadiusKm)
	assert.Equal(t, 6, search.NearbyLimit)

	itinerary := (&Config{}).ItinerarySettings()
	assert.Equal(t, 2, itinerary.PlacesPerDay)
	assert.Equal(t, 30, itinerary.MaxDays)
	assert.Equal(t, 30*time.Minute, itinerary.DraftTTL)

	database := cfg.DatabaseSettings()
	assert.Equal(t, 200*time.Millisecond, database.SlowQueryThreshold)
	assert.Equal(t, 5*time.Second, database.PoolMonitorInterval)
	assert.Equal(t, 50*time.Millisecond, database.PoolWaitWarnThreshold)

	places := (&Config{}).PlacesSettings()
	assert.Equal(t, "https://overpass-api.de/api/interpreter", places.Overpass.Endpoint)
	assert.Equal(t, 65*time.Second, places.Overpass.Timeout)
	assert.Equal(t, 50.0, places.Overpass.MaxRadiusKm)
	assert.Equal(t, 10*time.Second, places.Google.Timeout)
	assert.Empty(t, places.Google.APIKey)
}

func TestConfig_SettingsOverrides(t *testing.T) {
	cfg := &Config{
		Search:    &SearchConfig{NearbyLimit: 3},
		Itinerary: &ItineraryConfig{PlacesPerDay: 3},
		Places: &PlacesConfig{
			Google: GoogleConfig{APIKey: "key"},
		},
		Weather: &WeatherConfig{APIKey: "weather-key"},
	}

	assert.Equal(t, 3, cfg.SearchSettings().NearbyLimit)
	assert.Equal(t, 50.0, cfg.SearchSettings().DefaultRadiusKm)
	assert.Equal(t, 3, cfg.ItinerarySettings().PlacesPerDay)
	assert.Equal(t, 30, cfg.ItinerarySettings().MaxDays)
	assert.Equal(t, "key", cfg.PlacesSettings().Google.APIKey)
	assert.Equal(t, "weather-key", cfg.WeatherSettings().APIKey)
	assert.NotEmpty(t, cfg.WeatherSettings().Endpoint)
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  serviceName: tourist
search:
  nearbyLimit: 4
places:
  google:
    apiKey: ""
database:
  slowQueryThreshold: 1s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("PLACES_GOOGLE_APIKEY", "from-env")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "tourist", cfg.Env.ServiceName)
	assert.Equal(t, 4, cfg.SearchSettings().NearbyLimit)
	assert.Equal(t, "from-env", cfg.PlacesSettings().Google.APIKey)
	assert.Equal(t, time.Second, cfg.DatabaseSettings().SlowQueryThreshold)
	assert.Equal(t, 5*time.Second, cfg.DatabaseSettings().PoolMonitorInterval)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.ErrorContains(t, err, "absent.yaml not found")
}
