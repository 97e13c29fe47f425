package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database tunes statement logging and pool monitoring on top of the postgres connection
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// SecretKey.Access verifies access tokens issued by the account service.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Search *SearchConfig `json:"search" yaml:"search"`

	Itinerary *ItineraryConfig `json:"itinerary" yaml:"itinerary"`

	// Places configures the external nearby-places providers
	Places *PlacesConfig `json:"places" yaml:"places"`

	Weather *WeatherConfig `json:"weather" yaml:"weather"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type DatabaseConfig struct {
	SlowQueryThreshold  time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`

	// Pool waits longer than this per interval are logged as warnings
	PoolWaitWarnThreshold time.Duration `json:"poolWaitWarnThreshold" yaml:"poolWaitWarnThreshold"`
}

// SearchConfig defines the proximity search tuning
type SearchConfig struct {
	DefaultRadiusKm float64   `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	AllowedRadiiKm  []float64 `json:"allowedRadiiKm" yaml:"allowedRadiiKm"`

	// Radius and size of the "nearby" list shown on catalog detail pages
	NearbyRadiusKm float64 `json:"nearbyRadiusKm" yaml:"nearbyRadiusKm"`
	NearbyLimit    int     `json:"nearbyLimit" yaml:"nearbyLimit"`
}

// ItineraryConfig defines itinerary generation limits
type ItineraryConfig struct {
	PlacesPerDay int           `json:"placesPerDay" yaml:"placesPerDay"`
	MaxDays      int           `json:"maxDays" yaml:"maxDays"`
	DraftTTL     time.Duration `json:"draftTTL" yaml:"draftTTL"`
}

// PlacesConfig selects and configures the nearby-places provider.
// Google is used when an API key is configured, OpenStreetMap Overpass otherwise.
type PlacesConfig struct {
	Overpass OverpassConfig `json:"overpass" yaml:"overpass"`
	Google   GoogleConfig   `json:"google" yaml:"google"`
}

type OverpassConfig struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`

	// Requests wider than this are clamped
	MaxRadiusKm float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
}

type GoogleConfig struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// WeatherConfig configures the OpenWeather-compatible current weather endpoint
type WeatherConfig struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// DatabaseSettings returns the database section, filling unset values with defaults.
func (c *Config) DatabaseSettings() DatabaseConfig {
	settings := DatabaseConfig{
		SlowQueryThreshold:    200 * time.Millisecond,
		PoolMonitorInterval:   5 * time.Second,
		PoolWaitWarnThreshold: 50 * time.Millisecond,
	}
	if c == nil || c.Database == nil {
		return settings
	}

	if c.Database.SlowQueryThreshold > 0 {
		settings.SlowQueryThreshold = c.Database.SlowQueryThreshold
	}
	if c.Database.PoolMonitorInterval > 0 {
		settings.PoolMonitorInterval = c.Database.PoolMonitorInterval
	}
	if c.Database.PoolWaitWarnThreshold > 0 {
		settings.PoolWaitWarnThreshold = c.Database.PoolWaitWarnThreshold
	}

	return settings
}

// SearchSettings returns the search section, filling unset values with defaults.
func (c *Config) SearchSettings() SearchConfig {
	settings := SearchConfig{
		DefaultRadiusKm: 50,
		AllowedRadiiKm:  []float64{1, 5, 10, 25, 50},
		NearbyRadiusKm:  25,
		NearbyLimit:     6,
	}
	if c == nil || c.Search == nil {
		return settings
	}

	if c.Search.DefaultRadiusKm > 0 {
		settings.DefaultRadiusKm = c.Search.DefaultRadiusKm
	}
	if len(c.Search.AllowedRadiiKm) > 0 {
		settings.AllowedRadiiKm = c.Search.AllowedRadiiKm
	}
	if c.Search.NearbyRadiusKm > 0 {
		settings.NearbyRadiusKm = c.Search.NearbyRadiusKm
	}
	if c.Search.NearbyLimit > 0 {
		settings.NearbyLimit = c.Search.NearbyLimit
	}

	return settings
}

// ItinerarySettings returns the itinerary section, filling unset values with defaults.
func (c *Config) ItinerarySettings() ItineraryConfig {
	settings := ItineraryConfig{
		PlacesPerDay: 2,
		MaxDays:      30,
		DraftTTL:     30 * time.Minute,
	}
	if c == nil || c.Itinerary == nil {
		return settings
	}

	if c.Itinerary.PlacesPerDay > 0 {
		settings.PlacesPerDay = c.Itinerary.PlacesPerDay
	}
	if c.Itinerary.MaxDays > 0 {
		settings.MaxDays = c.Itinerary.MaxDays
	}
	if c.Itinerary.DraftTTL > 0 {
		settings.DraftTTL = c.Itinerary.DraftTTL
	}

	return settings
}

// PlacesSettings returns the places section, filling unset values with defaults.
func (c *Config) PlacesSettings() PlacesConfig {
	settings := PlacesConfig{
		Overpass: OverpassConfig{
			Endpoint:    "https://overpass-api.de/api/interpreter",
			Timeout:     65 * time.Second,
			MaxRadiusKm: 50,
		},
		Google: GoogleConfig{
			Endpoint: "https://maps.googleapis.com/maps/api/place/nearbysearch/json",
			Timeout:  10 * time.Second,
		},
	}
	if c == nil || c.Places == nil {
		return settings
	}

	if c.Places.Overpass.Endpoint != "" {
		settings.Overpass.Endpoint = c.Places.Overpass.Endpoint
	}
	if c.Places.Overpass.Timeout > 0 {
		settings.Overpass.Timeout = c.Places.Overpass.Timeout
	}
	if c.Places.Overpass.MaxRadiusKm > 0 {
		settings.Overpass.MaxRadiusKm = c.Places.Overpass.MaxRadiusKm
	}
	if c.Places.Google.Endpoint != "" {
		settings.Google.Endpoint = c.Places.Google.Endpoint
	}
	if c.Places.Google.Timeout > 0 {
		settings.Google.Timeout = c.Places.Google.Timeout
	}
	settings.Google.APIKey = c.Places.Google.APIKey

	return settings
}

// WeatherSettings returns the weather section, filling unset values with defaults.
func (c *Config) WeatherSettings() WeatherConfig {
	settings := WeatherConfig{
		Endpoint: "https://api.openweathermap.org/data/2.5/weather",
		Timeout:  5 * time.Second,
	}
	if c == nil || c.Weather == nil {
		return settings
	}

	if c.Weather.Endpoint != "" {
		settings.Endpoint = c.Weather.Endpoint
	}
	if c.Weather.Timeout > 0 {
		settings.Timeout = c.Weather.Timeout
	}
	settings.APIKey = c.Weather.APIKey

	return settings
}

// LoadWithEnv reads <currEnv>.yaml from the first search path that has it, then
// overlays environment variables onto the keys the file already defines.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	searchPaths, err := resolveSearchPaths(configPath)
	if err != nil {
		return nil, err
	}

	name := currEnv + ".yaml"
	configFile, found := findConfigFile(searchPaths, name)
	if !found {
		return nil, errors.Errorf("config file %s not found in %v", name, searchPaths)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", configFile)
	}

	fileKeys := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fileKeys), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment overrides")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", configFile)
	}

	return cfg, nil
}

func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		MatchName: strings.EqualFold,
	}
}

func resolveSearchPaths(configPath []string) ([]string, error) {
	paths := []string{defaultPath}
	if len(configPath) == 0 {
		return paths, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}
	for _, p := range configPath {
		paths = append(paths, filepath.Join(wd, p))
	}

	return paths, nil
}

// New loads config/config.yaml for the service and the seed command.
func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, dir := range searchPaths {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}

	return "", false
}

// canonicalizeEnvKey maps an env var name onto the camelCase path already present
// in the yaml tree, e.g. PLACES_GOOGLE_APIKEY -> places.google.apiKey. Segments
// below an unknown key are kept lowercase.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	var path []string
	node := existing

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := segment, map[string]any(nil)
		for candidate, value := range node {
			if normalizeToken(candidate) == normalizeToken(segment) {
				key = candidate
				child, _ = value.(map[string]any)

				break
			}
		}
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}
// until the first index without a host and port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
