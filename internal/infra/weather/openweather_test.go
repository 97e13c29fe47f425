package weather

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourist/config"
	"tourist/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(endpoint, apiKey string) *openWeatherClient {
	provider := NewOpenWeatherClient(Params{
		Config: &config.Config{
			Weather: &config.WeatherConfig{Endpoint: endpoint, APIKey: apiKey, Timeout: time.Second},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return provider.(*openWeatherClient)
}

func TestOpenWeatherClient_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "Munnar", query.Get("q"))
		assert.Equal(t, "secret", query.Get("appid"))
		assert.Equal(t, "metric", query.Get("units"))

		_, _ = io.WriteString(w, `{"main":{"temp":18.4},"weather":[{"main":"Rain","description":"light rain","icon":"10d"}]}`)
	}))
	defer server.Close()

	weather, err := newClient(server.URL, "secret").Current(context.Background(), "Munnar")

	require.NoError(t, err)
	assert.Equal(t, &entity.Weather{
		Temp:        18.4,
		Condition:   "Rain",
		Description: "light rain",
		Icon:        "10d",
	}, weather)
}

func TestOpenWeatherClient_Current_Failures(t *testing.T) {
	t.Run("missing key skips the request", func(t *testing.T) {
		weather, err := newClient("http://127.0.0.1:0", "").Current(context.Background(), "Goa")

		assert.Nil(t, weather)
		assert.ErrorIs(t, err, ErrAPIKeyMissing)
		assert.EqualError(t, err, "API Key missing")
	})

	t.Run("provider message is surfaced", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"cod":"404","message":"city not found"}`)
		}))
		defer server.Close()

		weather, err := newClient(server.URL, "secret").Current(context.Background(), "Atlantis")

		assert.Nil(t, weather)
		assert.EqualError(t, err, "city not found")
	})

	t.Run("generic message without provider text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{}`)
		}))
		defer server.Close()

		_, err := newClient(server.URL, "secret").Current(context.Background(), "Goa")

		assert.EqualError(t, err, "Error fetching weather")
	})
}
