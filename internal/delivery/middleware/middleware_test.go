package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tourist/config"
	deliverycontext "tourist/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		want     string
	}{
		{name: "reuses client id", incoming: "req-123", want: "req-123"},
		{name: "trims client id", incoming: "  req-456 ", want: "req-456"},
		{name: "generates id", incoming: ""},
		{name: "replaces id with spaces", incoming: "req 1; drop"},
		{name: "replaces non-ascii id", incoming: "req-ñ"},
		{name: "replaces oversized id", incoming: strings.Repeat("a", maxClientRequestIDLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInCtx string
			handler := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process(func(c echo.Context) error {
				seenInCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))

			header := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, header)
			assert.Equal(t, header, seenInCtx)
			assert.Equal(t, header, deliverycontext.GetRequestID(c))
			if tt.want != "" {
				assert.Equal(t, tt.want, header)
			} else {
				_, err := uuid.Parse(header)
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/search?location_name=goa", nil), rec)

	handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusTeapot)
	})
	require.NoError(t, handler(c))

	assert.Contains(t, buf.String(), "HTTP Request")
	assert.Contains(t, buf.String(), "status=418")
	assert.Contains(t, buf.String(), `query="location_name=goa"`)
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLoggerMiddleware_DisabledOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

	handler := NewLoggerMiddleware(logger, &config.Config{}).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Empty(t, buf.String())
}
