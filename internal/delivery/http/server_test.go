package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourist/config"
	apimiddleware "tourist/internal/delivery/http/middleware"
	"tourist/internal/delivery/http/router"
	"tourist/internal/delivery/http/router/handler"
	mockService "tourist/internal/mocks/service"
	mockUsecase "tourist/internal/mocks/usecase"
	"tourist/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	search    *mockUsecase.MockSearchUsecase
	catalog   *mockUsecase.MockCatalogUsecase
	explore   *mockUsecase.MockExploreUsecase
	itinerary *mockUsecase.MockItineraryUsecase
	verifier  *mockService.MockTokenVerifier
}

func newTestServer(t *testing.T) (http.Handler, *testDeps) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := &testDeps{
		search:    mockUsecase.NewMockSearchUsecase(t),
		catalog:   mockUsecase.NewMockCatalogUsecase(t),
		explore:   mockUsecase.NewMockExploreUsecase(t),
		itinerary: mockUsecase.NewMockItineraryUsecase(t),
		verifier:  mockService.NewMockTokenVerifier(t),
	}

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	e := newEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			SearchHandler:    handler.NewSearchHandler(handler.SearchHandlerParams{SearchUC: deps.search, Logger: logger}),
			CatalogHandler:   handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: deps.catalog, Logger: logger}),
			ExploreHandler:   handler.NewExploreHandler(handler.ExploreHandlerParams{ExploreUC: deps.explore, Logger: logger}),
			ItineraryHandler: handler.NewItineraryHandler(handler.ItineraryHandlerParams{ItineraryUC: deps.itinerary, Logger: logger}),
			AuthMiddleware:   apimiddleware.NewAuthMiddleware(deps.verifier, logger),
		},
	})

	return e, deps
}

func TestServer_HealthCarriesRequestID(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "health-check-1")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "health-check-1", rec.Header().Get("X-Request-Id"))
	assert.JSONEq(t, `{"data":{"status":"ok"},"meta":{"request_id":"health-check-1"}}`, rec.Body.String())
}

func TestServer_ItinerariesRequireAuth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/itineraries", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_AuthenticatedListPlans(t *testing.T) {
	srv, deps := newTestServer(t)
	userID := uuid.New()

	deps.verifier.EXPECT().Verify("token-1").Return(userID, nil).Once()
	deps.itinerary.EXPECT().ListPlans(mock.Anything, userID).Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/itineraries", nil)
	req.Header.Set("Authorization", "Bearer token-1")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

func TestServer_SearchRejectsRadiusOutsideAllowedSet(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?location_name=goa&search_radius=7", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "search_radius must be one of 1, 5, 10, 25, 50")
}

func TestServer_SearchUsesDefaults(t *testing.T) {
	srv, deps := newTestServer(t)

	deps.search.EXPECT().Search(mock.Anything, &usecase.SearchInput{LocationName: "Goa"}).
		Return(&usecase.SearchOutput{Mode: usecase.SearchModeText}, nil).Once()

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/search?location_name=Goa", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}
