package handler

import (
	"net/http"
	"testing"

	"tourist/internal/domain/entity"
	mockUsecase "tourist/internal/mocks/usecase"
	"tourist/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExploreHandler_Nearby(t *testing.T) {
	exploreUC := mockUsecase.NewMockExploreUsecase(t)
	h := NewExploreHandler(ExploreHandlerParams{ExploreUC: exploreUC, Logger: newDiscardLogger()})

	exploreUC.EXPECT().FetchNearby(mock.Anything, &usecase.NearbyPlacesInput{
		Latitude:  18.5204,
		Longitude: 73.8567,
		RadiusKm:  5,
		Category:  entity.ExternalHotel,
	}).Return(&entity.NearbyPlacesResult{Places: []entity.ExternalPlace{{
		Name:     "Hotel Shreyas",
		Lat:      18.52,
		Lng:      73.84,
		Category: entity.ExternalHotel,
		Address:  "Apte Road",
		Source:   entity.SourceOpenStreetMap,
	}}}).Once()

	c, rec := newTestContext(http.MethodGet, "/api/explore/nearby?lat=18.5204&lng=73.8567&radius=5&category=hotel", "", nil)

	require.NoError(t, h.Nearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[{"name":"Hotel Shreyas","lat":18.52,"lng":73.84,"category":"HOTEL",
		"address":"Apte Road","rating":null,"source":"OpenStreetMap"}]}`, rec.Body.String())
}

func TestExploreHandler_Nearby_Defaults(t *testing.T) {
	exploreUC := mockUsecase.NewMockExploreUsecase(t)
	h := NewExploreHandler(ExploreHandlerParams{ExploreUC: exploreUC, Logger: newDiscardLogger()})

	exploreUC.EXPECT().FetchNearby(mock.Anything, &usecase.NearbyPlacesInput{Latitude: 15.2993, Longitude: 74.124}).
		Return(&entity.NearbyPlacesResult{Places: []entity.ExternalPlace{}}).Once()

	c, rec := newTestContext(http.MethodGet, "/api/explore/nearby?lat=15.2993&lng=74.124", "", nil)

	require.NoError(t, h.Nearby(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
}

func TestExploreHandler_Nearby_Failures(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(uc *mockUsecase.MockExploreUsecase)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing coordinates",
			target:     "/api/explore/nearby?lat=18.5",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Latitude and Longitude are required"}`,
		},
		{
			name:       "non numeric coordinates",
			target:     "/api/explore/nearby?lat=north&lng=73.8",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Latitude and Longitude must be numbers"}`,
		},
		{
			name:       "out of range",
			target:     "/api/explore/nearby?lat=91&lng=73.8",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Latitude and Longitude are out of range"}`,
		},
		{
			name:       "bad radius",
			target:     "/api/explore/nearby?lat=18.5&lng=73.8&radius=-2",
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Radius must be a positive number"}`,
		},
		{
			name:   "provider failure",
			target: "/api/explore/nearby?lat=18.5&lng=73.8",
			setup: func(uc *mockUsecase.MockExploreUsecase) {
				uc.EXPECT().FetchNearby(mock.Anything, mock.Anything).
					Return(&entity.NearbyPlacesResult{Error: "OSM API Error: unexpected status 504"}).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"OSM API Error: unexpected status 504"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exploreUC := mockUsecase.NewMockExploreUsecase(t)
			if tt.setup != nil {
				tt.setup(exploreUC)
			}
			h := NewExploreHandler(ExploreHandlerParams{ExploreUC: exploreUC, Logger: newDiscardLogger()})

			c, rec := newTestContext(http.MethodGet, tt.target, "", nil)

			require.NoError(t, h.Nearby(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
