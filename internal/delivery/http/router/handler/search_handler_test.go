package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"tourist/internal/domain/entity"
	"tourist/internal/geo"
	mockUsecase "tourist/internal/mocks/usecase"
	"tourist/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestSearchHandler_Search_CoordinateMode(t *testing.T) {
	searchUC := mockUsecase.NewMockSearchUsecase(t)
	h := NewSearchHandler(SearchHandlerParams{SearchUC: searchUC, Logger: newDiscardLogger()})

	center := geo.NewPoint(17.385, 78.4867)
	charminar := &entity.Place{ID: 7, Name: "Charminar", Location: "Hyderabad", Category: entity.CategoryHistorical,
		Latitude: float64Ptr(17.3616), Longitude: float64Ptr(78.4747)}

	searchUC.EXPECT().Search(mock.Anything, &usecase.SearchInput{
		Latitude:  float64Ptr(17.385),
		Longitude: float64Ptr(78.4867),
		PlaceType: entity.CategoryTemple,
		RadiusKm:  10,
	}).Return(&usecase.SearchOutput{
		Results: []entity.SearchResult{{Item: charminar, DistanceKm: float64Ptr(2.93)}},
		Center:  &center,
		Mode:    usecase.SearchModeCoordinates,
	}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/search?latitude=17.385&longitude=78.4867&place_type=temple&search_radius=10", "", nil)

	require.NoError(t, h.Search(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &resp))
	assert.True(t, resp.SearchPerformed)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "coordinates", resp.Mode)
	require.NotNil(t, resp.SearchLat)
	assert.InDelta(t, 17.385, *resp.SearchLat, 1e-9)
	assert.InDelta(t, 78.4867, *resp.SearchLng, 1e-9)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "place", resp.Results[0].Type)
	assert.Equal(t, "HISTORICAL", resp.Results[0].Category)
	assert.InDelta(t, 2.93, *resp.Results[0].DistanceKm, 1e-9)
	assert.InDelta(t, 17.3616, *resp.Results[0].Latitude, 1e-9)
}

func TestSearchHandler_Search_NoParameters(t *testing.T) {
	h := NewSearchHandler(SearchHandlerParams{SearchUC: mockUsecase.NewMockSearchUsecase(t), Logger: newDiscardLogger()})

	c, rec := newTestContext(http.MethodGet, "/api/search", "", nil)

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &resp))
	assert.False(t, resp.SearchPerformed)
	assert.Empty(t, resp.Results)
	assert.Nil(t, resp.SearchLat)
}

func TestSearchHandler_Search_BadInput(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantCode string
	}{
		{name: "radius not a number", target: "/api/search?search_radius=far", wantCode: "INVALID_INPUT"},
		{name: "radius outside set", target: "/api/search?search_radius=3", wantCode: "VALIDATION_FAILED"},
		{name: "unknown place type", target: "/api/search?place_type=casino", wantCode: "VALIDATION_FAILED"},
		{name: "latitude out of range", target: "/api/search?latitude=95&longitude=10", wantCode: "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSearchHandler(SearchHandlerParams{SearchUC: mockUsecase.NewMockSearchUsecase(t), Logger: newDiscardLogger()})
			c, rec := newTestContext(http.MethodGet, tt.target, "", nil)

			require.NoError(t, h.Search(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
		})
	}
}
