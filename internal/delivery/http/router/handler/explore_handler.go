package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"tourist/internal/domain/entity"
	"tourist/internal/geo"
	"tourist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExploreHandlerParams holds dependencies for ExploreHandler, injected by Fx.
type ExploreHandlerParams struct {
	fx.In

	ExploreUC usecase.ExploreUsecase
	Logger    *slog.Logger
}

// ExploreHandler serves the map widget's nearby lookup. Its payloads are bare
// {"results": [...]} or {"error": "..."} objects, not the API envelope.
type ExploreHandler struct {
	exploreUC usecase.ExploreUsecase
	logger    *slog.Logger
}

func NewExploreHandler(params ExploreHandlerParams) *ExploreHandler {
	return &ExploreHandler{
		exploreUC: params.ExploreUC,
		logger:    params.Logger,
	}
}

type nearbyPlacesResponse struct {
	Results []entity.ExternalPlace `json:"results"`
}

type nearbyErrorResponse struct {
	Error string `json:"error"`
}

func (h *ExploreHandler) Nearby(c echo.Context) error {
	rawLat := strings.TrimSpace(c.QueryParam("lat"))
	rawLng := strings.TrimSpace(c.QueryParam("lng"))
	if rawLat == "" || rawLng == "" {
		return c.JSON(http.StatusBadRequest, nearbyErrorResponse{Error: "Latitude and Longitude are required"})
	}

	lat, errLat := strconv.ParseFloat(rawLat, 64)
	lng, errLng := strconv.ParseFloat(rawLng, 64)
	if errLat != nil || errLng != nil {
		return c.JSON(http.StatusBadRequest, nearbyErrorResponse{Error: "Latitude and Longitude must be numbers"})
	}
	if !geo.IsValid(geo.NewPoint(lat, lng)) {
		return c.JSON(http.StatusBadRequest, nearbyErrorResponse{Error: "Latitude and Longitude are out of range"})
	}

	var radius float64
	if raw := strings.TrimSpace(c.QueryParam("radius")); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, nearbyErrorResponse{Error: "Radius must be a positive number"})
		}
		radius = parsed
	}

	result := h.exploreUC.FetchNearby(c.Request().Context(), &usecase.NearbyPlacesInput{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radius,
		Category:  entity.ExternalCategory(strings.ToUpper(strings.TrimSpace(c.QueryParam("category")))),
	})
	if result.Failed() {
		return c.JSON(http.StatusInternalServerError, nearbyErrorResponse{Error: result.Error})
	}

	return c.JSON(http.StatusOK, nearbyPlacesResponse{Results: result.Places})
}
