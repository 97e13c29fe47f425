package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"tourist/internal/delivery/http/response"
	"tourist/internal/domain/entity"
	"tourist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the place and hill station listings and detail pages.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

type PlaceDetailResponse struct {
	Place  *PlaceResponse          `json:"place"`
	Nearby []*SearchResultResponse `json:"nearby"`
}

type HillStationListResponse struct {
	HillStations []*HillStationResponse `json:"hill_stations"`
	States       []string               `json:"states"`
	Cities       []string               `json:"cities"`
}

type HillStationDetailResponse struct {
	HillStation *HillStationResponse    `json:"hill_station"`
	Nearby      []*SearchResultResponse `json:"nearby"`
}

func (h *CatalogHandler) ListPlaces(c echo.Context) error {
	places, err := h.catalogUC.ListPlaces(c.Request().Context(), &usecase.ListPlacesInput{
		Category: entity.PlaceCategory(strings.ToUpper(strings.TrimSpace(c.QueryParam("category")))),
		Query:    c.QueryParam("q"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponses(places))
}

func (h *CatalogHandler) GetPlace(c echo.Context) error {
	id, ok := parseCatalogID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid place ID")
	}

	detail, err := h.catalogUC.GetPlace(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PlaceDetailResponse{
		Place:  toPlaceResponse(detail.Place),
		Nearby: toSearchResults(detail.Nearby),
	})
}

func (h *CatalogHandler) ListHillStations(c echo.Context) error {
	listing, err := h.catalogUC.ListHillStations(c.Request().Context(), &usecase.ListHillStationsInput{
		State: c.QueryParam("state"),
		City:  c.QueryParam("city"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &HillStationListResponse{
		HillStations: toHillStationResponses(listing.HillStations),
		States:       listing.States,
		Cities:       listing.Cities,
	})
}

func (h *CatalogHandler) GetHillStation(c echo.Context) error {
	id, ok := parseCatalogID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid hill station ID")
	}

	detail, err := h.catalogUC.GetHillStation(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &HillStationDetailResponse{
		HillStation: toHillStationResponse(detail.HillStation),
		Nearby:      toSearchResults(detail.Nearby),
	})
}

func parseCatalogID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return uint(id), true
}
