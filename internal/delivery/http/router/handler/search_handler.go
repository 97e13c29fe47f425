// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"tourist/internal/delivery/http/response"
	"tourist/internal/domain/entity"
	"tourist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchRequest is the query string of GET /api/search.
type SearchRequest struct {
	LocationName string   `query:"location_name" validate:"max=200"`
	Latitude     *float64 `query:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64 `query:"longitude" validate:"omitempty,longitude"`
	PlaceType    string   `query:"place_type" validate:"omitempty,place_type"`
	SearchRadius float64  `query:"search_radius" validate:"omitempty,radius_km"`
}

type SearchResponse struct {
	Results         []*SearchResultResponse `json:"results"`
	Total           int                     `json:"total"`
	SearchLat       *float64                `json:"search_lat"`
	SearchLng       *float64                `json:"search_lng"`
	SearchPerformed bool                    `json:"search_performed"`
	Mode            string                  `json:"mode,omitempty"`
}

// Search runs the proximity search. A request without any query parameter is not a search
// and gets an empty response.
func (h *SearchHandler) Search(c echo.Context) error {
	if len(c.QueryParams()) == 0 {
		return response.Success(c, http.StatusOK, &SearchResponse{Results: []*SearchResultResponse{}})
	}

	req, err := bindSearchRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Search parameters must be numbers where numeric")
	}

	if err := c.Validate(req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", err.Error())
	}

	output, err := h.searchUC.Search(c.Request().Context(), &usecase.SearchInput{
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		PlaceType:    entity.PlaceCategory(req.PlaceType),
		RadiusKm:     req.SearchRadius,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := &SearchResponse{
		Results:         toSearchResults(output.Results),
		Total:           output.Total(),
		SearchPerformed: true,
		Mode:            string(output.Mode),
	}
	if output.Center != nil {
		lat, lng := output.Center.Lat(), output.Center.Lon()
		resp.SearchLat, resp.SearchLng = &lat, &lng
	}

	return response.Success(c, http.StatusOK, resp)
}

func bindSearchRequest(c echo.Context) (*SearchRequest, error) {
	req := &SearchRequest{}
	var lat, lng float64

	err := echo.QueryParamsBinder(c).
		String("location_name", &req.LocationName).
		Float64("latitude", &lat).
		Float64("longitude", &lng).
		String("place_type", &req.PlaceType).
		Float64("search_radius", &req.SearchRadius).
		BindError()
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(c.QueryParam("latitude")) != "" {
		req.Latitude = &lat
	}
	if strings.TrimSpace(c.QueryParam("longitude")) != "" {
		req.Longitude = &lng
	}
	req.LocationName = strings.TrimSpace(req.LocationName)
	req.PlaceType = strings.ToUpper(strings.TrimSpace(req.PlaceType))

	return req, nil
}
