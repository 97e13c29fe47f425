// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tourist/internal/delivery/http/middleware"
	"tourist/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler    *handler.SearchHandler
	CatalogHandler   *handler.CatalogHandler
	ExploreHandler   *handler.ExploreHandler
	ItineraryHandler *handler.ItineraryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler    *handler.SearchHandler
	catalogHandler   *handler.CatalogHandler
	exploreHandler   *handler.ExploreHandler
	itineraryHandler *handler.ItineraryHandler
	authMiddleware   *middleware.AuthMiddleware
}

func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:    params.SearchHandler,
		catalogHandler:   params.CatalogHandler,
		exploreHandler:   params.ExploreHandler,
		itineraryHandler: params.ItineraryHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public catalog and search
	api.GET("/search", r.searchHandler.Search)
	api.GET("/places", r.catalogHandler.ListPlaces)
	api.GET("/places/:id", r.catalogHandler.GetPlace)
	api.GET("/hill-stations", r.catalogHandler.ListHillStations)
	api.GET("/hill-stations/:id", r.catalogHandler.GetHillStation)
	api.GET("/explore/nearby", r.exploreHandler.Nearby)

	itineraries := api.Group("/itineraries")
	itineraries.Use(r.authMiddleware.Authenticate)
	{
		itineraries.POST("/generate", r.itineraryHandler.GeneratePlan)
		itineraries.POST("/save", r.itineraryHandler.SavePlan)
		itineraries.GET("", r.itineraryHandler.ListPlans)
		itineraries.GET("/:id", r.itineraryHandler.GetPlan)
		itineraries.PUT("/:id", r.itineraryHandler.UpdatePlan)
		itineraries.DELETE("/:id", r.itineraryHandler.DeletePlan)
	}
}
