package main

import (
	"context"
	"log/slog"
	"os"

	"tourist/config"
	"tourist/internal/delivery"
	"tourist/internal/delivery/http"
	"tourist/internal/delivery/http/middleware"
	"tourist/internal/delivery/http/router/handler"
	"tourist/internal/geo"
	"tourist/internal/infra/auth"
	"tourist/internal/infra/draft"
	logs "tourist/internal/infra/log"
	"tourist/internal/infra/persistence/postgres"
	"tourist/internal/infra/places"
	"tourist/internal/infra/weather"
	"tourist/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		geo.DefaultGazetteer,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTouristPlaceRepository,
			postgres.NewPlaceRepository,
			postgres.NewHillStationRepository,
			postgres.NewTravelPlanRepository,
			postgres.NewTransactionManager,
		),
		draft.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
			weather.NewOpenWeatherClient,
		),
		places.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAllocatorFromConfig,
			impl.NewSearchService,
			impl.NewCatalogService,
			impl.NewExploreService,
			impl.NewItineraryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSearchHandler,
			handler.NewCatalogHandler,
			handler.NewExploreHandler,
			handler.NewItineraryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
