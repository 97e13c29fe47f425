// Command seed imports the tourist place, place and hill station catalogs from an xlsx workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"tourist/config"
	logs "tourist/internal/infra/log"
	"tourist/internal/infra/persistence/postgres"
	"tourist/internal/infra/seed"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type seedFlags struct {
	file    string
	migrate bool
}

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Seeder *seed.Seeder
	Logger *slog.Logger
}

func main() {
	flags := seedFlags{}
	flag.StringVar(&flags.file, "file", "", "Path to the catalog workbook (.xlsx)")
	flag.BoolVar(&flags.migrate, "migrate", false, "Create or update tables before seeding")
	flag.Parse()

	if flags.file == "" {
		fmt.Fprintln(os.Stderr, "usage: seed -file catalog.xlsx [-migrate]")
		os.Exit(2)
	}

	fx.New(
		fx.NopLogger,
		fx.Supply(flags),
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTouristPlaceRepository,
			postgres.NewPlaceRepository,
			postgres.NewHillStationRepository,
		),
		seed.Module,
		fx.Invoke(run),
	).Run()
}

func run(flags seedFlags, params runParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				if err := importWorkbook(context.Background(), flags, params); err != nil {
					params.Logger.Error("Seeding failed", slog.Any("error", err))
					exitCode = 1
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
					os.Exit(1)
				}
			}()

			return nil
		},
	})
}

func importWorkbook(ctx context.Context, flags seedFlags, params runParams) error {
	if flags.migrate {
		if err := postgres.Migrate(ctx, params.DB); err != nil {
			return err
		}
		params.Logger.InfoContext(ctx, "Schema migrated")
	}

	file, err := os.Open(flags.file)
	if err != nil {
		return errors.Wrap(err, "failed to open workbook")
	}
	defer file.Close()

	catalog, err := seed.LoadWorkbook(file)
	if err != nil {
		return err
	}

	_, err = params.Seeder.Seed(ctx, catalog)

	return err
}
