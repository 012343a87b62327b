package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"nearby-restaurants/config"
	"nearby-restaurants/di"
	"nearby-restaurants/logging"
	services "nearby-restaurants/service"
)

const serviceName = "nearby-restaurants"

func seed(ctx context.Context, container *di.Container) {
	var (
		n   int
		err error
	)
	if path := container.Config.SeedFile; path != "" {
		log.Info().Str("file", path).Msg("seeding restaurants from file")
		n, err = container.SeederService.SeedFromFile(ctx, path)
	} else {
		log.Info().Float64("lat", services.SeedBaseLatitude).Float64("lon", services.SeedBaseLongitude).
			Msg("seeding reference restaurants")
		n, err = container.SeederService.Seed(ctx, services.SeedBaseLatitude, services.SeedBaseLongitude)
	}
	if err != nil {
		log.Fatal().Err(err).Int("inserted", n).Msg("seeding failed")
	}
	log.Info().Int("inserted", n).Msg("seeding done")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Init(serviceName, config.EnvProduction)
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Init(serviceName, cfg.Env)

	ctx := context.Background()
	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize container")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := container.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	if cfg.SeedOnStart {
		seed(ctx, container)
	}

	if err := container.HttpServer.Start(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
