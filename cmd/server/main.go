package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/handler"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/internal/server"
	"github.com/MKhiriev/go-movie-finder/internal/service"
	"github.com/MKhiriev/go-movie-finder/internal/store"
	"github.com/MKhiriev/go-movie-finder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.NewLogger("movie-finder-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.New("movie-finder-server", logger.Options{Production: cfg.App.IsProduction()})

	log.Debug().
		Str("environment", cfg.App.Environment).
		Str("address", cfg.Server.Address()).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
