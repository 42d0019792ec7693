package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-movie-finder/internal/adapter"
	"github.com/MKhiriev/go-movie-finder/internal/client"
	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
)

func main() {
	log := logger.New("movie-finder-client", logger.Options{Output: os.Stderr})

	cfg, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPMovieAPI(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create movie api adapter")
	}

	app, err := client.NewApp(api, *cfg, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
