package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-movie-finder/internal/adapter"
	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/internal/validators"
	"github.com/MKhiriev/go-movie-finder/models"
)

var errNoMovieAPI = errors.New("no movie api provided")

type App struct {
	api       adapter.MovieAPI
	validator validators.Validator
	query     models.MovieQuery
	asJSON    bool
	out       io.Writer

	logger *logger.Logger
}

func NewApp(api adapter.MovieAPI, cfg config.ClientConfig, out io.Writer, logger *logger.Logger) (*App, error) {
	if api == nil {
		return nil, errNoMovieAPI
	}

	return &App{
		api:       api,
		validator: validators.NewMovieQueryValidator(),
		query:     cfg.Query,
		asJSON:    cfg.JSONOutput,
		out:       out,
		logger:    logger,
	}, nil
}

// Run sends the configured search and prints the result. A search with an
// unknown sort field or a non-numeric rating is refused before sending.
func (a *App) Run(ctx context.Context) error {
	if err := a.validator.Validate(ctx, a.query); err != nil {
		return fmt.Errorf("invalid search: %w", err)
	}

	movies, err := a.api.FindMovies(ctx, a.query)
	if err != nil {
		return fmt.Errorf("find movies: %w", err)
	}

	if a.asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(movies)
	}

	version, err := a.api.GetVersion(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("could not get server version")
		version = "unknown"
	}

	_, err = fmt.Fprintf(a.out, "%s\n\n%s\n\n%s\n",
		titleStyle.Render("MOVIE FINDER "+version),
		RenderTable(movies),
		helpStyle.Render(fmt.Sprintf("%d movie(s) found", len(movies))),
	)
	return err
}
