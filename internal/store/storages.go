package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/models"
)

// Catalogue sources reported by [Storages.Source].
const (
	SourceDatabase = "database"
	SourceFile     = "file"
	SourceEmbedded = "embedded"
)

type Storages struct {
	MovieRepository MovieRepository

	source string
}

// NewStorages loads the catalogue once. A configured database wins over a
// movies file, and the sample dataset compiled into the binary is used when
// neither is set. The database connection is closed as soon as the rows
// are read.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	movies, source, err := loadMovies(ctx, cfg, log)
	if err != nil {
		log.Err(err).Str("func", "store.NewStorages").Str("source", source).Msg("error loading movie catalogue")
		return nil, err
	}

	log.Info().Str("source", source).Int("movies", len(movies)).Msg("movie catalogue loaded")

	return &Storages{
		MovieRepository: NewMovieRepository(movies),
		source:          source,
	}, nil
}

// Source names where the catalogue was read from.
func (s *Storages) Source() string {
	return s.source
}

func loadMovies(ctx context.Context, cfg config.Storage, log *logger.Logger) ([]models.Movie, string, error) {
	switch {
	case cfg.DB.DSN != "":
		movies, err := loadMoviesFromDB(ctx, cfg.DB, log)
		return movies, SourceDatabase, err
	case cfg.MoviesFile != "":
		movies, err := LoadMoviesFromFile(cfg.MoviesFile)
		return movies, SourceFile, err
	default:
		movies, err := LoadEmbeddedMovies()
		return movies, SourceEmbedded, err
	}
}

func loadMoviesFromDB(ctx context.Context, cfg config.DB, log *logger.Logger) ([]models.Movie, error) {
	db, err := OpenDB(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if cfg.Migrate {
		if err = db.Migrate(); err != nil {
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
	}

	return db.LoadMovies(ctx)
}
