package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-movie-finder/migrations"
	"github.com/MKhiriev/go-movie-finder/models"
)

const moviesTable = "movies"

var movieColumns = []string{
	"film_title",
	"year",
	"genre",
	"duration",
	"country",
	"director",
	"actors",
	"avg_vote",
	"votes",
	"extra",
}

func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.dialect == migrations.DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}

// buildSelectMovies returns the statement reading the whole catalogue in
// insertion order.
func (db *DB) buildSelectMovies() (string, []any, error) {
	query, args, err := sq.Select(movieColumns...).
		From(moviesTable).
		OrderBy("id").
		PlaceholderFormat(db.placeholder()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// LoadMovies reads every row of the movies table. Rows keep their id order.
func (db *DB) LoadMovies(ctx context.Context) ([]models.Movie, error) {
	query, args, err := db.buildSelectMovies()
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.LoadMovies").Msg("error building query")
		return nil, err
	}

	var movies []models.Movie
	err = db.withRetry(ctx, "load movies", func(ctx context.Context) error {
		var loadErr error
		movies, loadErr = db.queryMovies(ctx, query, args...)
		return loadErr
	})
	if err != nil {
		db.logger.Err(err).Str("func", "*DB.LoadMovies").Msg("error loading movies")
		return nil, db.translate(err)
	}

	db.logger.Debug().Str("func", "*DB.LoadMovies").Int("rows", len(movies)).Msg("movies loaded")
	return movies, nil
}

func (db *DB) queryMovies(ctx context.Context, query string, args ...any) ([]models.Movie, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		movie, scanErr := scanMovie(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return movies, nil
}

func scanMovie(rows *sql.Rows) (models.Movie, error) {
	var (
		m     models.Movie
		extra sql.NullString
	)

	err := rows.Scan(
		&m.FilmTitle,
		&m.Year,
		&m.Genre,
		&m.Duration,
		&m.Country,
		&m.Director,
		&m.Actors,
		&m.AvgVote,
		&m.Votes,
		&extra,
	)
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if !extra.Valid || extra.String == "" {
		return m, nil
	}

	var attrs map[string]json.RawMessage
	if err = json.Unmarshal([]byte(extra.String), &attrs); err != nil {
		return models.Movie{}, fmt.Errorf("%w: extra column of %q: %w", ErrScanningRows, m.FilmTitle, err)
	}

	return m.WithExtra(attrs)
}

// IsSchemaError reports whether err means the movies table is missing or
// has an unexpected shape.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrMoviesTableMissing) || errors.Is(err, ErrMoviesSchemaMismatch)
}
