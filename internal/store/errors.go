package store

import "errors"

// Sentinel errors returned while loading the movie catalogue. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrReadingMoviesFile is returned when the configured movies file cannot
	// be opened or read.
	ErrReadingMoviesFile = errors.New("error reading movies file")

	// ErrDecodingMovies is returned when the dataset is not a JSON array of
	// movie objects.
	ErrDecodingMovies = errors.New("error decoding movies")

	// ErrUnsupportedDSN is returned when the database DSN names neither
	// PostgreSQL nor SQLite.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrMoviesTableMissing is returned when the database has no movies
	// table. Running with migrations enabled creates it.
	ErrMoviesTableMissing = errors.New("movies table does not exist")

	// ErrMoviesSchemaMismatch is returned when the movies table lacks one of
	// the expected columns.
	ErrMoviesSchemaMismatch = errors.New("movies table has unexpected schema")

	// ErrDatabaseUnavailable is returned when the connection to the database
	// is lost or refused.
	ErrDatabaseUnavailable = errors.New("database is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL source when an operation fails before any rows can be used.
var (
	// ErrBuildingSQLQuery is returned when constructing the SELECT fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing the SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan movie rows")
)
