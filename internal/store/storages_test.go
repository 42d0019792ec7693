package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
)

func TestNewStorages_EmbeddedByDefault(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, SourceEmbedded, s.Source())
	assert.Equal(t, 15, s.MovieRepository.Len())
}

func TestNewStorages_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"film_title":"Solaris","avg_vote":8.1}]`), 0o600))

	s, err := NewStorages(context.Background(), config.Storage{MoviesFile: path}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, SourceFile, s.Source())
	all := s.MovieRepository.All(context.Background())
	require.Len(t, all, 1)
	assert.Equal(t, "Solaris", all[0].FilmTitle)
}

func TestNewStorages_DatabaseWinsOverFile(t *testing.T) {
	path := newSQLiteFile(t)
	seedSQLite(t, path)

	cfg := config.Storage{
		MoviesFile: filepath.Join(t.TempDir(), "does-not-exist.json"),
		DB:         config.DB{DSN: path},
	}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, SourceDatabase, s.Source())
	assert.Equal(t, 2, s.MovieRepository.Len())
}

func TestNewStorages_DatabaseMigratedOnDemand(t *testing.T) {
	cfg := config.Storage{DB: config.DB{DSN: newSQLiteFile(t), Migrate: true}}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, s.MovieRepository.Len())

	cfg.DB.Migrate = false
	cfg.DB.DSN = newSQLiteFile(t)
	_, err = NewStorages(context.Background(), cfg, logger.Nop())
	require.ErrorIs(t, err, ErrMoviesTableMissing)
}

func TestNewStorages_Errors(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{MoviesFile: "/nonexistent/movies.json"}, logger.Nop())
	assert.ErrorIs(t, err, ErrReadingMoviesFile)

	_, err = NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "mysql://localhost/movies"}}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
