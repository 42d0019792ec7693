package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMovies(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr error
	}{
		{name: "array", input: `[{"film_title":"a","avg_vote":7},{"film_title":"b","avg_vote":"6.0"}]`, wantLen: 2},
		{name: "empty array", input: `[]`, wantLen: 0},
		{name: "null", input: `null`, wantLen: 0},
		{name: "object instead of array", input: `{"film_title":"a"}`, wantErr: ErrDecodingMovies},
		{name: "broken json", input: `[{"film_title":`, wantErr: ErrDecodingMovies},
		{name: "bad number", input: `[{"avg_vote":{"x":1}}]`, wantErr: ErrDecodingMovies},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies, err := DecodeMovies(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, movies)
			assert.Len(t, movies, tt.wantLen)
		})
	}
}

func TestLoadMoviesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"film_title":"Nosferatu","genre":"Horror","avg_vote":7.9,"language":"German"}]`), 0o600))

	movies, err := LoadMoviesFromFile(path)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Nosferatu", movies[0].FilmTitle)
	assert.Contains(t, movies[0].Extra(), "language")

	_, err = LoadMoviesFromFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, ErrReadingMoviesFile)
}

func TestLoadEmbeddedMovies(t *testing.T) {
	movies, err := LoadEmbeddedMovies()
	require.NoError(t, err)
	assert.Len(t, movies, 15)
	assert.Equal(t, "Metropolis", movies[0].FilmTitle)
}

func TestMovieRepository_OwnsItsRecords(t *testing.T) {
	movies, err := LoadEmbeddedMovies()
	require.NoError(t, err)

	repo := NewMovieRepository(movies)
	movies[0].FilmTitle = "changed"

	all := repo.All(context.Background())
	assert.Equal(t, len(movies), repo.Len())
	assert.Equal(t, "Metropolis", all[0].FilmTitle)

	// appending to the returned slice must not leak into the repository
	_ = append(all, all[0])
	assert.Equal(t, len(movies), len(repo.All(context.Background())))
}
