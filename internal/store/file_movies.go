package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-movie-finder/data"
	"github.com/MKhiriev/go-movie-finder/models"
)

// LoadMoviesFromFile reads a JSON array of movie objects from path.
func LoadMoviesFromFile(path string) ([]models.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingMoviesFile, err)
	}
	defer f.Close()

	return DecodeMovies(f)
}

// LoadEmbeddedMovies decodes the sample dataset compiled into the binary.
func LoadEmbeddedMovies() ([]models.Movie, error) {
	return DecodeMovies(bytes.NewReader(data.MoviesSmall))
}

// DecodeMovies decodes a JSON array of movie objects. A null document yields
// an empty catalogue.
func DecodeMovies(r io.Reader) ([]models.Movie, error) {
	var movies []models.Movie
	if err := json.NewDecoder(r).Decode(&movies); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingMovies, err)
	}

	if movies == nil {
		movies = []models.Movie{}
	}

	return movies, nil
}
