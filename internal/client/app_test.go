package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-movie-finder/internal/adapter"
	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/internal/mock"
	"github.com/MKhiriev/go-movie-finder/internal/validators"
	"github.com/MKhiriev/go-movie-finder/models"
)

func sampleMovies() []models.Movie {
	return []models.Movie{
		{FilmTitle: "Toy Story", Year: models.NumberOf(1995), Genre: "Animation, Comedy", Country: "USA", AvgVote: models.NumberString("8.3"), Votes: models.NumberOf(880000)},
		{FilmTitle: "Amélie", Year: models.NumberOf(2001), Genre: "Comedy, Romance", Country: "France", AvgVote: models.NumberOf(8.3)},
	}
}

func TestNewApp_RequiresAPI(t *testing.T) {
	_, err := NewApp(nil, config.ClientConfig{}, &bytes.Buffer{}, logger.Nop())
	assert.ErrorIs(t, err, errNoMovieAPI)
}

func TestApp_Run_PrintsTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockMovieAPI(ctrl)

	q := models.MovieQuery{Genre: "comedy", Sort: "year"}
	api.EXPECT().FindMovies(gomock.Any(), q).Return(sampleMovies(), nil)
	api.EXPECT().GetVersion(gomock.Any()).Return("1.0.0", nil)

	var out bytes.Buffer
	app, err := NewApp(api, config.ClientConfig{Query: q}, &out, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "MOVIE FINDER 1.0.0")
	assert.Contains(t, text, "Toy Story")
	assert.Contains(t, text, "Amélie")
	assert.Contains(t, text, "2 movie(s) found")
	assert.Less(t, strings.Index(text, "Toy Story"), strings.Index(text, "Amélie"))
}

func TestApp_Run_VersionFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockMovieAPI(ctrl)

	api.EXPECT().FindMovies(gomock.Any(), gomock.Any()).Return(nil, nil)
	api.EXPECT().GetVersion(gomock.Any()).Return("", adapter.ErrUnexpectedStatus)

	var out bytes.Buffer
	app, err := NewApp(api, config.ClientConfig{}, &out, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "MOVIE FINDER unknown")
	assert.Contains(t, out.String(), "0 movie(s) found")
}

func TestApp_Run_PrintsJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockMovieAPI(ctrl)

	api.EXPECT().FindMovies(gomock.Any(), gomock.Any()).Return(sampleMovies(), nil)

	var out bytes.Buffer
	app, err := NewApp(api, config.ClientConfig{JSONOutput: true}, &out, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "Toy Story", decoded[0]["film_title"])
	assert.Equal(t, "8.3", decoded[0]["avg_vote"])
}

func TestApp_Run_FindError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockMovieAPI(ctrl)

	api.EXPECT().FindMovies(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrUnauthorized)

	var out bytes.Buffer
	app, err := NewApp(api, config.ClientConfig{}, &out, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.True(t, errors.Is(err, adapter.ErrUnauthorized))
	assert.Empty(t, out.String())
}

func TestApp_Run_RejectsInvalidQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockMovieAPI(ctrl)

	app, err := NewApp(api, config.ClientConfig{Query: models.MovieQuery{Sort: "rating"}}, &bytes.Buffer{}, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorIs(t, err, validators.ErrUnknownSortField)
}
