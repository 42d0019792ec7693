package http

import (
	"net/http"

	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/internal/utils"
	"github.com/MKhiriev/go-movie-finder/models"
)

// findMovies answers GET /movie. The genre, country, avg_vote and sort
// query parameters narrow and order the catalogue; the response is always
// a JSON array.
func (h *Handler) findMovies(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := models.MovieQueryFromValues(r.URL.Query())

	movies, err := h.services.MovieService.FindMovies(r.Context(), query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.findMovies").Msg("error finding movies")
		h.writeServerError(w, r, err)
		return
	}

	if movies == nil {
		movies = []models.Movie{}
	}

	if _, err = utils.WriteJSON(w, movies, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.findMovies").Msg("error writing movies")
	}
}
