package http

import (
	"net/http"

	"github.com/MKhiriev/go-movie-finder/internal/app"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/internal/utils"
)

type errorResponse struct {
	Error any `json:"error"`
}

type errorMessage struct {
	Message string `json:"message"`
}

func writeUnauthorized(w http.ResponseWriter) {
	utils.WriteJSON(w, errorResponse{Error: app.MsgUnauthorizedRequest}, http.StatusUnauthorized)
}

// writeServerError answers 500. Production responses hide the cause;
// otherwise the error text is returned to help local debugging.
func (h *Handler) writeServerError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorResponse{Error: errorMessage{Message: app.MsgServerError}}
	if !h.production {
		body = errorResponse{Error: err.Error()}
	}

	if _, writeErr := utils.WriteJSON(w, body, http.StatusInternalServerError); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("error writing server error response")
	}
}
