package http

import (
	"net/http"

	"github.com/MKhiriev/go-movie-finder/internal/app"
	"github.com/MKhiriev/go-movie-finder/internal/utils"
)

func (h *Handler) greet(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, app.MsgGreeting, http.StatusOK)
}
