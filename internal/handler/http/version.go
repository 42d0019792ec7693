package http

import (
	"net/http"

	"github.com/MKhiriev/go-movie-finder/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, serverVersion, http.StatusOK)
}
