package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-movie-finder/internal/logger"
)

// withLogging writes one access log entry per request. Production entries
// are compact; other modes add the client address, protocol and user agent.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		status := lw.status
		if status == 0 {
			// nothing was written, net/http sends 200
			status = http.StatusOK
		}

		event := log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size)

		if !h.production {
			event = event.
				Str("remote_addr", r.RemoteAddr).
				Str("proto", r.Proto).
				Str("user_agent", r.UserAgent()).
				Str("referer", r.Referer())
		}

		event.Send()
	})
}
