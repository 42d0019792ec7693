package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-movie-finder/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses a well-formed X-Trace-ID sent by the caller or
// generates a new one. The id is echoed in the response, stored in the
// request context and attached to the request-scoped logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if !utils.IsValidTraceID(traceID) {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = utils.WithTraceID(ctx, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
