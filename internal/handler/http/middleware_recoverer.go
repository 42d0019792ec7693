package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
)

// recoverer turns a panic in any later middleware or handler into a 500
// response shaped by writeServerError. It replaces chi's Recoverer, which
// answers with an empty body.
//
// recoverer runs before withTraceID, so the handler logger is used rather
// than the request-scoped one.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				// the connection is already gone
				panic(rvr)
			}

			err := panicToError(rvr)
			h.logger.Error().
				Err(err).
				Str("method", r.Method).
				Str("uri", r.RequestURI).
				Str("trace_id", w.Header().Get(traceIDHeader)).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			h.writeServerError(w, r, err)
		}()

		next.ServeHTTP(w, r)
	})
}

func panicToError(rvr any) error {
	if err, ok := rvr.(error); ok {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPanicRecovered, rvr)
}
