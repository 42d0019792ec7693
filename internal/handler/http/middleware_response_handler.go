// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// records the status code and the number of body bytes written, so that
// withLogging can report them after the handler returns.
//
// WriteHeader is forwarded to the underlying writer exactly once;
// subsequent calls are ignored, mirroring the contract of
// [http.ResponseWriter].
type responseWriter struct {
	http.ResponseWriter

	// status is zero until WriteHeader (or an implicit WriteHeader via
	// Write) is called.
	status int

	wroteHeader bool

	// size is the running total of bytes written across all Write calls.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly sends 200 when WriteHeader was not called first.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets [http.ResponseController] reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
