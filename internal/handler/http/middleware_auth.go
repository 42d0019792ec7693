package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-movie-finder/internal/logger"
)

// auth is an HTTP middleware that enforces the shared API token.
//
// The second space-separated part of the "Authorization" header must equal
// the configured token; the scheme in front of it is not inspected. Any
// failure ends the request with 401 and the body
// {"error":"Unauthorized request"}. Rejections are logged using the
// request-scoped logger obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeUnauthorized(w)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeUnauthorized(w)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), h.apiToken) != 1 {
			log.Err(ErrTokenMismatch).Send()
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
