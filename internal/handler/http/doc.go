// Package http implements the HTTP transport layer of the movie finder.
//
// It exposes route wiring, request handlers, and middleware. Panic recovery,
// request tracing, access logging, security headers, CORS, response
// compression and bearer token authorization are handled in this package
// before requests reach the service layer.
package http
