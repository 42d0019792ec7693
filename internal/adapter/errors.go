package adapter

import "errors"

var (
	ErrInvalidBaseURL = errors.New("invalid server base URL")

	ErrUnauthorized        = errors.New("client unauthorized")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
	ErrNotFound            = errors.New("resource not found")
	ErrInternalServerError = errors.New("internal server error")

	ErrDecodingResponse = errors.New("error decoding server response")
)
