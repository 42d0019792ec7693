package handler

import "errors"

var (
	errNoServicesProvided = errors.New("no services provided for handlers")
	errNoAPITokenProvided = errors.New("API token is empty, refusing to serve without authorization")
)
