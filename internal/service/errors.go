package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoMovieRepository = errors.New("movie repository is not configured")
)
