package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL whose requests time out
// after timeout. Each call returns an independent client instance with its
// own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000", 15*time.Second)
//	resp, err := client.R().SetQueryParam("genre", "drama").Get("/movie")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
