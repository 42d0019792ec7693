package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/internal/utils"
	"github.com/MKhiriev/go-movie-finder/models"
)

const (
	moviePath   = "/movie"
	versionPath = "/version"

	traceIDHeader = "X-Trace-ID"
)

type httpMovieAPI struct {
	client   *utils.HTTPClient
	token    string
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPMovieAPI constructs the resty implementation of [MovieAPI].
// It normalises and validates adapterCfg.BaseURL and configures the
// request timeout.
func NewHTTPMovieAPI(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (MovieAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpMovieAPI{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		token:    strings.TrimSpace(appCfg.APIToken),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpMovieAPI) FindMovies(ctx context.Context, q models.MovieQuery) ([]models.Movie, error) {
	resp, err := h.request(ctx).
		SetQueryParamsFromValues(q.Values()).
		Get(moviePath)
	if err != nil {
		return nil, fmt.Errorf("find movies request: %w", err)
	}

	h.logger.Debug().
		Str("trace_id", resp.Request.Header.Get(traceIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("movie query answered")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	movies := make([]models.Movie, 0)
	if err = json.Unmarshal(resp.Body(), &movies); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return movies, nil
}

func (h *httpMovieAPI) GetVersion(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// request prepares an authorized request. The trace id of ctx is forwarded
// when present so that client and server log lines can be matched.
func (h *httpMovieAPI) request(ctx context.Context) *resty.Request {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.traceIDs.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, traceID)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
