package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-movie-finder/models"
)

// Client defaults.
const (
	DefaultClientBaseURL = "http://localhost:8000"
	DefaultClientTimeout = 15 * time.Second
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// APIToken is sent as "Authorization: Bearer <token>".
	// Env: API_TOKEN
	APIToken string `env:"API_TOKEN"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the root URL of the movie finder server.
	// Env: MOVIE_API_URL
	BaseURL string `env:"MOVIE_API_URL"`

	// RequestTimeout is the timeout for a single request to the server.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"CLIENT_REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration of the command-line client.
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address and timeouts.
	Adapter ClientAdapter
	// Query is the search sent to the server. It only comes from flags.
	Query models.MovieQuery
	// JSONOutput prints the raw JSON array instead of a table.
	JSONOutput bool
}

// GetClientConfig builds and validates the client configuration from the
// .env file, environment variables and args (later wins).
func GetClientConfig(args []string) (*ClientConfig, error) {
	if err := loadDotEnv(DefaultDotEnvFile); err != nil {
		return nil, err
	}

	envCfg, err := parseEnv[ClientConfig]()
	if err != nil {
		return nil, err
	}

	flagCfg, err := ParseClientFlags(args)
	if err != nil {
		return nil, err
	}

	clientCfg := new(ClientConfig)
	for _, cfg := range []*ClientConfig{envCfg, flagCfg} {
		if err = mergo.Merge(clientCfg, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if clientCfg.Adapter.BaseURL == "" {
		clientCfg.Adapter.BaseURL = DefaultClientBaseURL
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultClientTimeout
	}

	return clientCfg, clientCfg.validate()
}

// ParseClientFlags parses the client flags from args (without the program
// name).
//
// Flags:
//
//	-url server base URL
//	-token API token
//	-timeout request timeout (e.g., "5s")
//	-genre, -country, -avg-vote, -sort search criteria
//	-json print raw JSON instead of a table
func ParseClientFlags(args []string) (*ClientConfig, error) {
	fs := flag.NewFlagSet("movie-finder-client", flag.ContinueOnError)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.Adapter.BaseURL, "url", "", "Server base URL")
	fs.StringVar(&cfg.App.APIToken, "token", "", "API token")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&cfg.Query.Genre, "genre", "", "Genre substring")
	fs.StringVar(&cfg.Query.Country, "country", "", "Country substring")
	fs.StringVar(&cfg.Query.AvgVote, "avg-vote", "", "Minimum average vote")
	fs.StringVar(&cfg.Query.Sort, "sort", "", "Field to sort by")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "Print raw JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return cfg, nil
}
