package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server configuration flags from args (without the
// program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p server port (overrides the port given with -a)
//	-token API token expected in the Authorization header
//	-env deployment environment (development, production, test)
//	-f path to a JSON file with movies
//	-d database DSN to load movies from
//	-migrate apply database migrations before loading movies
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s", "1m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("movie-finder", flag.ContinueOnError)

	var serverAddress NetAddress
	var port int
	var apiToken string
	var environment string
	var moviesFile string
	var databaseDSN string
	var migrate bool
	var jsonConfigPath string
	var requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.IntVar(&port, "p", 0, "Port to listen on")
	fs.StringVar(&apiToken, "token", "", "API token")
	fs.StringVar(&environment, "env", "", "Deployment environment")
	fs.StringVar(&moviesFile, "f", "", "Movies JSON file path")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&migrate, "migrate", false, "Apply database migrations")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if port != 0 {
		serverAddress.Port = port
	}

	return &StructuredConfig{
		App: App{
			APIToken:    apiToken,
			Environment: environment,
		},
		Server: Server{
			Host:           serverAddress.Host,
			Port:           serverAddress.Port,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			MoviesFile: moviesFile,
			DB: DB{
				DSN:     databaseDSN,
				Migrate: migrate,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is empty or
// "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
