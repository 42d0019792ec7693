package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		APIToken    string `json:"api_token"`
		Environment string `json:"environment"`
		Version     string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		Host               string   `json:"host"`
		Port               int      `json:"port"`
		RequestTimeout     Duration `json:"request_timeout"`
		ShutdownTimeout    Duration `json:"shutdown_timeout"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	} `json:"server,omitempty"`

	Storage struct {
		MoviesFile string `json:"movies_file"`

		DB struct {
			DSN     string `json:"dsn"`
			Migrate bool   `json:"migrate"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			APIToken:    jsonCfg.App.APIToken,
			Environment: jsonCfg.App.Environment,
			Version:     jsonCfg.App.Version,
		},
		Server: Server{
			Host:               jsonCfg.Server.Host,
			Port:               jsonCfg.Server.Port,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:    time.Duration(jsonCfg.Server.ShutdownTimeout),
			CORSAllowedOrigins: jsonCfg.Server.CORSAllowedOrigins,
		},
		Storage: Storage{
			MoviesFile: jsonCfg.Storage.MoviesFile,
			DB: DB{
				DSN:     jsonCfg.Storage.DB.DSN,
				Migrate: jsonCfg.Storage.DB.Migrate,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
