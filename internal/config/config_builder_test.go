package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without sources fails
// validation because the API token is required.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_AppliesDefaults verifies the defaults for fields no source set.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{APIToken: "secret"}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultEnvironment, cfg.App.Environment)
	assert.False(t, cfg.App.IsProduction())
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, ":8000", cfg.Server.Address())
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesWin verifies that non-zero fields of later configs
// override earlier ones and zero fields do not.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{APIToken: "from-env", Version: "1.0.0"}, Server: Server{Port: 8080}},
		&StructuredConfig{App: App{APIToken: "from-flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.App.APIToken)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, 8080, cfg.Server.Port)
}

// TestBuild_ValidationErrors verifies the invariants checked after merging.
func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "missing token",
			cfg:     StructuredConfig{},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown environment",
			cfg:     StructuredConfig{App: App{APIToken: "t", Environment: "staging"}},
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "port too large",
			cfg:     StructuredConfig{App: App{APIToken: "t"}, Server: Server{Port: 70000}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative port",
			cfg:     StructuredConfig{App: App{APIToken: "t"}, Server: Server{Port: -1}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative timeout",
			cfg:     StructuredConfig{App: App{APIToken: "t"}, Server: Server{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, &tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_MissingFileIsIgnored verifies that an absent .env file is
// not an error.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withDotEnv(filepath.Join(t.TempDir(), ".env")))
	assert.NoError(t, b.err)
}

// TestWithDotEnv_ExportsVariables verifies that variables from the file are
// visible to withEnv and that real variables are not overridden.
func TestWithDotEnv_ExportsVariables(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PORT", "9001")
	t.Cleanup(func() { _ = os.Unsetenv("API_TOKEN") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_TOKEN=from-dotenv\nPORT=1234\n"), 0o600))

	b := newConfigBuilder().withDotEnv(path).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].App.APIToken)
	assert.Equal(t, 9001, b.configs[0].Server.Port)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	clearEnvVars(t)
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"API_TOKEN": "env-token",
		"APP_ENV":   "test",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-token", b.configs[0].App.APIToken)
	assert.Equal(t, "test", b.configs[0].App.Environment)
}

// TestWithEnv_RecordsParseError verifies that a malformed variable is kept in
// b.err and no config is appended.
func TestWithEnv_RecordsParseError(t *testing.T) {
	setEnvVars(t, map[string]string{"PORT": "eighty"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_AppendsConfig verifies that parsed flags are appended.
func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-token", "flag-token"}))
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-token", b.configs[0].App.APIToken)
}

// TestWithFlags_RecordsParseError verifies that bad flags end up in b.err.
func TestWithFlags_RecordsParseError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "nowhere"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed, appended, and wins over earlier sources.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.APIToken = "json-token"
	payload.Server.Port = 8181
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:          App{APIToken: "env-token"},
		JSONFilePath: path,
	})
	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json-token", cfg.App.APIToken)
	assert.Equal(t, 8181, cfg.Server.Port)
}

// TestWithJSON_RecordsError_WhenFileMissing verifies error accumulation.
func TestWithJSON_RecordsError_WhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: filepath.Join(t.TempDir(), "nope.json"),
	})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_EnvAndFlags verifies the full pipeline.
func TestGetStructuredConfig_EnvAndFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	setEnvVars(t, map[string]string{
		"API_TOKEN": "env-token",
		"PORT":      "8080",
		"APP_ENV":   "production",
	})

	cfg, err := GetStructuredConfig([]string{"-p", "9090"})
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.App.APIToken)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.App.IsProduction())
}
