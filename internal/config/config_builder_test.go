package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayerWins verifies that a later non-zero field replaces an
// earlier one while zero fields leave it alone.
func TestBuild_LaterLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:    App{Version: "1.0.0", LogLevel: "info"},
			Server: Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		},
		&StructuredConfig{
			App:    App{LogLevel: "debug"},
			Server: Server{HTTPAddress: ":9000"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

// ── withDefaults / withEnv / withFlags ───────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Empty(t, cfg.Presets.Path)
	assert.NoError(t, cfg.validate())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":                "env-version",
		"TRADE_JOURNAL_PRESETS_PATH": "/env/presets.json",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "/env/presets.json", b.configs[0].Presets.Path)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": "x"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_OverridesEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_ADDRESS":          "localhost:8080",
		"STORAGE_DB_DATABASE_URI": "env.db",
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags("journal-server", []string{"-a", "localhost:9090"}).
		build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "env.db", cfg.Storage.DB.DSN)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags("journal-server", []string{"-a", "bad"})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidFlags)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeRawJSON(t, `{"presets": {"path": "/json/presets.json"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/json/presets.json", b.configs[1].Presets.Path)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeRawJSON(t, `{"app": {"version": "first"}}`)
	second := writeRawJSON(t, `{"app": {"version": "second"}}`)

	cfg, err := newConfigBuilder().
		withConfig(&StructuredConfig{JSONFilePath: first}).
		withConfig(&StructuredConfig{JSONFilePath: second}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder().withConfig(&StructuredConfig{JSONFilePath: "/definitely/missing.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = " " }, wantErr: ErrInvalidServerConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = -time.Second }, wantErr: ErrInvalidServerConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	setEnvVars(t, nil)

	cfg, err := GetClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultAdapterTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestGetClientConfig_OverridesBeatEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS":            "http://env:8080",
		"TRADE_JOURNAL_PRESETS_PATH": "/env/presets.json",
	})

	cfg, err := GetClientConfig(&StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://flag:8080"},
	})

	require.NoError(t, err)
	assert.Equal(t, "http://flag:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/env/presets.json", cfg.Presets.Path)
}

func TestGetClientConfig_JSONFromOverrides(t *testing.T) {
	setEnvVars(t, nil)
	path := writeRawJSON(t, `{"adapter": {"http_address": "http://json:1", "request_timeout": "3s"}}`)

	cfg, err := GetClientConfig(&StructuredConfig{JSONFilePath: path})

	require.NoError(t, err)
	assert.Equal(t, "http://json:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := &ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://x", RequestTimeout: 0}}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg.Adapter.RequestTimeout = time.Second
	assert.NoError(t, cfg.validate())
}
