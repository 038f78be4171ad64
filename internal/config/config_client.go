package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the journal-server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the configuration of the journal CLI, assembled from
// [StructuredConfig].
type ClientConfig struct {
	// LogLevel is the zerolog level of the console logger.
	LogLevel string
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// Presets is used by commands that resolve presets locally.
	Presets Presets
}

// GetClientConfig builds and validates the CLI config. Layers are merged
// as defaults, environment, overrides (typically the CLI's own flags) and
// finally the JSON file named by any of them.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withConfig(overrides).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		LogLevel: cfg.App.LogLevel,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Presets: cfg.Presets,
	}

	return clientCfg, clientCfg.validate()
}
