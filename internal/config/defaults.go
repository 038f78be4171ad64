package config

import "time"

const (
	DefaultServerAddress  = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDSN            = "trade-journal.db"
	DefaultLogLevel       = "info"

	DefaultAdapterAddress = "http://localhost:8080"
	DefaultAdapterTimeout = 10 * time.Second
)

// defaultConfig returns the lowest-priority layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
