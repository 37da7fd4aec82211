// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Default upload boundary: 5 MB.
const defaultMaxUploadBytes = 5 << 20

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxUploadBytes bounds roster uploads before parsing is attempted.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// MaxRosterRows caps the number of data rows read from one table.
	MaxRosterRows int `koanf:"max_roster_rows"`

	// MaxGroupSize caps the number of selection entries per trade side.
	MaxGroupSize int `koanf:"max_group_size"`

	// AggregateCacheSize bounds the group-aggregate memo cache.
	AggregateCacheSize int `koanf:"aggregate_cache_size"`

	// MatchLimit caps GET /players?q= results.
	MatchLimit int `koanf:"match_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		MaxUploadBytes:     defaultMaxUploadBytes,
		MaxRosterRows:      10_000,
		MaxGroupSize:       25,
		AggregateCacheSize: 1024,
		MatchLimit:         50,
	}
}
