// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Layered loading lives in Load: defaults -> optional YAML file -> env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RefLat and RefLon set the reference point distance is measured
	// from when a request carries no location. Zero values fall through
	// to the Toronto city-center default.
	RefLat float64 `koanf:"ref_lat"`
	RefLon float64 `koanf:"ref_lon"`

	// MaxResults caps the number of events a single query returns over
	// HTTP. The engine itself never truncates.
	MaxResults int `koanf:"max_results"`

	// SeedDataset loads the embedded Toronto demo dataset on startup.
	SeedDataset bool `koanf:"seed_dataset"`

	// DatasetPath points at an external events JSON file that replaces
	// the embedded seed when set.
	DatasetPath string `koanf:"dataset_path"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		Addr:        ":9080",
		MaxResults:  200,
		SeedDataset: true,
	}
}
