package app

import (
	"os"
)

// Config captures runtime parameters for a CLI invocation.
type Config struct {
	TempDirBase string
	Seed        int64
	Debug       bool
	Version     string
}

// ConfigOption mutates a Config during construction.
type ConfigOption func(*Config)

// NewConfig creates a Config with defaults and applies provided options.
func NewConfig(opts ...ConfigOption) Config {
	cfg := Config{
		TempDirBase: os.TempDir(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTempDirBase overrides the directory temporary files are created in.
func WithTempDirBase(path string) ConfigOption {
	return func(cfg *Config) {
		if path != "" {
			cfg.TempDirBase = path
		}
	}
}

// WithSeed fixes the random source. Zero keeps a time-based seed.
func WithSeed(seed int64) ConfigOption {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// WithDebug toggles verbose logging.
func WithDebug(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Debug = enabled
	}
}

// WithVersion sets the application version used in log output.
func WithVersion(version string) ConfigOption {
	return func(cfg *Config) {
		cfg.Version = version
	}
}
