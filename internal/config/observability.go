package config

import (
	"fmt"
)

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	// Empty means "pick by environment", see GetLogLevel.
	Level string `koanf:"level"`

	// Format selects the output format: "json" or "console".
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
//
// An empty LicenseKey disables New Relic entirely; every tracing middleware
// then degrades into a pass-through.
type NewRelicConfig struct {
	LicenseKey                string `koanf:"license_key"`
	AppLogForwardingEnabled   bool   `koanf:"app_log_forwarding_enabled"`
	DistributedTracingEnabled bool   `koanf:"distributed_tracing_enabled"`
	DebugLogging              bool   `koanf:"debug_logging"`
}

// DefaultLoggingConfig leaves the level to the environment and writes JSON.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  "",
		Format: "json",
	}
}

// DefaultNewRelicConfig returns a disabled New Relic setup with forwarding and
// distributed tracing switched on for when a key is supplied.
func DefaultNewRelicConfig() NewRelicConfig {
	return NewRelicConfig{
		LicenseKey:                "",
		AppLogForwardingEnabled:   true,
		DistributedTracingEnabled: true,
		DebugLogging:              false, // mixes agent output into app logs
	}
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate applies rules that go beyond struct tags.
func (l LoggingConfig) Validate() error {
	if l.Level != "" && !validLevels[l.Level] {
		return fmt.Errorf("invalid logging level: %s (must be one of: debug, info, warn, error)", l.Level)
	}
	return nil
}

// GetLogLevel returns the effective log level to use at runtime.
//
// An explicit level always wins. Otherwise production defaults to "info"
// and everything else to "debug".
func (c *Config) GetLogLevel() string {
	if c.Logging.Level != "" {
		return c.Logging.Level
	}
	if c.IsProduction() {
		return "info"
	}
	return "debug"
}

// NewRelicEnabled reports whether a New Relic application should be started.
func (c *Config) NewRelicEnabled() bool {
	return c.NewRelic.LicenseKey != ""
}
