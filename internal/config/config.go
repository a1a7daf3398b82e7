// Package config manages environment variables.
//
// It reads variables from the process environment (and an optional `.env`
// file), loads them into structured Go types, and validates them so they
// can be reused across the application runtime.
//
// Every value has a default, so the service starts with no environment at
// all: it listens on :8080 on all interfaces and serves ./www under /www.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process env before we read it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every environment variable must carry to be read.
const EnvPrefix = "WIZARDS_"

// ServiceName identifies this service in logs and APM dashboards.
const ServiceName = "wizards-api"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags map env keys to fields; `validate:"..."` tags are
// enforced by go-playground/validator after loading.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Static   StaticConfig   `koanf:"static" validate:"required"`
	Store    StoreConfig    `koanf:"store"`
	Logging  LoggingConfig  `koanf:"logging" validate:"required"`
	NewRelic NewRelicConfig `koanf:"newrelic"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// StaticConfig describes the static-file mount. Requests under Prefix are
// served from Dir without passing the authorization gate.
type StaticConfig struct {
	Prefix string `koanf:"prefix" validate:"required,startswith=/"`
	Dir    string `koanf:"dir" validate:"required"`
}

// StoreConfig controls the in-memory wizard store.
//
// PersistOnCreate decides whether the create route inserts the parsed
// wizard. It is off by default: the route only echoes the record back.
type StoreConfig struct {
	PersistOnCreate bool `koanf:"persist_on_create"`
}

// DefaultConfig returns a fully populated config. LoadConfig overlays the
// environment on top of it.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Static: StaticConfig{
			Prefix: "/www",
			Dir:    "./www",
		},
		Logging:  DefaultLoggingConfig(),
		NewRelic: DefaultNewRelicConfig(),
	}
}

// envKey turns WIZARDS_SERVER_READ_TIMEOUT into server.read_timeout.
// Only the first underscore after the prefix separates the section, so
// multi-word field names keep their underscores.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it, and returns the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	// Unmarshal only touches keys that were present, so defaults survive.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// Validate runs struct-tag validation followed by the custom logging rules.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("invalid logging config: %w", err)
	}

	return nil
}

// IsProduction reports whether the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Primary.Env == "production"
}
