package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/www", cfg.Static.Prefix)
	assert.Equal(t, "./www", cfg.Static.Dir)
	assert.False(t, cfg.Store.PersistOnCreate)
	assert.False(t, cfg.NewRelicEnabled())
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("WIZARDS_SERVER_PORT", "9090")
	t.Setenv("WIZARDS_SERVER_READ_TIMEOUT", "5")
	t.Setenv("WIZARDS_STATIC_DIR", "/srv/www")
	t.Setenv("WIZARDS_STORE_PERSIST_ON_CREATE", "true")
	t.Setenv("WIZARDS_PRIMARY_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout, "untouched keys keep their default")
	assert.Equal(t, "/srv/www", cfg.Static.Dir)
	assert.True(t, cfg.Store.PersistOnCreate)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.GetLogLevel())
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	t.Setenv("WIZARDS_LOGGING_LEVEL", "loud")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.port", envKey("WIZARDS_SERVER_PORT"))
	assert.Equal(t, "newrelic.license_key", envKey("WIZARDS_NEWRELIC_LICENSE_KEY"))
	assert.Equal(t, "store.persist_on_create", envKey("WIZARDS_STORE_PERSIST_ON_CREATE"))
}
