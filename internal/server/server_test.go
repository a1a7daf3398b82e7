package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Narven/wizards-api/internal/config"
)

func TestStartWithoutSetup(t *testing.T) {
	s, err := New(config.DefaultConfig(), nil, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, s.Start(), ErrNotInitialized)
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(nil, nil, nil)
	assert.Error(t, err)
}

func TestSetupHTTPServerBindsAllInterfaces(t *testing.T) {
	cfg := config.DefaultConfig()
	s, err := New(cfg, nil, nil)
	require.NoError(t, err)

	s.SetupHTTPServer(http.NotFoundHandler())

	assert.Equal(t, ":8080", s.Addr())
	assert.NoError(t, s.Shutdown(context.Background()))
}
