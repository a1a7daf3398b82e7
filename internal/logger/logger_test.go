package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Narven/wizards-api/internal/config"
)

func TestNewLoggerServiceWithoutLicenseKey(t *testing.T) {
	svc, err := NewLoggerService(config.DefaultConfig())
	require.NoError(t, err)

	assert.Nil(t, svc.GetApplication())
	assert.NotPanics(t, svc.Shutdown)
}

func TestNilLoggerService(t *testing.T) {
	var svc *LoggerService

	assert.Nil(t, svc.GetApplication())
	assert.NotPanics(t, svc.Shutdown)
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, zerolog.WarnLevel)

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["message"])
	assert.Contains(t, line, "time")
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	var buf bytes.Buffer
	log := WithTraceContext(NewLogger(&buf, zerolog.DebugLevel), nil)

	log.Info().Msg("hello")
	assert.NotContains(t, buf.String(), "trace.id")
}
