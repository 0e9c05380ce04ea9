package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"tributo/internal/config"
	"tributo/internal/logger"
)

func TestSetup_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	err := logger.Setup(config.LogConfig{Level: "WARN", Format: "json"})

	assert.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestSetup_InvalidLevel(t *testing.T) {
	err := logger.Setup(config.LogConfig{Level: "loud", Format: "console"})
	assert.Error(t, err)
}

func TestSetupWriter_JSON(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	err := logger.SetupWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)
	assert.NoError(t, err)

	l := logger.WithComponent("settle")
	l.Info().Str("period", "2024-05").Msg("done")
	log.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, `"component":"settle"`)
	assert.Contains(t, out, `"period":"2024-05"`)
	assert.NotContains(t, out, "hidden")
}
