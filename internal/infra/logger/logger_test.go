package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server_event_timer/internal/infra/config"
	"server_event_timer/internal/infra/logger"
)

// The logger is global, so these tests do not run in parallel.

func TestInitProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithOutput(&config.AppConfig{LogLevel: "warn", Environment: "production"}, &buf)

	require.Equal(t, logrus.WarnLevel, logger.Get().GetLevel())
	logger.Component("test").Info("hidden")
	logger.Component("test").Warn("shown")

	line := strings.TrimSpace(buf.String())
	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "test", record["component"])
}

func TestInitInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithOutput(&config.AppConfig{LogLevel: "loud", Environment: "development", NoColor: true}, &buf)

	require.Equal(t, logrus.InfoLevel, logger.Get().GetLevel())
	assert.Contains(t, buf.String(), "Invalid log level 'loud'")
}
