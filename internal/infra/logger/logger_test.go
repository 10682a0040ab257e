package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_status_bot/internal/infra/config"
)

func TestNewLevels(t *testing.T) {
	log, closer, err := New(&config.AppConfig{LogLevel: "warn", Environment: "development"})
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	log, closer, err = New(&config.AppConfig{LogLevel: "chatty", Environment: "development"})
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")

	log, closer, err := New(&config.AppConfig{LogLevel: "info", Environment: "production", LogFile: path})
	require.NoError(t, err)
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	Component(log, "scheduler").Info("cycle finished")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "cycle finished", entry["msg"])
	assert.Equal(t, "scheduler", entry["component"])
}
