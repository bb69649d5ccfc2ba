package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JimenezCarmona8063/MYXITECH/internal/config"
)

func TestSetupProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Environment: "production", LogLevel: slog.LevelInfo}

	log := Setup(cfg, &buf)
	log.Info("hello", "key", "value")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestSetupDevelopmentUsesText(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Environment: "development", LogLevel: slog.LevelInfo}

	log := Setup(cfg, &buf)
	log.Info("hello")

	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestSetupRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Environment: "development", LogLevel: slog.LevelWarn}

	log := Setup(cfg, &buf)
	log.Info("quiet")
	log.Warn("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
}

func TestWithSession(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Environment: "development", LogLevel: slog.LevelInfo}

	log := WithSession(Setup(cfg, &buf), "abc-123")
	log.Info("hello")

	assert.Contains(t, buf.String(), "session_id=abc-123")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Environment: "development", LogLevel: slog.LevelInfo}

	log := WithError(Setup(cfg, &buf), errors.New("boom"))
	log.Error("failed")

	assert.Contains(t, buf.String(), "error=boom")
}
