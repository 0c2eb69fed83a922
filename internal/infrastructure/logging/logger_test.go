package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vdrive.log")
	cfg := DefaultConfig()
	cfg.File = path

	logger, err := New(cfg)
	require.NoError(t, err)

	logger.Debug("hidden at info")
	logger.Info("Session opened", zap.String("drive", "C:"))
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Session opened", entry["message"])
	assert.Equal(t, "C:", entry["drive"])
}

func TestNewDevelopmentUsesConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")
	cfg := DevelopmentConfig()
	cfg.File = path

	logger, err := New(cfg)
	require.NoError(t, err)
	logger.Debug("visible at debug")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible at debug")
	assert.False(t, json.Valid(data))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNewDefault(t *testing.T) {
	logger := NewDefault()
	require.NotNil(t, logger)
	assert.NotNil(t, logger.Logger)
}

func TestNopClose(t *testing.T) {
	assert.NoError(t, NewNop().Close())
}
