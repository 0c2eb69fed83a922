package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPersistsBetweenSessions(t *testing.T) {
	dir := t.TempDir()
	args := []string{"-data", dir, "-log-file", filepath.Join(dir, "logs", "vdrive.log")}

	var out bytes.Buffer
	err := run(context.Background(), args, strings.NewReader("mkdir Docs\nexit\n"), &out, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "not found. A new file will be created for drive C.")
	assert.Contains(t, out.String(), "Folder 'Docs' created successfully in C:")

	_, err = os.Stat(filepath.Join(dir, "drives", "C.json"))
	require.NoError(t, err)

	out.Reset()
	err = run(context.Background(), args, strings.NewReader("dir\n"), &out, &bytes.Buffer{})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "not found")
	assert.Contains(t, out.String(), "Docs")
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	cfg, err := loadConfig([]string{"-drive", "D:", "-format", "yaml", "-backup-compression", "gzip", "-dev"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "D:", cfg.Drive.Label)
	assert.Equal(t, "yaml", cfg.Storage.Format)
	assert.Equal(t, "gzip", cfg.Storage.BackupCompression)
	assert.True(t, cfg.Logging.Development)
}

func TestLoadConfigRejectsBadFlags(t *testing.T) {
	_, err := loadConfig([]string{"-drive", "nocolon"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = loadConfig([]string{"-unknown"}, &bytes.Buffer{})
	assert.Error(t, err)
}
