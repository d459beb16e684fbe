package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 64, cfg.Loader.MaxDepth)
	assert.False(t, cfg.Loader.CaseInsensitiveNames)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PAGELOADER_LOG_LEVEL", "debug")
	t.Setenv("PAGELOADER_LOADER_MAX_DEPTH", "8")
	t.Setenv("PAGELOADER_LOADER_CASE_INSENSITIVE_NAMES", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Loader.MaxDepth)
	assert.True(t, cfg.Loader.CaseInsensitiveNames)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pageloader.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  format: json
loader:
  max_depth: 16
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 16, cfg.Loader.MaxDepth)

	t.Setenv("PAGELOADER_LOADER_MAX_DEPTH", "4")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Loader.MaxDepth, "environment overrides the file")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("PAGELOADER_LOG_LEVEL", "loud")
	t.Setenv("PAGELOADER_LOADER_MAX_DEPTH", "0")

	_, err = Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "loader.max_depth must be positive")
}

func TestLogConfig_NewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "v", rec["k"])

	buf.Reset()

	logger, err = LogConfig{Level: "DEBUG", Format: "text"}.NewLogger(&buf)
	require.NoError(t, err)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	_, err = LogConfig{Level: "info", Format: "xml"}.NewLogger(&buf)
	assert.Error(t, err)
}
