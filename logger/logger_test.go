package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/config"
	"github.com/sartorproj/goenergy/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in  string
		out slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, ParseLevel(v.in), v.in)
	}
}

func TestNewFormats(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, config.LogConfig{Format: "json", Level: "info"}).Info("hello", "n", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	New(&buf, config.LogConfig{Format: "text", Level: "info"}).Info("hello", "n", 1)
	assert.Contains(t, buf.String(), "msg=hello")

	buf.Reset()
	New(&buf, config.LogConfig{Format: "text", Level: "warn"}).Info("hidden")
	assert.Empty(t, buf.String())
}

func TestInitFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	dir := t.TempDir()
	err := Init(dir, config.LogConfig{Format: "json", Level: "debug", Destination: "file"})
	require.NoError(t, err)

	slog.Debug("written to file")
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestInitFileError(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	missing := filepath.Join(t.TempDir(), "no", "such", "dir")
	err := Init(missing, config.LogConfig{Destination: "file"})
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
	assert.True(t, errors.Is(gnErr.Err, os.ErrNotExist))
}
