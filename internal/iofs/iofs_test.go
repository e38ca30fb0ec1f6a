package iofs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/config"
	"github.com/sartorproj/goenergy/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for range 2 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	for _, dir := range []string{
		config.ConfigDir(tmpDir),
		config.CacheDir(tmpDir),
		config.LogDir(tmpDir),
	} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), dir)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
	}
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))

	path := config.ConfigFilePath(tmpDir)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(data))

	// existing files are left alone
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug")
}

func TestEmbeddedConfigMatchesDefaults(t *testing.T) {
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &cfg))

	def := config.New()
	assert.Equal(t, def.Download.URL, cfg.Download.URL)
	assert.Equal(t, def.Window, cfg.Window)
	assert.Equal(t, def.Forecast.Horizon, cfg.Forecast.Horizon)
	assert.Equal(t, def.Forecast.MaxP, cfg.Forecast.MaxP)
	assert.Equal(t, def.Chart, cfg.Chart)
	assert.Equal(t, def.Log, cfg.Log)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	assert.False(t, FileExists(path))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(dir))
}

func TestCreateDirError(t *testing.T) {
	originalErr := errors.New("permission denied")
	err := CreateDirError("/test/dir", originalErr)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.CreateDirError, gnErr.Code)
	require.Len(t, gnErr.Vars, 1)
	assert.Equal(t, "/test/dir", gnErr.Vars[0])
	assert.ErrorIs(t, gnErr.Err, originalErr)
	assert.Contains(t, gnErr.Err.Error(), "cannot create")
}

func TestReadFileError(t *testing.T) {
	originalErr := errors.New("missing")
	err := ReadFileError("/x/config.yaml", originalErr)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReadFileError, gnErr.Code)
	assert.ErrorIs(t, gnErr.Err, originalErr)
}
