package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "goenergy"

	// DataFileName is the name of the cached dataset.
	DataFileName = "owid-energy-data.csv"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/goenergy by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/goenergy by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/goenergy/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DataFilePath returns the default location of the downloaded dataset.
func DataFilePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), DataFileName)
}
