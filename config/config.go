// Package config provides configuration management for goenergy.
//
// This package has no I/O dependencies. Validation functions may write
// user-facing warnings via gn.Warn().
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults.
//
// All persistent fields can be set with GOENERGY_ environment variables,
// using underscores for nesting:
//
//	GOENERGY_DOWNLOAD_URL=https://example.org/owid-energy-data.csv
//	GOENERGY_WINDOW_FROM=1970
//	GOENERGY_FORECAST_HORIZON=10
//	GOENERGY_LOG_LEVEL=debug
package config

import (
	"time"
)

// DefaultURL is the location of the Our World in Data energy dataset.
const DefaultURL = "https://raw.githubusercontent.com/owid/energy-data/master/owid-energy-data.csv"

// Config represents the complete goenergy configuration.
type Config struct {
	// Download describes where the dataset comes from and where it is kept.
	Download DownloadConfig `mapstructure:"download" yaml:"download"`

	// Window is the inclusive year range kept by cleaning.
	Window WindowConfig `mapstructure:"window" yaml:"window"`

	// Forecast contains settings of the order search and projection.
	Forecast ForecastConfig `mapstructure:"forecast" yaml:"forecast"`

	// Chart sets the size of rendered figures.
	Chart ChartConfig `mapstructure:"chart" yaml:"chart"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, cache and logs directories reside.
	// It is set by the CLI at startup.
	HomeDir string
}

// DownloadConfig contains dataset location settings.
type DownloadConfig struct {
	// URL of the CSV dataset.
	URL string `mapstructure:"url" yaml:"url"`

	// Path of the local copy. Empty means the cache directory.
	Path string `mapstructure:"path" yaml:"path"`

	// Timeout of the whole download.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// WindowConfig is an inclusive range of years.
type WindowConfig struct {
	From int `mapstructure:"from" yaml:"from"`
	To   int `mapstructure:"to"   yaml:"to"`
}

// ForecastConfig contains settings of automatic ARIMA forecasting.
type ForecastConfig struct {
	// Horizon is the number of projected years.
	Horizon int `mapstructure:"horizon" yaml:"horizon"`

	// MaxP and MaxQ bound the AR and MA orders of the search.
	MaxP int `mapstructure:"max_p" yaml:"max_p"`
	MaxQ int `mapstructure:"max_q" yaml:"max_q"`

	// Jobs bounds concurrent fits when the grid search is used.
	Jobs int `mapstructure:"jobs" yaml:"jobs"`
}

// ChartConfig sets figure size in inches.
type ChartConfig struct {
	Width  float64 `mapstructure:"width"  yaml:"width"`
	Height float64 `mapstructure:"height" yaml:"height"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), stderr or stdout.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with default values.
// The returned config is always valid.
func New() *Config {
	return &Config{
		Download: DownloadConfig{
			URL:     DefaultURL,
			Timeout: 5 * time.Minute,
		},
		Window: WindowConfig{
			From: 1970,
			To:   2018,
		},
		Forecast: ForecastConfig{
			Horizon: 10,
			MaxP:    15,
			MaxQ:    15,
		},
		Chart: ChartConfig{
			Width:  16,
			Height: 8,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
	}
}

// DataPath returns the local dataset path, falling back to the cache
// directory when Download.Path is empty.
func (c *Config) DataPath() string {
	if c.Download.Path != "" {
		return c.Download.Path
	}
	return DataFilePath(c.HomeDir)
}
