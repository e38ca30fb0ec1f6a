package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sartorproj/goenergy/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{"config dir", config.ConfigDir, filepath.Join(tempHome, ".config", "goenergy")},
		{"cache dir", config.CacheDir, filepath.Join(tempHome, ".cache", "goenergy")},
		{"log dir", config.LogDir, filepath.Join(tempHome, ".local", "share", "goenergy", "logs")},
		{"config file", config.ConfigFilePath, filepath.Join(tempHome, ".config", "goenergy", "config.yaml")},
		{"data file", config.DataFilePath, filepath.Join(tempHome, ".cache", "goenergy", "owid-energy-data.csv")},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, v.fn(tempHome), v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, config.DefaultURL, cfg.Download.URL)
	assert.Empty(t, cfg.Download.Path)
	assert.Equal(t, 5*time.Minute, cfg.Download.Timeout)

	assert.Equal(t, config.WindowConfig{From: 1970, To: 2018}, cfg.Window)

	assert.Equal(t, 10, cfg.Forecast.Horizon)
	assert.Equal(t, 15, cfg.Forecast.MaxP)
	assert.Equal(t, 15, cfg.Forecast.MaxQ)

	assert.Equal(t, 16.0, cfg.Chart.Width)
	assert.Equal(t, 8.0, cfg.Chart.Height)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)
}

func TestDataPath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/user")})
	assert.Equal(t,
		filepath.Join("/home/user", ".cache", "goenergy", "owid-energy-data.csv"),
		cfg.DataPath())

	cfg.Update([]config.Option{config.OptDownloadPath("/tmp/energy.csv")})
	assert.Equal(t, "/tmp/energy.csv", cfg.DataPath())
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   config.Option
		check func(*testing.T, *config.Config)
	}{
		{
			name: "valid url",
			opt:  config.OptDownloadURL(" https://example.org/data.csv "),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, "https://example.org/data.csv", c.Download.URL)
			},
		},
		{
			name: "invalid url ignored",
			opt:  config.OptDownloadURL("not a url"),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.DefaultURL, c.Download.URL)
			},
		},
		{
			name: "zero jobs means all CPUs",
			opt: func(c *config.Config) {
				config.OptForecastJobs(4)(c)
				config.OptForecastJobs(0)(c)
			},
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, 0, c.Forecast.Jobs)
			},
		},
		{
			name: "negative jobs ignored",
			opt:  config.OptForecastJobs(-2),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.New().Forecast.Jobs, c.Forecast.Jobs)
			},
		},
		{
			name: "window",
			opt:  config.OptWindow(1980, 2000),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.WindowConfig{From: 1980, To: 2000}, c.Window)
			},
		},
		{
			name: "reversed window ignored",
			opt:  config.OptWindow(2000, 1980),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, 1970, c.Window.From)
			},
		},
		{
			name: "horizon",
			opt:  config.OptForecastHorizon(5),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, 5, c.Forecast.Horizon)
			},
		},
		{
			name: "zero horizon ignored",
			opt:  config.OptForecastHorizon(0),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, 10, c.Forecast.Horizon)
			},
		},
		{
			name: "max p zero allowed",
			opt:  config.OptForecastMaxP(0),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, 0, c.Forecast.MaxP)
			},
		},
		{
			name: "negative max q ignored",
			opt:  config.OptForecastMaxQ(-1),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, 15, c.Forecast.MaxQ)
			},
		},
		{
			name: "timeout",
			opt:  config.OptDownloadTimeout(time.Minute),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, time.Minute, c.Download.Timeout)
			},
		},
		{
			name: "chart size",
			opt:  config.OptChartSize(10, 5),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.ChartConfig{Width: 10, Height: 5}, c.Chart)
			},
		},
		{
			name: "log level normalized",
			opt:  config.OptLogLevel(" DEBUG "),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, "debug", c.Log.Level)
			},
		},
		{
			name: "unknown log format ignored",
			opt:  config.OptLogFormat("xml"),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, "json", c.Log.Format)
			},
		},
		{
			name: "log destination",
			opt:  config.OptLogDestination("stderr"),
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, "stderr", c.Log.Destination)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			tt.check(t, cfg)
		})
	}
}

func TestToOptionsRoundTrip(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptDownloadPath("/data/energy.csv"),
		config.OptWindow(1990, 2015),
		config.OptForecastHorizon(7),
		config.OptForecastJobs(3),
		config.OptLogFormat("text"),
		config.OptHomeDir("/home/x"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, src.Download, dst.Download)
	assert.Equal(t, src.Window, dst.Window)
	assert.Equal(t, src.Forecast, dst.Forecast)
	assert.Equal(t, src.Chart, dst.Chart)
	assert.Equal(t, src.Log, dst.Log)
	assert.Empty(t, dst.HomeDir, "HomeDir is runtime-only")
}
