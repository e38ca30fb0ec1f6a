package config

import (
	"strings"
	"time"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptHomeDir sets the directory under which config, cache and logs live.
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Dir", s) {
			c.HomeDir = s
		}
	}
}

// OptDownloadURL sets the dataset URL.
func OptDownloadURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidURL("Download URL", s) {
			c.Download.URL = s
		}
	}
}

// OptDownloadPath sets the local dataset path.
func OptDownloadPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Download Path", s) {
			c.Download.Path = s
		}
	}
}

// OptDownloadTimeout sets the timeout of the whole download.
func OptDownloadTimeout(d time.Duration) Option {
	return func(c *Config) {
		if isValidDuration("Download Timeout", d) {
			c.Download.Timeout = d
		}
	}
}

// OptWindow sets the inclusive year range kept by cleaning.
func OptWindow(from, to int) Option {
	return func(c *Config) {
		if isValidInt("Window From", from) &&
			isValidInt("Window To", to) &&
			isValidRange("Window", from, to) {
			c.Window = WindowConfig{From: from, To: to}
		}
	}
}

// OptForecastHorizon sets the number of projected years.
func OptForecastHorizon(i int) Option {
	return func(c *Config) {
		if isValidInt("Forecast Horizon", i) {
			c.Forecast.Horizon = i
		}
	}
}

// OptForecastMaxP sets the largest AR order tried by the search.
func OptForecastMaxP(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("Forecast MaxP", i) {
			c.Forecast.MaxP = i
		}
	}
}

// OptForecastMaxQ sets the largest MA order tried by the search.
func OptForecastMaxQ(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("Forecast MaxQ", i) {
			c.Forecast.MaxQ = i
		}
	}
}

// OptForecastJobs sets the number of concurrent fits of the grid search.
func OptForecastJobs(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("Forecast Jobs", i) {
			c.Forecast.Jobs = i
		}
	}
}

// OptChartSize sets the figure size in inches.
func OptChartSize(width, height float64) Option {
	return func(c *Config) {
		if isValidFloat("Chart Width", width) &&
			isValidFloat("Chart Height", height) {
			c.Chart = ChartConfig{Width: width, Height: height}
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}
