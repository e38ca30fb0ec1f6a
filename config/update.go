package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
func (c *Config) ToOptions() []Option {
	var res []Option

	if s := c.Download.URL; s != "" {
		res = append(res, OptDownloadURL(s))
	}
	if s := c.Download.Path; s != "" {
		res = append(res, OptDownloadPath(s))
	}
	if d := c.Download.Timeout; d > 0 {
		res = append(res, OptDownloadTimeout(d))
	}

	if w := c.Window; w.From > 0 || w.To > 0 {
		res = append(res, OptWindow(w.From, w.To))
	}

	if i := c.Forecast.Horizon; i > 0 {
		res = append(res, OptForecastHorizon(i))
	}
	if i := c.Forecast.MaxP; i > 0 {
		res = append(res, OptForecastMaxP(i))
	}
	if i := c.Forecast.MaxQ; i > 0 {
		res = append(res, OptForecastMaxQ(i))
	}
	if i := c.Forecast.Jobs; i > 0 {
		res = append(res, OptForecastJobs(i))
	}

	if ch := c.Chart; ch.Width > 0 || ch.Height > 0 {
		res = append(res, OptChartSize(ch.Width, ch.Height))
	}

	if s := c.Log.Format; s != "" {
		res = append(res, OptLogFormat(s))
	}
	if s := c.Log.Level; s != "" {
		res = append(res, OptLogLevel(s))
	}
	if s := c.Log.Destination; s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidNonNegative(name string, i int) bool {
	res := i >= 0
	if !res {
		gn.Warn("<em>%s</em> cannot be negative, ignoring %d", name, i)
	}
	return res
}

func isValidFloat(name string, f float64) bool {
	res := f > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %v", name, f)
	}
	return res
}

func isValidDuration(name string, d time.Duration) bool {
	res := d > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive duration, ignoring %s", name, d)
	}
	return res
}

func isValidRange(name string, from, to int) bool {
	res := from <= to
	if !res {
		gn.Warn("<em>%s</em> start %d is after end %d, ignoring", name, from, to)
	}
	return res
}

func isValidURL(name, s string) bool {
	u, err := url.Parse(s)
	res := err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	if !res {
		gn.Warn("<em>%s</em> is not a valid http(s) URL, ignoring '%s'", name, s)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stdout": s, "stderr": s},
	}
	if _, ok := data[name][val]; ok {
		return true
	}

	vals := slices.Sorted(maps.Keys(data[name]))
	lines := make([]string, len(vals))
	for i, v := range vals {
		lines[i] = fmt.Sprintf("  * %s", v)
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
