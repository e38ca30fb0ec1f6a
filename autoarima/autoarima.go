// Package autoarima implements automatic ARIMA order selection.
package autoarima

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"

	"github.com/sartorproj/goenergy/arima"
	"github.com/sartorproj/goenergy/stats"
	"github.com/sartorproj/goenergy/timeseries"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNoModel is returned when no candidate order could be fitted.
	ErrNoModel = errors.New("no ARIMA model could be fitted")

	// ErrCriterion is returned for an unknown information criterion.
	ErrCriterion = errors.New("criterion must be one of aic, aicc, bic")
)

// Error actions.
const (
	ErrorActionIgnore = "ignore"
	ErrorActionWarn   = "warn"
	ErrorActionRaise  = "raise"
)

// Config holds configuration for auto ARIMA search.
type Config struct {
	StartP int // First AR order tried by the stepwise search (default: 1)
	StartQ int // First MA order tried by the stepwise search (default: 1)
	MaxP   int // Maximum AR order (default: 15)
	MaxD   int // Maximum differencing order (default: 2)
	MaxQ   int // Maximum MA order (default: 15)

	Criterion   string // "aic", "aicc" or "bic" (default: "aic")
	Stepwise    bool   // Use stepwise search instead of the full grid
	StationTest string // "kpss" or "adf" (default: "kpss")

	// Trace logs every candidate at debug level.
	Trace bool
	// ErrorAction decides what a failing candidate does: "ignore" skips it,
	// "warn" skips it and logs a warning, "raise" aborts the search.
	ErrorAction string
	// SuppressWarnings silences the "warn" error action.
	SuppressWarnings bool

	// Jobs bounds concurrent fits in grid search. Zero means GOMAXPROCS.
	Jobs int

	// Logger receives trace output. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the default auto ARIMA configuration.
func DefaultConfig() *Config {
	return &Config{
		StartP:           1,
		StartQ:           1,
		MaxP:             15,
		MaxD:             2,
		MaxQ:             15,
		Criterion:        "aic",
		Stepwise:         true,
		StationTest:      "kpss",
		Trace:            true,
		ErrorAction:      ErrorActionIgnore,
		SuppressWarnings: true,
	}
}

// Result represents the result of auto ARIMA model selection.
type Result struct {
	Model *arima.Model
	Order arima.Order

	AIC       float64
	AICc      float64
	BIC       float64
	LogLik    float64
	Criterion float64

	ModelsEvaluated int
	ModelsFailed    int
}

// AutoARIMA selects the best non-seasonal ARIMA order for series.
func AutoARIMA(series *timeseries.Series, config *Config) (*Result, error) {
	return AutoARIMAContext(context.Background(), series, config)
}

// AutoARIMAContext is AutoARIMA with cancellation of the grid search.
func AutoARIMAContext(
	ctx context.Context,
	series *timeseries.Series,
	config *Config,
) (*Result, error) {
	if config == nil {
		config = DefaultConfig()
	}
	switch config.Criterion {
	case "", "aic", "aicc", "bic":
	default:
		return nil, fmt.Errorf("%w: %q", ErrCriterion, config.Criterion)
	}

	s := &search{
		series: series,
		cfg:    config,
		log:    config.Logger,
	}
	if s.log == nil {
		s.log = slog.Default()
	}

	s.d = stats.NDiffs(series, config.MaxD, config.StationTest)
	if config.Trace {
		s.log.Debug("differencing order chosen",
			"series", series.Name, "d", s.d, "test", config.StationTest)
	}

	var err error
	if config.Stepwise {
		err = s.stepwise()
	} else {
		err = s.grid(ctx)
	}
	if err != nil {
		return nil, err
	}

	if s.best == nil {
		if s.lastErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoModel, s.lastErr)
		}
		return nil, ErrNoModel
	}

	m := s.best.model
	if config.Trace {
		s.log.Debug("best model",
			"series", series.Name, "order", m.Order.String(),
			"criterion", s.best.score, "evaluated", s.evaluated)
	}

	return &Result{
		Model:           m,
		Order:           m.Order,
		AIC:             m.AIC,
		AICc:            m.AICc,
		BIC:             m.BIC,
		LogLik:          m.LogLik,
		Criterion:       s.best.score,
		ModelsEvaluated: s.evaluated,
		ModelsFailed:    s.failed,
	}, nil
}

type candidate struct {
	model *arima.Model
	score float64
	err   error
}

type search struct {
	series *timeseries.Series
	cfg    *Config
	log    *slog.Logger
	d      int

	best      *candidate
	evaluated int
	failed    int
	lastErr   error
}

// feasible reports whether (p, q) is inside the bounds and short enough
// for the series.
func (s *search) feasible(p, q int) bool {
	if p < 0 || q < 0 || p > s.cfg.MaxP || q > s.cfg.MaxQ {
		return false
	}
	return s.series.Len() >= p+q+s.d+10
}

func (s *search) fit(p, q int) candidate {
	start := time.Now()
	m := arima.New(p, s.d, q)
	if err := m.Fit(s.series); err != nil {
		return candidate{err: fmt.Errorf("%s: %w", m.Order, err)}
	}
	c := candidate{model: m, score: s.score(m)}
	if s.cfg.Trace {
		s.log.Debug("candidate",
			"series", s.series.Name,
			"order", m.Order.String(),
			"aic", m.AIC,
			"bic", m.BIC,
			"time", time.Since(start),
		)
	}
	return c
}

func (s *search) score(m *arima.Model) float64 {
	switch s.cfg.Criterion {
	case "bic":
		return m.BIC
	case "aicc":
		return m.AICc
	default:
		return m.AIC
	}
}

// record folds a candidate into the running best. It returns an error
// only when the error action is "raise".
func (s *search) record(c candidate) error {
	if c.err != nil {
		s.failed++
		s.lastErr = c.err
		switch s.cfg.ErrorAction {
		case ErrorActionRaise:
			return c.err
		case ErrorActionWarn:
			if !s.cfg.SuppressWarnings {
				s.log.Warn("candidate failed", "series", s.series.Name, "error", c.err)
			}
		}
		return nil
	}

	s.evaluated++
	if math.IsNaN(c.score) {
		return nil
	}
	if s.best == nil || c.score < s.best.score {
		s.best = &c
	}
	return nil
}

// stepwise runs the Hyndman-Khandakar search: four starting orders, then
// neighbours of the incumbent until nothing improves.
func (s *search) stepwise() error {
	type pq struct{ p, q int }
	seen := make(map[pq]bool)

	try := func(p, q int) (bool, error) {
		k := pq{p, q}
		if seen[k] || !s.feasible(p, q) {
			return false, nil
		}
		seen[k] = true
		prev := s.best
		if err := s.record(s.fit(p, q)); err != nil {
			return false, err
		}
		return s.best != prev, nil
	}

	starts := []pq{
		{min(s.cfg.StartP, s.cfg.MaxP), min(s.cfg.StartQ, s.cfg.MaxQ)},
		{0, 0},
		{1, 0},
		{0, 1},
	}
	for _, o := range starts {
		if _, err := try(o.p, o.q); err != nil {
			return err
		}
	}

	for s.best != nil {
		o := s.best.model.Order
		neighbours := []pq{
			{o.P - 1, o.Q}, {o.P + 1, o.Q},
			{o.P, o.Q - 1}, {o.P, o.Q + 1},
			{o.P - 1, o.Q - 1}, {o.P + 1, o.Q + 1},
			{o.P - 1, o.Q + 1}, {o.P + 1, o.Q - 1},
		}
		improved := false
		for _, n := range neighbours {
			ok, err := try(n.p, n.q)
			if err != nil {
				return err
			}
			if ok {
				improved = true
				break
			}
		}
		if !improved {
			break
		}
	}
	return nil
}

// grid fits every feasible order concurrently. Results are folded in
// (p, q) order so the winner does not depend on scheduling.
func (s *search) grid(ctx context.Context) error {
	type pq struct{ p, q int }
	var orders []pq
	for p := 0; p <= s.cfg.MaxP; p++ {
		for q := 0; q <= s.cfg.MaxQ; q++ {
			if s.feasible(p, q) {
				orders = append(orders, pq{p, q})
			}
		}
	}

	jobs := s.cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]candidate, len(orders))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, o := range orders {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.fit(o.p, o.q)
			if results[i].err != nil && s.cfg.ErrorAction == ErrorActionRaise {
				return results[i].err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, c := range results {
		if err := s.record(c); err != nil {
			return err
		}
	}
	return nil
}
