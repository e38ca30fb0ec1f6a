// Package arima implements non-seasonal ARIMA(p, d, q) models fitted by
// conditional sum of squares.
package arima

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/sartorproj/goenergy/stats"
	"github.com/sartorproj/goenergy/timeseries"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInsufficientData is returned when the series is too short for the order.
	ErrInsufficientData = errors.New("insufficient data points for the specified order")

	// ErrConstantSeries is returned when the (differenced) series has no variation.
	ErrConstantSeries = errors.New("series is constant")

	// ErrInvalidOrder is returned for negative orders.
	ErrInvalidOrder = errors.New("orders must be non-negative")

	// ErrNotFitted is returned when predictions are requested before Fit.
	ErrNotFitted = errors.New("model must be fitted before prediction")

	// ErrInvalidSteps is returned when fewer than one step is requested.
	ErrInvalidSteps = errors.New("steps must be at least 1")
)

// coefBound keeps AR and MA coefficients inside (-coefBound, coefBound).
const coefBound = 0.99

// Order represents ARIMA model order (p, d, q).
type Order struct {
	P int // AR order
	D int // Differencing order
	Q int // MA order
}

func (o Order) String() string {
	return fmt.Sprintf("ARIMA(%d,%d,%d)", o.P, o.D, o.Q)
}

// Model represents an ARIMA model.
type Model struct {
	Order     Order
	ARCoeffs  []float64 // phi
	MACoeffs  []float64 // theta
	Intercept float64
	Variance  float64 // Residual variance
	AIC       float64
	AICc      float64
	BIC       float64
	LogLik    float64

	fitted     bool
	data       *timeseries.Series
	diffData   *timeseries.Series
	lastLevels []float64 // last value of the series differenced 0..d-1 times
	residuals  []float64
}

// New creates a new ARIMA model with the specified order.
func New(p, d, q int) *Model {
	return NewWithOrder(Order{P: p, D: d, Q: q})
}

// NewWithOrder creates a new ARIMA model from an Order.
func NewWithOrder(o Order) *Model {
	return &Model{
		Order:    o,
		ARCoeffs: make([]float64, max(o.P, 0)),
		MACoeffs: make([]float64, max(o.Q, 0)),
	}
}

// Fit fits the model to series. The series is not modified.
func (m *Model) Fit(series *timeseries.Series) error {
	o := m.Order
	if o.P < 0 || o.D < 0 || o.Q < 0 {
		return ErrInvalidOrder
	}
	if series.Len() < o.P+o.Q+o.D+10 {
		return ErrInsufficientData
	}
	if series.IsConstant() {
		return ErrConstantSeries
	}

	m.data = series
	m.lastLevels = make([]float64, o.D)
	diffSeries := series
	for i := range o.D {
		m.lastLevels[i] = diffSeries.Values[diffSeries.Len()-1]
		diffSeries = diffSeries.Diff()
	}
	if diffSeries.IsConstant() {
		return fmt.Errorf("after %d differences: %w", o.D, ErrConstantSeries)
	}
	m.diffData = diffSeries

	if err := m.fitCSS(); err != nil {
		return err
	}

	m.calculateIC()
	m.fitted = true
	return nil
}

// fitCSS estimates the coefficients by minimizing the conditional sum of
// squares with Nelder-Mead. The intercept is fixed at the sample mean.
func (m *Model) fitCSS() error {
	y := m.diffData.Values
	p, q := m.Order.P, m.Order.Q
	m.Intercept = stat.Mean(y, nil)

	if p+q > 0 {
		init := make([]float64, p+q)
		if p > 0 {
			if acf := stats.ACF(m.diffData, p); acf != nil {
				copy(init, yuleWalker(acf, p))
			}
		}
		for i := range q {
			init[p+i] = 0.1
		}
		for i, v := range init {
			init[i] = toRaw(v)
		}

		// The objective is relative to the sample variance so that the
		// convergence tolerance does not depend on the units of the series.
		scale := m.diffData.Variance() * float64(len(y))
		problem := optimize.Problem{
			Func: func(raw []float64) float64 {
				ar, ma := m.unpack(raw)
				sse, _ := m.css(y, ar, ma)
				if math.IsNaN(sse) || math.IsInf(sse, 0) {
					return math.MaxFloat64
				}
				return sse / scale
			},
		}
		settings := &optimize.Settings{
			MajorIterations: 200 * (p + q),
			Converger: &optimize.FunctionConverge{
				Absolute:   1e-9,
				Iterations: 50,
			},
		}

		res, err := optimize.Minimize(problem, init, settings, &optimize.NelderMead{})
		if res == nil {
			return fmt.Errorf("css optimization of %s: %w", m.Order, err)
		}
		// Hitting the iteration limit still leaves a usable best point.
		m.ARCoeffs, m.MACoeffs = m.unpack(res.X)
	}

	sse, resid := m.css(y, m.ARCoeffs, m.MACoeffs)
	m.residuals = resid

	count := len(y) - max(p, q)
	dof := count - p - q - 1
	if dof <= 0 {
		dof = count
	}
	m.Variance = sse / float64(dof)
	return nil
}

// css returns the conditional sum of squares and the residuals. Residuals
// before max(p, q) are taken against the intercept and excluded from the sum.
func (m *Model) css(y, ar, ma []float64) (float64, []float64) {
	n := len(y)
	start := max(len(ar), len(ma))
	resid := make([]float64, n)
	sse := 0.0
	for t := range n {
		if t < start {
			resid[t] = y[t] - m.Intercept
			continue
		}
		pred := m.Intercept
		for i, phi := range ar {
			pred += phi * (y[t-i-1] - m.Intercept)
		}
		for i, theta := range ma {
			pred += theta * resid[t-i-1]
		}
		resid[t] = y[t] - pred
		sse += resid[t] * resid[t]
	}
	return sse, resid
}

func (m *Model) unpack(raw []float64) (ar, ma []float64) {
	p := m.Order.P
	ar = make([]float64, p)
	ma = make([]float64, len(raw)-p)
	for i, v := range raw {
		if i < p {
			ar[i] = fromRaw(v)
		} else {
			ma[i-p] = fromRaw(v)
		}
	}
	return ar, ma
}

func fromRaw(v float64) float64 { return coefBound * math.Tanh(v) }

func toRaw(c float64) float64 {
	c = math.Max(-0.95, math.Min(0.95, c/coefBound))
	return math.Atanh(c)
}

// calculateIC fills the Gaussian conditional log-likelihood and the
// information criteria. Every residual of the differenced series counts,
// so models of any (p, q) with the same d are scored on the same sample.
// The intercept counts as a parameter.
func (m *Model) calculateIC() {
	n := len(m.residuals)
	sse := 0.0
	for _, r := range m.residuals {
		sse += r * r
	}
	sigma2 := math.Max(sse/float64(n), math.SmallestNonzeroFloat64)
	logLik := -float64(n) / 2 * (math.Log(2*math.Pi*sigma2) + 1)

	ic := stats.CalculateIC(logLik, n, m.Order.P+m.Order.Q+1)
	m.LogLik = ic.LogLik
	m.AIC = ic.AIC
	m.AICc = ic.AICc
	m.BIC = ic.BIC
}

// Predict generates point forecasts for the next steps observations on the
// original scale.
func (m *Model) Predict(steps int) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	if steps < 1 {
		return nil, ErrInvalidSteps
	}

	p, q := m.Order.P, m.Order.Q
	y := m.diffData.Values
	n := len(y)

	extY := make([]float64, n+steps)
	copy(extY, y)
	extResid := make([]float64, n+steps)
	copy(extResid, m.residuals)

	for h := range steps {
		t := n + h
		pred := m.Intercept
		for i := 0; i < p && t-i-1 >= 0; i++ {
			pred += m.ARCoeffs[i] * (extY[t-i-1] - m.Intercept)
		}
		// future shocks have expectation zero
		for i := 0; i < q && t-i-1 >= 0 && t-i-1 < n; i++ {
			pred += m.MACoeffs[i] * extResid[t-i-1]
		}
		extY[t] = pred
	}

	return m.integrate(slices.Clone(extY[n:])), nil
}

// Forecast returns Predict(steps) labelled with the years following the
// last observation.
func (m *Model) Forecast(steps int) (*timeseries.Series, error) {
	vals, err := m.Predict(steps)
	if err != nil {
		return nil, err
	}
	years := m.data.FutureYears(steps)
	if len(years) != steps {
		return timeseries.New(vals), nil
	}
	return &timeseries.Series{Name: m.data.Name, Years: years, Values: vals}, nil
}

// integrate undoes differencing, innermost level first.
func (m *Model) integrate(forecasts []float64) []float64 {
	for level := m.Order.D - 1; level >= 0; level-- {
		prev := m.lastLevels[level]
		for j := range forecasts {
			forecasts[j] += prev
			prev = forecasts[j]
		}
	}
	return forecasts
}

// Residuals returns the in-sample residuals on the differenced scale.
func (m *Model) Residuals() []float64 {
	if !m.fitted {
		return nil
	}
	return slices.Clone(m.residuals)
}

// Summary describes a fitted model and the diagnostics of its residuals.
type Summary struct {
	Order     Order
	ARCoeffs  []float64
	MACoeffs  []float64
	Intercept float64
	Variance  float64
	AIC       float64
	AICc      float64
	BIC       float64
	LogLik    float64
	NObs      int

	// LjungBox tests the first 10 residual autocorrelations jointly.
	LjungBox *stats.LjungBoxResult
	// DurbinWatson is near 2 for uncorrelated residuals.
	DurbinWatson float64
	// ResidualLags lists the lags up to 10 whose residual autocorrelation
	// is outside the 95% white-noise bound.
	ResidualLags []int
}

// Summary returns a summary of the fitted model, or nil before Fit.
func (m *Model) Summary() *Summary {
	if !m.fitted {
		return nil
	}

	resid := timeseries.New(m.Residuals())
	res := &Summary{
		Order:        m.Order,
		ARCoeffs:     slices.Clone(m.ARCoeffs),
		MACoeffs:     slices.Clone(m.MACoeffs),
		Intercept:    m.Intercept,
		Variance:     m.Variance,
		AIC:          m.AIC,
		AICc:         m.AICc,
		BIC:          m.BIC,
		LogLik:       m.LogLik,
		NObs:         m.data.Len(),
		LjungBox:     stats.LjungBox(resid, 10, m.Order.P+m.Order.Q),
		DurbinWatson: stats.DurbinWatson(resid.Values),
	}
	if acf := stats.ACF(resid, 10); acf != nil {
		res.ResidualLags = stats.SignificantLags(acf, stats.ConfidenceBound(resid.Len()))
	}
	return res
}

// yuleWalker estimates AR coefficients from autocorrelations with the
// Levinson-Durbin recursion.
func yuleWalker(acf []float64, order int) []float64 {
	if order <= 0 || len(acf) <= order {
		return nil
	}

	phi := make([]float64, order)
	phi[0] = acf[1]
	if order == 1 {
		return phi
	}

	v := 1 - phi[0]*phi[0]
	for i := 1; i < order; i++ {
		if v <= 0 {
			break
		}
		lambda := acf[i+1]
		for j := range i {
			lambda -= phi[j] * acf[i-j]
		}
		lambda /= v

		next := make([]float64, i+1)
		for j := range i {
			next[j] = phi[j] - lambda*phi[i-1-j]
		}
		next[i] = lambda
		copy(phi, next)

		v *= 1 - lambda*lambda
	}

	return phi
}
