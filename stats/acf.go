// Package stats provides the statistical tests used to select and check ARIMA models.
package stats

import (
	"math"

	"github.com/sartorproj/goenergy/timeseries"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ACF calculates the autocorrelation function for lags 0 to maxLag.
// It returns nil for a constant or empty series.
func ACF(series *timeseries.Series, maxLag int) []float64 {
	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := stat.Mean(series.Values, nil)
	centered := make([]float64, n)
	copy(centered, series.Values)
	floats.AddConst(-mean, centered)

	variance := floats.Dot(centered, centered)
	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		acf[k] = floats.Dot(centered[k:], centered[:n-k]) / variance
	}

	return acf
}

// ConfidenceBound returns the approximate 95% bound for ACF values
// of a white-noise series of length n.
func ConfidenceBound(n int) float64 {
	if n <= 0 {
		return math.Inf(1)
	}
	return 1.96 / math.Sqrt(float64(n))
}

// SignificantLags returns the lags (excluding 0) whose values exceed bound.
func SignificantLags(values []float64, bound float64) []int {
	var res []int
	for i := 1; i < len(values); i++ {
		if math.Abs(values[i]) > bound {
			res = append(res, i)
		}
	}
	return res
}
