package stats

import (
	"math"

	"github.com/sartorproj/goenergy/timeseries"
)

// NDiffs returns the number of first differences (0..maxD) needed to make
// the series stationary.
//
// With testType "adf" only the ADF test is consulted. Otherwise ("kpss", the
// default) the series counts as stationary when KPSS and ADF agree, or when
// KPSS alone is clearly on the stationary side (p > 0.1).
func NDiffs(series *timeseries.Series, maxD int, testType string) int {
	if maxD <= 0 {
		maxD = 2
	}

	current := series
	for d := range maxD {
		if isStationary(current, testType) {
			return d
		}

		current = current.Diff()
		if current.Len() < 10 {
			return d
		}
	}

	return maxD
}

func isStationary(series *timeseries.Series, testType string) bool {
	adf := ADF(series, 0)
	adfStationary := adf != nil && adf.IsStationary
	if testType == "adf" {
		return adfStationary
	}

	kpss := KPSS(series, "c", 0)
	if kpss == nil || !kpss.IsStationary {
		return false
	}
	return adfStationary || kpss.PValue > 0.1
}

// InformationCriteria holds AIC, AICc and BIC for a fitted model.
type InformationCriteria struct {
	AIC    float64
	AICc   float64
	BIC    float64
	LogLik float64
}

// CalculateIC calculates the information criteria from a log-likelihood,
// the number of observations and the number of estimated parameters.
// AICc is +Inf when nObs-nParams-1 <= 0.
func CalculateIC(logLik float64, nObs int, nParams int) *InformationCriteria {
	k := float64(nParams)
	n := float64(nObs)

	aic := -2*logLik + 2*k
	bic := -2*logLik + k*math.Log(n)

	aicc := math.Inf(1)
	if n-k-1 > 0 {
		aicc = aic + 2*k*(k+1)/(n-k-1)
	}

	return &InformationCriteria{
		AIC:    aic,
		AICc:   aicc,
		BIC:    bic,
		LogLik: logLik,
	}
}
