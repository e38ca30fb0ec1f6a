// Package stats provides the statistical tests behind order selection and
// model diagnostics for yearly series.
//
// # Stationarity
//
//	adf := stats.ADF(series, 0)      // H0: unit root
//	kpss := stats.KPSS(series, "c", 0) // H0: level stationary
//	d := stats.NDiffs(series, 2, "kpss")
//
// # Autocorrelation
//
//	acf := stats.ACF(series, 20)
//	sig := stats.SignificantLags(acf, stats.ConfidenceBound(series.Len()))
//
// # Residual diagnostics
//
//	lb := stats.LjungBox(residuals, 10, p+q)
//	dw := stats.DurbinWatson(residuals.Values)
//
// Information criteria for fitted models come from CalculateIC.
package stats
