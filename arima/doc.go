// Package arima fits non-seasonal ARIMA(p, d, q) models and produces point
// forecasts.
//
// The series is differenced d times, the intercept is fixed at the mean of
// the differenced values, and the AR and MA coefficients are estimated by
// minimizing the conditional sum of squares with gonum's Nelder-Mead
// optimizer, starting from Yule-Walker estimates. Coefficients stay inside
// (-0.99, 0.99).
//
//	model := arima.New(1, 1, 0)
//	if err := model.Fit(series); err != nil {
//	    return err
//	}
//	fc, _ := model.Forecast(10) // labelled with the following years
//
// A constant series cannot be fitted and returns ErrConstantSeries.
// Use the autoarima package to choose the order automatically.
package arima
