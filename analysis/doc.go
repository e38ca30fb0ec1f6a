// Package analysis draws and forecasts the per-country series of a
// dataset.View.
//
// Plot puts one line per country on a shared chart.Figure. Forecast selects
// a non-seasonal ARIMA order per country with autoarima, refits it and
// appends a dashed "Predicted for <country>" line covering the years after
// the last observation.
package analysis
