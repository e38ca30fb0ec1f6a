// Package goenergy explores and forecasts per-country energy and economic
// indicators from the Our World in Data energy dataset.
//
// The work is split into four stages, each returning an immutable value:
//
//	raw, _ := dataset.Load(path)                        // ingest
//	table, _ := dataset.Clean(raw, dataset.DefaultWindow) // five columns, 1970-2018
//	view, _ := dataset.Filter(table, []string{"Germany", "France"})
//	res, _ := analysis.Forecast(view, nil, dataset.GDP, analysis.DefaultOptions())
//	_ = chart.Save(res.Figure, "gdp.png", chart.DefaultWidth, chart.DefaultHeight)
//
// # Forecasting
//
// Forecasts use non-seasonal ARIMA models fitted by conditional sum of
// squares. The order of every series is chosen with a stepwise
// Hyndman-Khandakar search on AIC, with the number of differences taken
// from KPSS and ADF tests.
//
// # Packages
//
//   - dataset: download, load, clean and filter the dataset
//   - analysis: line plots and per-country forecasts
//   - chart: figures and rendering with gonum/plot
//   - report: YAML, CSV and Excel export of projections
//   - timeseries: the yearly series type
//   - stats: autocorrelation, stationarity tests, Ljung-Box, information criteria
//   - arima: ARIMA(p,d,q) models
//   - autoarima: automatic order selection
//
// The goenergy command in cmd/goenergy wires the stages together.
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
//   - Box, G. E. P., & Jenkins, G. M. (1976). Time Series Analysis: Forecasting and Control
package goenergy
