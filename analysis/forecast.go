package analysis

import (
	"context"
	"log/slog"

	"github.com/sartorproj/goenergy/arima"
	"github.com/sartorproj/goenergy/autoarima"
	"github.com/sartorproj/goenergy/chart"
	"github.com/sartorproj/goenergy/dataset"
	"github.com/sartorproj/goenergy/stats"
	"github.com/sartorproj/goenergy/timeseries"
)

// DefaultHorizon is the number of predicted years per country.
const DefaultHorizon = 10

// PredictedPrefix starts the label of every predicted line.
const PredictedPrefix = "Predicted for "

// Options configure Forecast.
type Options struct {
	// Horizon is the number of years to predict. Values below one mean
	// DefaultHorizon.
	Horizon int
	// Search configures the order search. Nil means
	// autoarima.DefaultConfig().
	Search *autoarima.Config
}

// DefaultOptions returns a ten year horizon and the default stepwise AIC
// search.
func DefaultOptions() Options {
	return Options{
		Horizon: DefaultHorizon,
		Search:  autoarima.DefaultConfig(),
	}
}

// Projection is the forecast of one country.
type Projection struct {
	Country   string
	Variable  dataset.Variable
	Order     arima.Order
	Criterion float64
	History   *timeseries.Series
	Predicted *timeseries.Series

	Diagnostics Diagnostics
}

// Diagnostics describe the residuals of the fitted model.
type Diagnostics struct {
	// LjungBox is nil when there are too few residuals for the test.
	LjungBox     *stats.LjungBoxResult
	DurbinWatson float64
	// ResidualLags are lags with significant residual autocorrelation.
	ResidualLags []int
}

// ForecastResult holds the figure and the projections in country order.
type ForecastResult struct {
	Figure      *chart.Figure
	Projections []Projection
}

// Forecast predicts variable for every country. See ForecastContext.
func Forecast(
	view *dataset.View,
	countries []string,
	variable dataset.Variable,
	opts Options,
) (*ForecastResult, error) {
	return ForecastContext(context.Background(), view, countries, variable, opts)
}

// ForecastContext predicts variable for every country, in order. For each
// country the history and a dashed predicted line are added to the figure
// and the legend grows by "<country>" and "Predicted for <country>".
//
// The first country that cannot be forecast aborts the call.
func ForecastContext(
	ctx context.Context,
	view *dataset.View,
	countries []string,
	variable dataset.Variable,
	opts Options,
) (*ForecastResult, error) {
	if !variable.Valid() {
		return nil, dataset.UnknownVariableError(string(variable))
	}
	if countries == nil {
		countries = view.Countries()
	}
	horizon := opts.Horizon
	if horizon < 1 {
		horizon = DefaultHorizon
	}
	search := opts.Search
	if search == nil {
		search = autoarima.DefaultConfig()
	}

	res := &ForecastResult{Figure: newFigure(variable)}
	var legend []string
	for _, c := range countries {
		pr, err := project(ctx, view, c, variable, horizon, search)
		if err != nil {
			return nil, err
		}
		res.Projections = append(res.Projections, *pr)

		addSeries(res.Figure, c, pr.History, false)
		addSeries(res.Figure, pr.Predicted.Name, pr.Predicted, true)
		legend = append(legend, c, pr.Predicted.Name)
		res.Figure.SetLegend(legend...)
	}
	return res, nil
}

func project(
	ctx context.Context,
	view *dataset.View,
	country string,
	variable dataset.Variable,
	horizon int,
	search *autoarima.Config,
) (*Projection, error) {
	s, err := view.Series(country, variable)
	if err != nil {
		return nil, err
	}

	found, err := autoarima.AutoARIMAContext(ctx, s, search)
	if err != nil {
		return nil, ForecastError(country, variable, err)
	}

	m := arima.NewWithOrder(found.Order)
	if err = m.Fit(s); err != nil {
		return nil, ForecastError(country, variable, err)
	}
	pred, err := m.Forecast(horizon)
	if err != nil {
		return nil, ForecastError(country, variable, err)
	}
	pred.Name = PredictedPrefix + country

	var diag Diagnostics
	if sum := m.Summary(); sum != nil {
		diag = Diagnostics{
			LjungBox:     sum.LjungBox,
			DurbinWatson: sum.DurbinWatson,
			ResidualLags: sum.ResidualLags,
		}
	}

	slog.Info("Forecast ready",
		"country", country,
		"variable", variable,
		"order", found.Order.String(),
		"aic", m.AIC,
		"durbin_watson", diag.DurbinWatson,
		"from", pred.Years[0],
		"to", pred.Years[len(pred.Years)-1],
	)

	return &Projection{
		Country:   country,
		Variable:  variable,
		Order:     found.Order,
		Criterion: found.Criterion,
		History:   s,
		Predicted: pred,

		Diagnostics: diag,
	}, nil
}
