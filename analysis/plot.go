package analysis

import (
	"fmt"
	"log/slog"

	"github.com/sartorproj/goenergy/chart"
	"github.com/sartorproj/goenergy/dataset"
	"github.com/sartorproj/goenergy/timeseries"
)

// Outcome tells what a Plot call did.
type Outcome int

const (
	// Drawn means one line per country was added.
	Drawn Outcome = iota
	// UnknownVariable means the variable tag was not recognized and
	// nothing was drawn.
	UnknownVariable
)

func (o Outcome) String() string {
	switch o {
	case Drawn:
		return "drawn"
	case UnknownVariable:
		return "unknown variable"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// PlotResult is the figure built by Plot.
type PlotResult struct {
	Figure  *chart.Figure
	Outcome Outcome
}

// Plot draws variable for every country on one figure, in the given order.
// The legend lists the country names. Nil countries means all countries of
// the view.
//
// An unrecognized variable is not an error: the figure stays empty and the
// outcome is UnknownVariable.
func Plot(
	view *dataset.View,
	variable dataset.Variable,
	countries []string,
) (*PlotResult, error) {
	if !variable.Valid() {
		slog.Warn("Unknown variable, nothing to plot", "variable", variable)
		return &PlotResult{
			Figure:  chart.New(string(variable), "year", ""),
			Outcome: UnknownVariable,
		}, nil
	}

	if countries == nil {
		countries = view.Countries()
	}

	fig := newFigure(variable)
	for _, c := range countries {
		s, err := view.Series(c, variable)
		if err != nil {
			return nil, err
		}
		addSeries(fig, c, s, false)
	}
	fig.SetLegend(countries...)

	slog.Debug("Plot built", "variable", variable, "countries", len(countries))
	return &PlotResult{Figure: fig, Outcome: Drawn}, nil
}

func newFigure(v dataset.Variable) *chart.Figure {
	col := v.Column()
	return chart.New(col, "year", col)
}

func addSeries(fig *chart.Figure, label string, s *timeseries.Series, dashed bool) {
	xs := make([]float64, len(s.Years))
	for i, y := range s.Years {
		xs[i] = float64(y)
	}
	fig.AddLine(label, xs, s.Values, dashed)
}
