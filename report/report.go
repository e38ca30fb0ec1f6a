// Package report exports forecast projections as YAML, CSV or an Excel
// workbook.
package report

import (
	"io"
	"slices"

	"github.com/sartorproj/goenergy/analysis"
	"github.com/sartorproj/goenergy/timeseries"
	"gopkg.in/yaml.v3"
)

// Kinds of observations in a report.
const (
	KindHistory   = "history"
	KindPredicted = "predicted"
)

// Report is the YAML document written by WriteYAML.
type Report struct {
	Projections []Projection `yaml:"projections"`
}

// Projection is the report entry of one country and variable.
type Projection struct {
	Country   string  `yaml:"country"`
	Variable  string  `yaml:"variable"`
	Order     Order   `yaml:"order"`
	Criterion float64 `yaml:"criterion"`
	History   []Point `yaml:"history,flow"`
	Predicted []Point `yaml:"predicted,flow"`

	Diagnostics Diagnostics `yaml:"diagnostics"`
}

// Diagnostics summarise the residuals of the fitted model.
type Diagnostics struct {
	// LjungBoxP is omitted when the test could not be computed.
	LjungBoxP    *float64 `yaml:"ljung_box_p,omitempty"`
	DurbinWatson float64  `yaml:"durbin_watson"`
	ResidualLags []int    `yaml:"residual_lags,flow,omitempty"`
}

// Order is the selected ARIMA order.
type Order struct {
	P int `yaml:"p"`
	D int `yaml:"d"`
	Q int `yaml:"q"`
}

// Point is one yearly value.
type Point struct {
	Year  int     `yaml:"year"`
	Value float64 `yaml:"value"`
}

// New converts projections into a Report.
func New(prs []analysis.Projection) *Report {
	res := &Report{Projections: make([]Projection, len(prs))}
	for i, pr := range prs {
		res.Projections[i] = Projection{
			Country:   pr.Country,
			Variable:  string(pr.Variable),
			Order:     Order{P: pr.Order.P, D: pr.Order.D, Q: pr.Order.Q},
			Criterion: pr.Criterion,
			History:   points(pr.History),
			Predicted: points(pr.Predicted),

			Diagnostics: diagnostics(pr.Diagnostics),
		}
	}
	return res
}

func diagnostics(d analysis.Diagnostics) Diagnostics {
	res := Diagnostics{
		DurbinWatson: d.DurbinWatson,
		ResidualLags: slices.Clone(d.ResidualLags),
	}
	if d.LjungBox != nil {
		p := d.LjungBox.PValue
		res.LjungBoxP = &p
	}
	return res
}

func points(s *timeseries.Series) []Point {
	if s == nil {
		return nil
	}
	res := make([]Point, s.Len())
	for i, v := range s.Values {
		res[i] = Point{Year: s.Years[i], Value: v}
	}
	return res
}

// WriteYAML writes projections to w as a YAML document.
func WriteYAML(w io.Writer, prs []analysis.Projection) error {
	if len(prs) == 0 {
		return EmptyReportError("yaml")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(New(prs)); err != nil {
		return ReportError("yaml", err)
	}
	if err := enc.Close(); err != nil {
		return ReportError("yaml", err)
	}
	return nil
}

// ReadYAML reads a report written by WriteYAML.
func ReadYAML(r io.Reader) (*Report, error) {
	var res Report
	if err := yaml.NewDecoder(r).Decode(&res); err != nil {
		return nil, ReportError("yaml", err)
	}
	return &res, nil
}

// WriteCSV writes history and predicted series of every projection in long
// format (name,year,value).
func WriteCSV(w io.Writer, prs []analysis.Projection) error {
	if len(prs) == 0 {
		return EmptyReportError("csv")
	}
	ss := make([]*timeseries.Series, 0, 2*len(prs))
	for _, pr := range prs {
		ss = append(ss, pr.History, pr.Predicted)
	}
	ss = slices.DeleteFunc(ss, func(s *timeseries.Series) bool { return s == nil })
	if err := timeseries.WriteCSV(w, ss...); err != nil {
		return ReportError("csv", err)
	}
	return nil
}
