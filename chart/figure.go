// Package chart keeps line charts as plain values and renders them with
// gonum/plot.
package chart

import "slices"

// Point is one (x, y) sample of a line.
type Point struct {
	X float64
	Y float64
}

// Line is a labelled polyline. Dashed lines are drawn with a dash pattern.
type Line struct {
	Label  string
	Points []Point
	Dashed bool
}

// Figure is a set of lines drawn on shared axes.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Lines  []Line
	// Legend lists the entries shown in the legend, in order. Each entry
	// uses the style of the line with the same label.
	Legend []string
}

// New creates an empty figure.
func New(title, xLabel, yLabel string) *Figure {
	return &Figure{Title: title, XLabel: xLabel, YLabel: yLabel}
}

// AddLine appends a line built from parallel xs and ys. Extra values of
// the longer slice are ignored.
func (f *Figure) AddLine(label string, xs, ys []float64, dashed bool) {
	n := min(len(xs), len(ys))
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	f.Lines = append(f.Lines, Line{Label: label, Points: pts, Dashed: dashed})
}

// SetLegend replaces the legend entries.
func (f *Figure) SetLegend(entries ...string) {
	f.Legend = slices.Clone(entries)
}

// Empty reports whether the figure has no lines.
func (f *Figure) Empty() bool {
	return len(f.Lines) == 0
}

// Line returns the first line with the given label.
func (f *Figure) Line(label string) (Line, bool) {
	for _, l := range f.Lines {
		if l.Label == label {
			return l, true
		}
	}
	return Line{}, false
}
