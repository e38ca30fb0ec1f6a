// Package dataset loads the Our World in Data energy CSV and reduces it to
// the per-country tables used for plotting and forecasting.
//
// Every stage returns a new immutable value:
//
//	raw, err := dataset.Load(path)           // *Raw, the whole CSV
//	table, err := dataset.Clean(raw, dataset.DefaultWindow)
//	view, err := dataset.Filter(table, []string{"Germany", "France"})
//	s, err := view.Series("Germany", dataset.GDP)
package dataset

import (
	"slices"
)

// Column names of the cleaned table.
const (
	ColCountry    = "country"
	ColYear       = "year"
	ColGDP        = "gdp"
	ColRenewables = "renewables_energy_per_capita"
	ColFossil     = "fossil_energy_per_capita"
)

// Columns lists the cleaned table's columns in order.
var Columns = []string{ColCountry, ColYear, ColGDP, ColRenewables, ColFossil}

// Variable selects one of the measured columns.
type Variable string

const (
	Renewables Variable = "renewables"
	Fossil     Variable = "fossil"
	GDP        Variable = "gdp"
)

var variableColumns = map[Variable]string{
	Renewables: ColRenewables,
	Fossil:     ColFossil,
	GDP:        ColGDP,
}

// Variables returns all known variables.
func Variables() []Variable {
	return []Variable{Renewables, Fossil, GDP}
}

// ParseVariable converts a tag into a Variable. The second value is false
// for unknown tags.
func ParseVariable(s string) (Variable, bool) {
	v := Variable(s)
	_, ok := variableColumns[v]
	return v, ok
}

// Valid reports whether v is a known variable.
func (v Variable) Valid() bool {
	_, ok := variableColumns[v]
	return ok
}

// Column returns the table column of v, or an empty string for an
// unknown variable.
func (v Variable) Column() string {
	return variableColumns[v]
}

// Window is an inclusive range of years.
type Window struct {
	From int
	To   int
}

// DefaultWindow keeps the years with reasonably complete data.
var DefaultWindow = Window{From: 1970, To: 2018}

// Contains reports whether year is inside the window.
func (w Window) Contains(year int) bool {
	return year >= w.From && year <= w.To
}

// Row is one observation of the cleaned table.
type Row struct {
	Country    string
	Year       int
	GDP        float64
	Renewables float64
	Fossil     float64
}

// Value returns the measurement of v, or false for an unknown variable.
func (r Row) Value(v Variable) (float64, bool) {
	switch v {
	case GDP:
		return r.GDP, true
	case Renewables:
		return r.Renewables, true
	case Fossil:
		return r.Fossil, true
	}
	return 0, false
}

// uniqueInOrder drops repeated names, keeping the first occurrence.
func uniqueInOrder(names []string) []string {
	res := make([]string, 0, len(names))
	for _, n := range names {
		if !slices.Contains(res, n) {
			res = append(res, n)
		}
	}
	return res
}
