package dataset

import (
	"fmt"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/sartorproj/goenergy/timeseries"
)

// View is a Table restricted to chosen countries. Rows are grouped by
// country in the order the countries were requested and are indexed by
// calendar year.
type View struct {
	df        dataframe.DataFrame
	countries []string
}

// Filter restricts t to countries. Repeated names are collapsed. Every name
// must be present in t, otherwise the call fails without a partial result.
// Every year must be a four-digit calendar year.
func Filter(t *Table, countries []string) (*View, error) {
	if len(countries) == 0 {
		return nil, EmptySelectionError()
	}

	names := t.df.Names()
	if !slices.Contains(names, ColYear) {
		return nil, YearIndexError("no year column", nil)
	}
	if !slices.Contains(names, ColCountry) {
		return nil, MissingColumnError(ColCountry)
	}

	countries = uniqueInOrder(countries)
	colCountry := t.df.Col(ColCountry).Records()

	groups := make(map[string][]int, len(countries))
	for _, c := range countries {
		groups[c] = nil
	}
	for i, c := range colCountry {
		if _, ok := groups[c]; ok {
			groups[c] = append(groups[c], i)
		}
	}

	var unknown []string
	var idx []int
	for _, c := range countries {
		if len(groups[c]) == 0 {
			unknown = append(unknown, c)
			continue
		}
		idx = append(idx, groups[c]...)
	}
	if len(unknown) > 0 {
		return nil, UnknownCountryError(unknown)
	}

	df := t.df.Subset(idx)
	if df.Err != nil {
		return nil, YearIndexError("cannot subset rows", df.Err)
	}

	years := df.Col(ColYear)
	for i, y := range years.Float() {
		if years.Elem(i).IsNA() || y < 1000 || y > 9999 || y != float64(int(y)) {
			return nil, YearIndexError(
				fmt.Sprintf("%s is not a calendar year", years.Elem(i).String()), nil,
			)
		}
	}

	return &View{df: df, countries: countries}, nil
}

// Countries returns the countries of the view in requested order.
func (v *View) Countries() []string {
	return slices.Clone(v.countries)
}

// Nrow returns the number of rows.
func (v *View) Nrow() int {
	return v.df.Nrow()
}

// ByYear reports whether rows are indexed by calendar year. It is always
// true for a view returned by Filter.
func (v *View) ByYear() bool {
	return v.df.Nrow() == 0 || slices.Contains(v.df.Names(), ColYear)
}

// DataFrame returns a copy of the underlying data frame.
func (v *View) DataFrame() dataframe.DataFrame {
	return v.df.Copy()
}

// Rows returns the view as a slice of rows.
func (v *View) Rows() []Row {
	return frameRows(v.df)
}

// String renders the view.
func (v *View) String() string {
	return v.df.String()
}

// Series extracts the yearly series of variable for country. The series
// is named after the country.
func (v *View) Series(country string, variable Variable) (*timeseries.Series, error) {
	col := variable.Column()
	if col == "" {
		return nil, UnknownVariableError(string(variable))
	}
	if !slices.Contains(v.countries, country) {
		return nil, UnknownCountryError([]string{country})
	}

	var years []int
	var values []float64
	for _, r := range v.Rows() {
		if r.Country != country {
			continue
		}
		val, _ := r.Value(variable)
		years = append(years, r.Year)
		values = append(values, val)
	}

	s, err := timeseries.NewWithYears(country, years, values)
	if err != nil {
		return nil, YearIndexError(
			fmt.Sprintf("years of %s are not increasing", country), err,
		)
	}
	return s, nil
}
