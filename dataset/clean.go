package dataset

import (
	"log/slog"
	"math"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is the cleaned dataset: the five Columns, no missing cells, and
// only the years of the cleaning window.
type Table struct {
	df dataframe.DataFrame
}

// columnTypes is the schema of a cleaned table.
var columnTypes = map[string]series.Type{
	ColCountry:    series.String,
	ColYear:       series.Int,
	ColGDP:        series.Float,
	ColRenewables: series.Float,
	ColFossil:     series.Float,
}

// Clean projects raw to the five Columns, replaces missing values with zero
// ("0" for text) and keeps the rows whose year lies inside window.
func Clean(raw *Raw, window Window) (*Table, error) {
	if window.From > window.To {
		return nil, WindowError(window)
	}

	names := raw.df.Names()
	for _, col := range Columns {
		if !slices.Contains(names, col) {
			return nil, MissingColumnError(col)
		}
	}

	df := raw.df.Select(Columns).Capply(fillMissing)
	df = df.FilterAggregation(dataframe.And,
		dataframe.F{Colname: ColYear, Comparator: series.GreaterEq, Comparando: window.From},
		dataframe.F{Colname: ColYear, Comparator: series.LessEq, Comparando: window.To},
	)
	if df.Err != nil {
		return nil, ParseCSVError("table", df.Err)
	}

	slog.Debug("Dataset cleaned",
		"rows", df.Nrow(), "from", window.From, "to", window.To)
	return &Table{df: df}, nil
}

// fillMissing converts a column to its schema type with zero in place of
// every missing cell.
func fillMissing(s series.Series) series.Series {
	nan := s.IsNaN()
	switch columnTypes[s.Name] {
	case series.Int:
		vals := make([]int, s.Len())
		for i, f := range s.Float() {
			if !nan[i] && !math.IsNaN(f) {
				vals[i] = int(f)
			}
		}
		return series.New(vals, series.Int, s.Name)
	case series.Float:
		vals := s.Float()
		for i, f := range vals {
			if nan[i] || math.IsNaN(f) {
				vals[i] = 0
			}
		}
		return series.New(vals, series.Float, s.Name)
	default:
		vals := s.Records()
		for i := range vals {
			if nan[i] {
				vals[i] = "0"
			}
		}
		return series.New(vals, series.String, s.Name)
	}
}

// NewTable builds a cleaned table from rows, mostly for tests and tools.
func NewTable(rows []Row) *Table {
	n := len(rows)
	countries := make([]string, n)
	years := make([]int, n)
	gdp := make([]float64, n)
	ren := make([]float64, n)
	fos := make([]float64, n)
	for i, r := range rows {
		countries[i] = r.Country
		years[i] = r.Year
		gdp[i] = r.GDP
		ren[i] = r.Renewables
		fos[i] = r.Fossil
	}
	df := dataframe.New(
		series.New(countries, series.String, ColCountry),
		series.New(years, series.Int, ColYear),
		series.New(gdp, series.Float, ColGDP),
		series.New(ren, series.Float, ColRenewables),
		series.New(fos, series.Float, ColFossil),
	)
	return &Table{df: df}
}

// Nrow returns the number of rows.
func (t *Table) Nrow() int {
	return t.df.Nrow()
}

// Names returns the column names.
func (t *Table) Names() []string {
	return t.df.Names()
}

// DataFrame returns a copy of the underlying data frame.
func (t *Table) DataFrame() dataframe.DataFrame {
	return t.df.Copy()
}

// Countries returns the distinct countries in order of first appearance.
func (t *Table) Countries() []string {
	if !slices.Contains(t.df.Names(), ColCountry) {
		return nil
	}
	return uniqueInOrder(t.df.Col(ColCountry).Records())
}

// Rows returns the table as a slice of rows.
func (t *Table) Rows() []Row {
	return frameRows(t.df)
}

// String renders the table.
func (t *Table) String() string {
	return t.df.String()
}

func frameRows(df dataframe.DataFrame) []Row {
	names := df.Names()
	for _, col := range Columns {
		if !slices.Contains(names, col) {
			return nil
		}
	}

	n := df.Nrow()
	countries := df.Col(ColCountry).Records()
	years := df.Col(ColYear).Float()
	gdp := df.Col(ColGDP).Float()
	ren := df.Col(ColRenewables).Float()
	fos := df.Col(ColFossil).Float()

	res := make([]Row, n)
	for i := range res {
		res[i] = Row{
			Country:    countries[i],
			Year:       int(years[i]),
			GDP:        gdp[i],
			Renewables: ren[i],
			Fossil:     fos[i],
		}
	}
	return res
}
