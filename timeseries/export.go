package timeseries

import (
	"errors"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ErrNothingToWrite is returned by WriteCSV when no observations are given.
var ErrNothingToWrite = errors.New("no observations to write")

// Frame converts series to a long-format table with the columns
// name, year and value.
func Frame(ss ...*Series) dataframe.DataFrame {
	var (
		names  []string
		years  []int
		values []float64
	)
	for _, s := range ss {
		for i, v := range s.Values {
			names = append(names, s.Name)
			if i < len(s.Years) {
				years = append(years, s.Years[i])
			} else {
				years = append(years, i)
			}
			values = append(values, v)
		}
	}

	return dataframe.New(
		series.New(names, series.String, "name"),
		series.New(years, series.Int, "year"),
		series.New(values, series.Float, "value"),
	)
}

// WriteCSV writes the series in long format (name,year,value) with a
// header row.
func WriteCSV(w io.Writer, ss ...*Series) error {
	var n int
	for _, s := range ss {
		n += s.Len()
	}
	if n == 0 {
		return ErrNothingToWrite
	}

	df := Frame(ss...)
	if err := df.Error(); err != nil {
		return err
	}
	return df.WriteCSV(w)
}
