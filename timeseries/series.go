// Package timeseries provides the yearly series type used by the forecasting packages.
package timeseries

import (
	"errors"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch is returned when years and values differ in length.
var ErrLengthMismatch = errors.New("years and values must have the same length")

// ErrYearOrder is returned when years are not strictly increasing.
var ErrYearOrder = errors.New("years must be strictly increasing")

// Series is an annual time series. Years[i] labels Values[i].
type Series struct {
	Name   string
	Years  []int
	Values []float64
}

// New creates a series from values, labelled 0, 1, 2, ...
func New(values []float64) *Series {
	return NewYearly(0, values)
}

// NewYearly creates a series whose first value belongs to year start and
// every following value to the next calendar year.
func NewYearly(start int, values []float64) *Series {
	years := make([]int, len(values))
	for i := range years {
		years[i] = start + i
	}
	return &Series{
		Years:  years,
		Values: values,
	}
}

// NewWithYears creates a series with explicit year labels.
func NewWithYears(name string, years []int, values []float64) (*Series, error) {
	if len(years) != len(values) {
		return nil, ErrLengthMismatch
	}
	for i := 1; i < len(years); i++ {
		if years[i] <= years[i-1] {
			return nil, ErrYearOrder
		}
	}
	return &Series{
		Name:   name,
		Years:  years,
		Values: values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	return stat.Variance(s.Values, nil)
}

// IsConstant reports whether every value equals the first one.
func (s *Series) IsConstant() bool {
	for _, v := range s.Values {
		if v != s.Values[0] {
			return false
		}
	}
	return true
}

// LastYear returns the year of the final observation, or false for an
// empty series.
func (s *Series) LastYear() (int, bool) {
	if len(s.Years) == 0 {
		return 0, false
	}
	return s.Years[len(s.Years)-1], true
}

// FutureYears returns the h calendar years following the last observation.
func (s *Series) FutureYears(h int) []int {
	last, ok := s.LastYear()
	if !ok || h <= 0 {
		return nil
	}
	res := make([]int, h)
	for i := range res {
		res[i] = last + 1 + i
	}
	return res
}

// Diff calculates the first difference of the series (d=1).
func (s *Series) Diff() *Series {
	return s.DiffN(1)
}

// DiffN calculates the lag-n difference of the series. The result is
// labelled with the later year of every pair.
func (s *Series) DiffN(n int) *Series {
	if n <= 0 || len(s.Values) <= n {
		return &Series{Name: s.Name + "_diff"}
	}

	values := make([]float64, len(s.Values)-n)
	for i := n; i < len(s.Values); i++ {
		values[i-n] = s.Values[i] - s.Values[i-n]
	}

	var years []int
	if len(s.Years) == len(s.Values) {
		years = slices.Clone(s.Years[n:])
	}

	return &Series{
		Name:   s.Name + "_diff",
		Years:  years,
		Values: values,
	}
}
