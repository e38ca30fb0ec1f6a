// Package timeseries provides the annual Series type shared by the stats,
// arima and autoarima packages.
//
// A Series carries one value per calendar year:
//
//	s := timeseries.NewYearly(1970, values)
//	last, _ := s.LastYear()
//	future := s.FutureYears(10) // last+1 ... last+10
//
// Differencing keeps the year labels of the later observation:
//
//	d := s.Diff()
//	d2 := s.DiffN(2)
//
// Series can be exported in long format (name,year,value):
//
//	err := timeseries.WriteCSV(w, history, predicted)
package timeseries
