package dataset

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/errcode"
)

func DownloadError(url string, err error) error {
	msg := "Cannot download <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DownloadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot download %s: %w", fn, url, err),
	}
}

func DownloadStatusError(url string, status int) error {
	msg := "Download of <em>%s</em> failed with HTTP status %d"
	vars := []any{url, status}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DownloadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unexpected status %d for %s", fn, status, url),
	}
}

func WriteFileError(path string, err error) error {
	msg := "Cannot write <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn, path, err),
	}
}

func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

func ParseCSVError(source string, err error) error {
	msg := "Cannot parse CSV data from <em>%s</em>"
	vars := []any{source}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParseCSVError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse csv: %w", fn, err),
	}
}

func MissingColumnError(col string) error {
	msg := "Column <em>%s</em> is missing from the dataset"
	vars := []any{col}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no column %q", fn, col),
	}
}

func WindowError(w Window) error {
	msg := "Year window <em>%d-%d</em> is empty"
	vars := []any{w.From, w.To}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WindowError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: window start %d after end %d", fn, w.From, w.To),
	}
}

func UnknownCountryError(names []string) error {
	list := strings.Join(names, ", ")
	msg := "Unknown countries: <em>%s</em>"
	vars := []any{list}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownCountryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: countries not in table: %s", fn, list),
	}
}

func EmptySelectionError() error {
	msg := "No countries were selected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.EmptySelectionError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: empty country list", fn),
	}
}

func YearIndexError(reason string, err error) error {
	msg := "Cannot index rows by year: %s"
	vars := []any{reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	if err == nil {
		err = fmt.Errorf("%s", reason)
	}
	return &gn.Error{
		Code: errcode.YearIndexError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: year index: %w", fn, err),
	}
}

func UnknownVariableError(tag string) error {
	msg := "Unknown variable <em>%s</em>, use one of: gdp, renewables, fossil"
	vars := []any{tag}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownVariableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown variable %q", fn, tag),
	}
}
