package report

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/errcode"
)

func ReportError(target string, err error) error {
	msg := "Cannot write report <em>%s</em>"
	vars := []any{target}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: report %s: %w", fn, target, err),
	}
}

func EmptyReportError(target string) error {
	msg := "No projections for report <em>%s</em>"
	vars := []any{target}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: no projections for %s", fn, target),
	}
}
