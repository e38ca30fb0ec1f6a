package analysis

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/dataset"
	"github.com/sartorproj/goenergy/errcode"
)

func ForecastError(country string, v dataset.Variable, err error) error {
	msg := "Cannot forecast <em>%s</em> for <em>%s</em>"
	vars := []any{v, country}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ForecastError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: forecast %s of %s: %w", fn, v, country, err),
	}
}
