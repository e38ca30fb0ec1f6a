package chart

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/sartorproj/goenergy/errcode"
)

func RenderError(path string, err error) error {
	msg := "Cannot render chart to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RenderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot render %s: %w", fn, path, err),
	}
}

func FormatError(path, format string) error {
	msg := "Unsupported chart format <em>%s</em> for %s"
	vars := []any{format, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RenderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unsupported format %q", fn, format),
	}
}
