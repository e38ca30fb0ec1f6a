// Package errcode enumerates the error codes used by goenergy's
// user-facing errors.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Ingestion errors
	DownloadError
	ParseCSVError

	// Cleaning and filtering errors
	MissingColumnError
	WindowError
	UnknownCountryError
	EmptySelectionError
	YearIndexError

	// Analysis errors
	UnknownVariableError
	ForecastError
	RenderError

	// Report errors
	ReportError
)
