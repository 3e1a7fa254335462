package report

import "errors"

var (
	ErrReportNotFound    = errors.New("progress report not found")
	ErrClientCannotWrite = errors.New("clients cannot submit progress reports")
)
