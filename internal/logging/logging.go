// Package logging sets up the structured loggers used by the binaries.
package logging

import (
	"io"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// New returns a logfmt logger writing to w that tags every line with a UTC
// timestamp and the given unit. Debug lines are dropped unless debug is set.
func New(w io.Writer, unit string, debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	if debug {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo()) // only log info and above
	}
	return log.With(logger, "ts", log.DefaultTimestampUTC, "unit", unit)
}
