// Package console talks to the user on a terminal.
package console

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Reporter prints dictionary outcomes for the user and mirrors them to the log
type Reporter struct {
	out    io.Writer
	logger *zap.Logger
}

// NewReporter creates a new reporter
func NewReporter(out io.Writer, logger *zap.Logger) *Reporter {
	return &Reporter{
		out:    out,
		logger: logger,
	}
}

// Warn prints a warning
func (r *Reporter) Warn(msg string) {
	fmt.Fprintf(r.out, "Warning: %s\n", msg)
	r.logger.Debug("User warning", zap.String("message", msg))
}

// Info prints a notice
func (r *Reporter) Info(msg string) {
	fmt.Fprintln(r.out, msg)
	r.logger.Debug("User notice", zap.String("message", msg))
}
