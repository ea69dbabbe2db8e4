// Package telemetry carries the ambient observability stack: a
// package-level Logf writer for free-form run logs, slog.LogValuer
// structured summaries, Prometheus counters behind an injected
// Registerer, and a gocsv-backed per-tick metrics dump.
package telemetry

import (
	"fmt"
	"io"
)

var logWriter io.Writer

// SetLogWriter sets the destination for Logf output. A nil writer
// (the default) sends output to stdout.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log line to the configured writer.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}
