// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"refid/internal/report"
)

// StartFunc spins up a writer goroutine consuming reports from the returned
// channel; the error channel yields exactly one value after the input
// channel is closed.
type StartFunc func(out io.Writer, sort, header bool, bufSize int) (chan<- report.Report, <-chan error)

// ReportWriters maps an output format to its writer starter.
// Populated from init() blocks in the per-format files.
var ReportWriters = map[string]StartFunc{}

// Register installs a writer for a format (idempotent, last wins).
func Register(format string, fn StartFunc) { ReportWriters[format] = fn }

// Start dispatches to the registered writer for format.
func Start(format string, out io.Writer, sort, header bool, bufSize int) (chan<- report.Report, <-chan error, error) {
	fn, ok := ReportWriters[format]
	if !ok {
		return nil, nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	in, errCh := fn(out, sort, header, bufSize)
	return in, errCh, nil
}
