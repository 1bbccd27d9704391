// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"

	"refid/internal/report"
	"refid/pkg/api"
)

func init() {
	Register("json", startJSON)
	Register("jsonl", startJSONL)
}

// ToAPIReport converts the internal report to its stable wire form (v1).
func ToAPIReport(r report.Report) api.ReportV1 {
	return api.ReportV1{File: r.File, Genome: r.Genome, Resolved: r.Resolved}
}

// startJSON buffers everything and emits one JSON array.
func startJSON(out io.Writer, sortOut, _ bool, bufSize int) (chan<- report.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan report.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var buf []report.Report
		for r := range in {
			buf = append(buf, r)
		}
		if sortOut {
			report.Sort(buf)
		}
		rows := make([]api.ReportV1, 0, len(buf))
		for _, r := range buf {
			rows = append(rows, ToAPIReport(r))
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		errCh <- enc.Encode(rows)
	}()

	return in, errCh
}
