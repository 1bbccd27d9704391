// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"refid/internal/jsonlutil"
	"refid/internal/report"
)

// startJSONL streams each report as one JSON line (v1 schema).
// JSONL is inherently streaming; sort and header do not apply.
func startJSONL(out io.Writer, _, _ bool, bufSize int) (chan<- report.Report, <-chan error) {
	return jsonlutil.Start[report.Report](out, bufSize,
		func(enc *json.Encoder, r report.Report) error {
			return enc.Encode(ToAPIReport(r))
		},
		IsBrokenPipe,
	)
}
