// internal/writers/text.go
package writers

import (
	"fmt"
	"io"

	"refid/internal/report"
)

func init() { Register("text", startText) }

// startText emits TSV, one "file<TAB>genome" row per record. With sort the
// reports are buffered and ordered by file path; otherwise they stream in
// completion order.
func startText(out io.Writer, sortOut, header bool, bufSize int) (chan<- report.Report, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan report.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		if sortOut {
			var buf []report.Report
			for r := range in {
				buf = append(buf, r)
			}
			report.Sort(buf)
			err = writeText(out, buf, header)
		} else {
			err = streamText(out, in, header)
		}
		errCh <- err
	}()

	return in, errCh
}

func writeText(w io.Writer, list []report.Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, "file\tgenome"); err != nil {
			return err
		}
	}
	for _, r := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.File, r.Genome); err != nil {
			return err
		}
	}
	return nil
}

func streamText(w io.Writer, in <-chan report.Report, header bool) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, "file\tgenome")
	}
	for r := range in {
		if err != nil {
			continue // drain
		}
		_, err = fmt.Fprintf(w, "%s\t%s\n", r.File, r.Genome)
	}
	return err
}
