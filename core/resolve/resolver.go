// core/resolve/resolver.go
package resolve

import (
	"bufio"
	"context"
	"io"

	"refid-core/genome"
)

// Attribute blobs in real records run long; 4 MiB covers observed inputs.
const maxLineBytes = 4 << 20

// Result is the outcome of scanning one record.
type Result struct {
	Genome   string
	Resolved bool
}

// Resolver scans record lines for a declared reference genome. It holds no
// per-record state, so one Resolver may serve concurrent resolutions.
type Resolver struct {
	table genome.Table
}

// New creates a Resolver over the given synonym table.
func New(table genome.Table) *Resolver { return &Resolver{table: table} }

// sequenceFields is the fixed extraction priority for SEQUENCE lines.
// An earlier field wins even when a later field on the same line would
// also resolve.
var sequenceFields = []func(string) string{RefGenomePath, Label, Accession}

// resolveLine runs one scanning step; ok is true once the record resolved.
func (r *Resolver) resolveLine(line string) (string, bool) {
	switch Classify(line) {
	case Standard:
		if name, ok := r.table.Resolve(Refname(line)); ok {
			return name, true
		}
	case Sequence:
		for _, extract := range sequenceFields {
			if name, ok := r.table.Resolve(extract(line)); ok {
				return name, true
			}
		}
	}
	return genome.Unknown, false
}

// ResolveLines resolves an in-memory record. Lines after the first
// confident match are never examined.
func (r *Resolver) ResolveLines(lines []string) Result {
	for _, line := range lines {
		if name, ok := r.resolveLine(line); ok {
			return Result{Genome: name, Resolved: true}
		}
	}
	return Result{Genome: genome.Unknown}
}

// ResolveReaderCtx scans one record line by line, stopping at the first
// confident match. A read error is fatal for the record: no Result is
// reported alongside it.
func (r *Resolver) ResolveReaderCtx(ctx context.Context, rd io.Reader) (Result, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 64<<10), maxLineBytes)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return Result{Genome: genome.Unknown}, err
		}
		if name, ok := r.resolveLine(sc.Text()); ok {
			return Result{Genome: name, Resolved: true}, nil
		}
	}
	if err := sc.Err(); err != nil {
		return Result{Genome: genome.Unknown}, err
	}
	return Result{Genome: genome.Unknown}, nil
}

// ResolveReader is the legacy helper that uses a background context.
func (r *Resolver) ResolveReader(rd io.Reader) (Result, error) {
	return r.ResolveReaderCtx(context.Background(), rd)
}
