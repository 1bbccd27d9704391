// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"refid-core/resolve"
	"refid/internal/report"
)

// Config controls the per-file resolution pool.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Resolver is the minimal contract the pipeline needs from the core.
type Resolver interface {
	ResolveReaderCtx(ctx context.Context, rd io.Reader) (resolve.Result, error)
}

type outcome struct {
	rep report.Report
	err error
}

// ForEachReport resolves each file once and streams one Report per readable
// file to visit, in completion order. An unreadable or unscannable file
// yields no Report; other files still run and still report. The first read
// error is returned after all files are attempted; a visit error takes
// precedence, since reports were dropped.
func ForEachReport(
	ctx context.Context,
	cfg Config,
	files []string,
	res Resolver,
	visit func(report.Report) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	jobs := make(chan string, cfg.Threads*2)
	results := make(chan outcome, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case path, ok := <-jobs:
					if !ok {
						return
					}
					o := resolveOne(ctx, res, path)
					select {
					case results <- o:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector serializes visit. Read errors are held aside so the
	// remaining files still report; only a visit error (the downstream
	// consumer gave up) stops further visits.
	var (
		readErr  error
		visitErr error
		cwg      sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for o := range results {
			if o.err != nil {
				if readErr == nil {
					readErr = o.err
				}
				continue
			}
			if visitErr != nil {
				continue
			}
			if err := visit(o.rep); err != nil {
				visitErr = err
			}
		}
	}()

	// Feed work
feed:
	for _, path := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- path:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if visitErr != nil {
		return visitErr
	}
	return readErr
}

func resolveOne(ctx context.Context, res Resolver, path string) outcome {
	rd, closeFn, err := openRecord(path)
	if err != nil {
		return outcome{err: err}
	}
	defer closeFn()

	r, err := res.ResolveReaderCtx(ctx, rd)
	if err != nil {
		return outcome{err: fmt.Errorf("%s: %w", path, err)}
	}
	return outcome{rep: report.Report{File: path, Genome: r.Genome, Resolved: r.Resolved}}
}

func openRecord(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, func() { _ = fh.Close() }, nil
}
