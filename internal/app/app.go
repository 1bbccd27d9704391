// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"refid-core/genome"
	"refid-core/resolve"
	"refid/internal/cli"
	"refid/internal/pipeline"
	"refid/internal/report"
	"refid/internal/synonyms"
	"refid/internal/version"
	"refid/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("refid")
	fs.SetOutput(io.Discard)

	showUsage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		return showUsage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return showUsage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		if rc := showUsage(); rc != 0 {
			return rc
		}
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "refid version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	table := genome.Default()
	if opts.SynonymFile != "" {
		overlay, err := synonyms.Load(opts.SynonymFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		if len(overlay) == 0 && !opts.Quiet {
			_, _ = fmt.Fprintf(stderr, "warning: synonym overlay %s is empty\n", opts.SynonymFile)
		}
		table = table.Merge(overlay)
	}
	res := resolve.New(table)

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	inCh, writeErr, err := writers.Start(opts.Output, outw, opts.Sort, opts.Header, thr*4)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	resolved := 0
	perr := pipeline.ForEachReport(
		ctx,
		pipeline.Config{Threads: thr},
		opts.XMLFiles,
		res,
		func(rep report.Report) error {
			if rep.Resolved {
				resolved++
			}
			select {
			case inCh <- rep:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}
	if resolved == 0 {
		return opts.UnresolvedExitCode
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
