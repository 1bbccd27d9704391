// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"refid/internal/cliutil"
	"refid/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	XMLFiles    []string
	SynonymFile string

	// Performance
	Threads int

	// Output
	Output string // text | json | jsonl
	Sort   bool
	Header bool // true unless --no-header

	UnresolvedExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: declared reference-genome detection for analysis XML

License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// sliceValue appends each value to a *[]string (for --input/-i)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error {
	*s.dst = append(*s.dst, v)
	return nil
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positionals (and globs among them) are additional input files.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	inVal := &sliceValue{dst: &opt.XMLFiles}
	fs.Var(inVal, "input", "analysis XML file(s) (repeatable) or '-' for stdin")
	fs.Var(inVal, "i", "alias of --input")
	fs.StringVar(&opt.SynonymFile, "synonyms", "", "YAML overlay of extra raw→canonical synonyms")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.Sort, "sort", false, "sort reports by file path [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")
	fs.IntVar(&opt.UnresolvedExitCode, "unresolved-exit-code", 0, "exit code when every record yields NA [0]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.XMLFiles = append(opt.XMLFiles, exp...)

	return opt, Validate(&opt)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if len(o.XMLFiles) == 0 {
		return errors.New("at least one analysis XML file is required")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.UnresolvedExitCode < 0 || o.UnresolvedExitCode > 255 {
		return errors.New("--unresolved-exit-code must be between 0 and 255")
	}
	return nil
}
