// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestInputFlagRepeatable(t *testing.T) {
	o := mustParse(t, "--input", "a.xml", "--input", "b.xml")
	if len(o.XMLFiles) != 2 || o.XMLFiles[0] != "a.xml" {
		t.Errorf("bad input parse %+v", o)
	}
}

func TestPositionalsAppended(t *testing.T) {
	o := mustParse(t, "-i", "a.xml", "b.xml", "c.xml")
	if len(o.XMLFiles) != 3 {
		t.Errorf("want 3 inputs, got %+v", o.XMLFiles)
	}
}

func TestStdinPositional(t *testing.T) {
	o := mustParse(t, "-")
	if len(o.XMLFiles) != 1 || o.XMLFiles[0] != "-" {
		t.Errorf("want stdin input, got %+v", o.XMLFiles)
	}
}

func TestHeaderDefaultOnAndSuppressed(t *testing.T) {
	if o := mustParse(t, "a.xml"); !o.Header {
		t.Errorf("header should default on")
	}
	if o := mustParse(t, "--no-header", "a.xml"); o.Header {
		t.Errorf("--no-header should clear Header")
	}
}

func TestErrorNoInputs(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--output", "text"}); err == nil {
		t.Fatalf("expected error with no inputs")
	}
}

func TestErrorBadOutput(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--output", "xml", "a.xml"}); err == nil {
		t.Fatalf("expected error for bad --output")
	}
}

func TestErrorNegativeThreads(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--threads", "-1", "a.xml"}); err == nil {
		t.Fatalf("expected error for negative --threads")
	}
}

func TestErrorExitCodeRange(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"--unresolved-exit-code", "300", "a.xml"}); err == nil {
		t.Fatalf("expected error for out-of-range exit code")
	}
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version parse failed: %+v %v", o, err)
	}
}
