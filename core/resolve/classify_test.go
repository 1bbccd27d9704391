// core/resolve/classify_test.go
package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		line string
		want Class
	}{
		{"standard", `      <STANDARD refname="GRCh37"/>`, Standard},
		{"sequence", `      <SEQUENCE accession="CM000663.1" label="1"/>`, Sequence},
		{"plain xml", `  <ANALYSIS alias="run42">`, Skip},
		{"empty", "", Skip},
		{"standard organism lowercase", `<STANDARD refname="Homo sapiens"/>`, Skip},
		{"standard organism uppercase", `<STANDARD refname="HOMO SAPIENS"/>`, Skip},
		{"marker needs trailing space", `<STANDARDS>`, Skip},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.line))
		})
	}
}

func TestClassifyStandardBeatsSequenceOnSameLine(t *testing.T) {
	line := `<STANDARD refname="GRCh37"/><SEQUENCE label="1"/>`
	assert.Equal(t, Standard, Classify(line))
}

func TestClassifyHomoExcludedStandardStillSequence(t *testing.T) {
	// The HOMO exclusion only disqualifies the STANDARD reading; a line that
	// also carries a SEQUENCE marker is still scanned as a SEQUENCE line.
	line := `<STANDARD refname="Homo sapiens"/><SEQUENCE accession="CM000663.1"/>`
	assert.Equal(t, Sequence, Classify(line))
}
