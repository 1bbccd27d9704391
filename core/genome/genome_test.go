// core/genome/genome_test.go
package genome

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAccessionChromosomeFamily(t *testing.T) {
	assert.Equal(t, GRCh37, NormalizeAccession("CM000663.1"))
	assert.Equal(t, GRCh37, NormalizeAccession("CM000123.1"))
	assert.Equal(t, GRCh38, NormalizeAccession("CM000663.2"))
	assert.Equal(t, GRCh38, NormalizeAccession("CM000686.2"))
}

func TestNormalizeAccessionIsAnchored(t *testing.T) {
	// Substring occurrences must not rewrite; the doubled-attribute capture
	// accession="CM000663.1" depends on this falling through to NA.
	for _, tok := range []string{
		`accession="CM000663.1"`,
		"xCM000123.1",
		"CM000123.1x",
		"CM0001234.1",
		"CM000123.3",
	} {
		assert.Equal(t, tok, NormalizeAccession(tok), "token %q", tok)
	}
}

func TestNormalizeAccessionPassThrough(t *testing.T) {
	for _, tok := range []string{"GRCh37", "hg19", "NC_000001.10", "", "NA"} {
		assert.Equal(t, tok, NormalizeAccession(tok))
	}
}
