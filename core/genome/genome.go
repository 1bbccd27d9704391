// core/genome/genome.go
package genome

import "regexp"

// Canonical assembly names emitted by resolution.
const (
	GRCh37 = "GRCh37"
	GRCh38 = "GRCh38"
	HS37D5 = "hs37d5"
	HG17   = "hg17"

	// Unknown is the sentinel for "assembly undeclared or unrecognized".
	Unknown = "NA"
)

// GenBank chromosome accessions for the human primary assemblies form one
// family (CM000663–CM000686): version .1 is GRCh37, version .2 is GRCh38.
// Anchored: a token that merely contains an accession must not rewrite
// (doubled attributes in real records would otherwise resolve from garbage).
var (
	cmGRCh37 = regexp.MustCompile(`^CM000\d{3}\.1$`)
	cmGRCh38 = regexp.MustCompile(`^CM000\d{3}\.2$`)
)

// NormalizeAccession rewrites GenBank chromosome accessions to their
// assembly name. All other tokens pass through unchanged.
func NormalizeAccession(token string) string {
	switch {
	case cmGRCh37.MatchString(token):
		return GRCh37
	case cmGRCh38.MatchString(token):
		return GRCh38
	}
	return token
}
