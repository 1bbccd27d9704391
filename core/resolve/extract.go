// core/resolve/extract.go
package resolve

import (
	"regexp"

	"refid-core/genome"
)

// Captures are line-local and regex-based on purpose: real records carry
// partial and doubled attributes (accession="accession="…"") that a strict
// XML parser would reject, and those records must still scan cleanly.
var (
	refnameRe   = regexp.MustCompile(`refname="(\S+)"`)
	labelRe     = regexp.MustCompile(`label="(\S+)"`)
	accessionRe = regexp.MustCompile(`accession="(\S+)"`)

	// Genome names embedded in pipeline paths, e.g. …/ref_genome/hs37d5/2.
	refGenomePathRe = regexp.MustCompile(`/ref_genome/(\w+)/`)
)

func attr(re *regexp.Regexp, line string) string {
	if m := re.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return genome.Unknown
}

// Refname returns the refname attribute value, or the Unknown sentinel.
func Refname(line string) string { return attr(refnameRe, line) }

// Label returns the label attribute value, or the Unknown sentinel.
func Label(line string) string { return attr(labelRe, line) }

// Accession returns the accession attribute value, or the Unknown sentinel.
func Accession(line string) string { return attr(accessionRe, line) }

// RefGenomePath returns the path segment following /ref_genome/, or the
// Unknown sentinel.
func RefGenomePath(line string) string {
	if m := refGenomePathRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return genome.Unknown
}
