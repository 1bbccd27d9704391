// core/resolve/classify.go
package resolve

import "strings"

// Class is the disposition of one raw record line.
type Class int

const (
	Skip     Class = iota
	Standard       // assembly declared via a STANDARD refname
	Sequence       // assembly declared per sequence entry
)

const (
	standardMarker = "STANDARD "
	sequenceMarker = "SEQUENCE "
)

// Classify decides whether a line is worth extracting from.
// STANDARD lines that also mention the organism ("Homo sapiens" annotated
// under an attribute name colliding with the marker) are never assembly
// declarations and must not be read as such.
func Classify(line string) Class {
	if strings.Contains(line, standardMarker) &&
		!strings.Contains(strings.ToUpper(line), "HOMO") {
		return Standard
	}
	if strings.Contains(line, sequenceMarker) {
		return Sequence
	}
	return Skip
}
