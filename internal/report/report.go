// internal/report/report.go
package report

import "sort"

// Report is one record's resolution outcome, tagged with its source file.
type Report struct {
	File     string
	Genome   string
	Resolved bool
}

// Sort orders reports by file path for deterministic output.
func Sort(rs []Report) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].File < rs[j].File })
}
