package api

// ReportV1 is the stable JSON/JSONL schema for per-file resolutions.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	File     string `json:"file"`
	Genome   string `json:"genome"`
	Resolved bool   `json:"resolved"`
}
