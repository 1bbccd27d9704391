// Package writers turns per-file resolutions into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV, JSON, JSONL).
//   • The resolver stays domain-only; the pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
