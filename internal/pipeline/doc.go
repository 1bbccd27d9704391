// Package pipeline fans analysis XML files out to independent resolutions.
//
// The only contract to implement is Resolver (ResolveReaderCtx).
// This keeps the pipeline swappable and testable. The shared synonym table
// is read-only, so records need no coordination; the collector goroutine
// serializes visit calls.
package pipeline
