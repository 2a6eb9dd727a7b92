// Package trace provides pull-level observability for seq chains.
//
// Stage wraps any node with OpenTelemetry counters (pulls requested,
// values yielded, exhaustions observed) and optional per-pull debug
// logging, without changing what flows through. Each traced chain carries
// a UUID chain ID so stages of one pipeline correlate across log lines
// and metric streams.
//
//	src := trace.Stage(seq.Range(0, 1000), "source")
//	odd := trace.Stage(seq.Filter(src, isOdd), "filter")
//	_ = seq.Collect(odd)
//
// Tracing is opt-in: a stage built from disabled settings is returned
// unwrapped, so a production chain pays nothing.
package trace
