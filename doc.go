// Package graphzip implements a streaming graph-pattern compressor: it
// reads a line-oriented edge stream, repeatedly finds embeddings of
// previously-seen patterns, extends each by one layer of incident batch
// edges, and folds the
// residue of unmatched edges back into a pattern dictionary.
//
// The module is organized as:
//
//	graph/      — the labeled multigraph value type patterns and batches are built from
//	iso/        — label-aware subgraph isomorphism (VF2-style backtracking)
//	pattern/    — the dictionary: a scored, deduplicated multiset of pattern graphs
//	batch/      — the match/extend/install/cover-residue iteration over one batch
//	parser/     — the `.graph` line format and vertex-label bookkeeping
//	config/     — construction-time parameters (batch size, dictionary bound, ...)
//	stream/     — drives the parser and batch iterator across a line stream
//	compressor/ — top-level orchestration: file/stream compression, save/restore, dump
//	state/      — YAML persistence of dictionary + counters between runs
//	viz/        — SVG rendering of dictionary patterns
//	fixtures/   — synthetic `.graph` stream generators for tests and benchmarks
//	cmd/graphzip — the command-line front end (compress, dump, visualize)
package graphzip
