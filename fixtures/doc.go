// Package fixtures generates synthetic `.graph` text streams for tests and
// benchmarks: repeated triangles, repeated single edges, and deterministic
// vertex identifiers built from an injectable id-scheme function.
package fixtures
