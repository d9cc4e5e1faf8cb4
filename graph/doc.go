// Package graph is the labeled-multigraph primitive the rest of graphzip is
// built on.
//
// Vertices and edges are identified purely by their zero-based position in
// insertion order, not by any external name: pattern graphs carry no
// identity beyond structure, so position is all the identity they need. A
// Graph is either directed or undirected, fixed for its lifetime, and
// stores parallel label vectors for vertices and edges rather than a map of
// attributes.
//
// Incidence lookup always returns edges in both directions regardless of
// the directed flag ("ALL" semantics) — the batch-iterator extension step
// needs every edge touching a mapped vertex, not just its outgoing edges.
package graph
