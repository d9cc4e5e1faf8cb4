// Package iso implements the color-aware, VF2-style labeled
// subgraph-isomorphism engine the rest of graphzip treats as a required
// primitive: a total, deterministic IsIsomorphic test and an
// EnumerateSubIsomorphisms search, both pruned by vertex- and edge-label
// compatibility.
//
// The candidate-pair / feasibility / backtrack shape follows the VF2
// implementation in the retrieval pack's MCTS graph-algorithms package, but
// is rebuilt here around graph.Graph's position indices and extended to
// match on edge labels too, not just vertex labels, and to support
// multigraphs (parallel edges between the same pair of positions).
package iso
