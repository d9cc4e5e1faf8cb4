package iso

import "github.com/cpacker/graphzip/graph"

// Mapping is an injective mapping from a pattern's vertex positions to a
// host graph's vertex positions: Mapping[i] is the host position that
// pattern position i maps to.
type Mapping []int

// IsIsomorphic reports whether a and b are label-preserving isomorphic:
// there exists a bijection between their vertices that preserves vertex
// labels and maps every edge of a to an edge of b with the same label and
// direction, and vice versa. Total and deterministic; never panics on
// well-formed input.
func IsIsomorphic(a, b *graph.Graph) bool {
	if a.VertexCount() != b.VertexCount() || a.EdgeCount() != b.EdgeCount() {
		return false
	}
	if a.VertexCount() == 0 {
		return true
	}

	m := &matcher{
		pattern: a,
		target:  b,
		strict:  true,
		mapping: make([]int, a.VertexCount()),
		used:    make([]bool, b.VertexCount()),
	}
	for i := range m.mapping {
		m.mapping[i] = -1
	}
	return m.search(0)
}

// EnumerateSubIsomorphisms yields every injective, label- and
// edge-direction-preserving mapping from small's vertices into big. The
// enumeration order is unspecified but deterministic for a given pair of
// graphs. Returns an empty (non-nil) slice if no embedding exists.
func EnumerateSubIsomorphisms(big, small *graph.Graph) []Mapping {
	return enumerateSubIsomorphisms(big, small, false)
}

// EnumerateSubIsomorphismsLoose is the diagnostic-mode counterpart used
// when a caller's match_strict configuration is false: it enumerates the
// same structural embeddings as EnumerateSubIsomorphisms but ignores vertex
// and edge labels entirely, matching on topology alone.
func EnumerateSubIsomorphismsLoose(big, small *graph.Graph) []Mapping {
	return enumerateSubIsomorphisms(big, small, true)
}

func enumerateSubIsomorphisms(big, small *graph.Graph, ignoreLabels bool) []Mapping {
	results := make([]Mapping, 0)
	if small.VertexCount() > big.VertexCount() || small.EdgeCount() > big.EdgeCount() {
		return results
	}
	if small.VertexCount() == 0 {
		return results
	}

	m := &matcher{
		pattern:      small,
		target:       big,
		strict:       false,
		ignoreLabels: ignoreLabels,
		mapping:      make([]int, small.VertexCount()),
		used:         make([]bool, big.VertexCount()),
		onFound: func(mapping []int) {
			cp := make(Mapping, len(mapping))
			copy(cp, mapping)
			results = append(results, cp)
		},
	}
	for i := range m.mapping {
		m.mapping[i] = -1
	}
	m.search(0)
	return results
}

// matcher holds the recursive VF2-style search state shared by the full
// isomorphism test and the subgraph enumeration.
//
// strict selects the feasibility rule: when true (IsIsomorphic), a
// candidate pair is feasible only if every already-mapped pattern edge has
// an exact counterpart in target AND vice versa (no extra target edges
// between mapped vertices are tolerated). When false
// (EnumerateSubIsomorphisms), only the forward direction is required —
// target is free to have additional structure around the embedding.
type matcher struct {
	pattern *graph.Graph
	target  *graph.Graph
	strict  bool

	// ignoreLabels selects the match_strict=false diagnostic mode: vertex
	// and edge labels are never consulted, only graph structure.
	ignoreLabels bool

	mapping []int // pattern position -> target position, -1 if unmapped
	used    []bool

	onFound func(mapping []int) // nil for IsIsomorphic, which stops at first match
}

// search extends the mapping at pattern position depth. Returns true (and,
// for IsIsomorphic, stops immediately) once a complete valid mapping is
// found; for enumeration it keeps searching after onFound is invoked.
func (m *matcher) search(depth int) bool {
	if depth == len(m.mapping) {
		if m.onFound != nil {
			m.onFound(m.mapping)
			return false
		}
		return true
	}

	pLabel, _ := m.pattern.VertexLabel(depth)

	for t := 0; t < m.target.VertexCount(); t++ {
		if m.used[t] {
			continue
		}
		if !m.ignoreLabels {
			tLabel, _ := m.target.VertexLabel(t)
			if pLabel != tLabel {
				continue
			}
		}
		if !m.feasible(depth, t) {
			continue
		}

		m.mapping[depth] = t
		m.used[t] = true

		if m.search(depth + 1) {
			return true
		}

		m.mapping[depth] = -1
		m.used[t] = false
	}
	return false
}

// feasible checks whether mapping pattern vertex p to target vertex t is
// consistent with every edge already committed between p and earlier
// pattern vertices. In a directed graph edges in both directions (p->q and
// q->p) are checked.
func (m *matcher) feasible(p, t int) bool {
	directed := m.pattern.Directed()
	for q := 0; q < p; q++ {
		tq := m.mapping[q]
		if tq < 0 {
			continue
		}

		if !edgeMultisetSubset(m.pattern, p, q, m.target, t, tq, m.ignoreLabels) {
			return false
		}
		if directed && !edgeMultisetSubset(m.pattern, q, p, m.target, tq, t, m.ignoreLabels) {
			return false
		}
		if m.strict && !edgeMultisetSubset(m.target, t, tq, m.pattern, p, q, m.ignoreLabels) {
			return false
		}
		if m.strict && directed && !edgeMultisetSubset(m.target, tq, t, m.pattern, q, p, m.ignoreLabels) {
			return false
		}
	}
	return true
}

// edgeMultisetSubset reports whether every distinct (label, direction) of
// edge between u and v in g also occurs between x and y in h. Direction is
// significant only when g (equivalently h — both graphs share the same
// orientation by construction) is directed. When ignoreLabels is true, only
// edge existence/direction is compared, not label equality.
func edgeMultisetSubset(g *graph.Graph, u, v int, h *graph.Graph, x, y int, ignoreLabels bool) bool {
	directed := g.Directed()
	if ignoreLabels {
		return !hasAnyEdge(g, u, v, directed) || hasAnyEdge(h, x, y, directed)
	}
	for _, label := range edgeLabelsBetween(g, u, v, directed) {
		if !hasEdgeLabel(h, x, y, label, directed) {
			return false
		}
	}
	return true
}

// hasAnyEdge reports whether g has an edge between x and y, direction
// sensitive when directed is true.
func hasAnyEdge(g *graph.Graph, x, y int, directed bool) bool {
	for _, pos := range g.Incident(x) {
		e := g.Edge(pos)
		if directed {
			if e.Source == x && e.Target == y {
				return true
			}
		} else if (e.Source == x && e.Target == y) || (e.Source == y && e.Target == x) {
			return true
		}
	}
	return false
}

// edgeLabelsBetween returns the distinct labels of edges between u and v in
// g, direction-sensitive when directed is true.
func edgeLabelsBetween(g *graph.Graph, u, v int, directed bool) []int {
	seen := make(map[int]bool)
	var out []int
	for _, pos := range g.Incident(u) {
		e := g.Edge(pos)
		if directed {
			if e.Source != u || e.Target != v {
				continue
			}
		} else {
			if !((e.Source == u && e.Target == v) || (e.Source == v && e.Target == u)) {
				continue
			}
		}
		if !seen[e.Label] {
			seen[e.Label] = true
			out = append(out, e.Label)
		}
	}
	return out
}

// hasEdgeLabel reports whether g has at least one edge between x and y
// carrying label, direction-sensitive when directed is true.
func hasEdgeLabel(g *graph.Graph, x, y, label int, directed bool) bool {
	for _, pos := range g.Incident(x) {
		e := g.Edge(pos)
		if e.Label != label {
			continue
		}
		if directed {
			if e.Source == x && e.Target == y {
				return true
			}
		} else {
			if (e.Source == x && e.Target == y) || (e.Source == y && e.Target == x) {
				return true
			}
		}
	}
	return false
}
