package batch

import (
	"go.uber.org/zap"

	"github.com/cpacker/graphzip/graph"
	"github.com/cpacker/graphzip/iso"
	"github.com/cpacker/graphzip/pattern"
)

// Iterate consumes the current dictionary and a batch graph, mutating dict
// by calling its Update one or more times. matchStrict selects whether
// subgraph matching honors vertex/edge labels (true, the default) or
// ignores them entirely (false, a looser diagnostic mode).
func Iterate(dict *pattern.Dictionary, b *graph.Graph, matchStrict bool, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if b.EdgeCount() == 0 {
		return nil
	}

	taken := make([]bool, b.EdgeCount())
	var newPatterns []*graph.Graph

	// Step 1 — Match, against the snapshot taken at entry.
	snapshot := dict.Entries()
	for _, entry := range snapshot {
		p := entry.Graph
		if p.EdgeCount() >= b.EdgeCount() {
			continue
		}

		var maps []iso.Mapping
		if matchStrict {
			maps = iso.EnumerateSubIsomorphisms(b, p)
		} else {
			maps = iso.EnumerateSubIsomorphismsLoose(b, p)
		}

		// Step 2 — Extend, once per embedding.
		for _, phi := range maps {
			extended := extendEmbedding(p, b, phi, taken)
			if extended != nil {
				newPatterns = append(newPatterns, extended)
			}
		}
	}

	// Step 3 — Install extensions. The dictionary's own isomorphism test
	// deduplicates extensions produced from different embeddings or
	// different parent patterns.
	for _, g := range newPatterns {
		if err := dict.Update(g); err != nil {
			return err
		}
	}
	if len(newPatterns) > 0 {
		logger.Debug("installed extended patterns", zap.Int("count", len(newPatterns)))
	}

	// Step 4 — Cover the residue: every batch edge not claimed by an
	// extension becomes its own single-edge pattern, giving every edge a
	// baseline presence in the dictionary.
	covered := 0
	for i, e := range b.Edges() {
		if taken[i] {
			covered++
			continue
		}
		single := graph.New(b.Directed())
		srcLabel, _ := b.VertexLabel(e.Source)
		dstLabel, _ := b.VertexLabel(e.Target)
		s := single.AddVertex(srcLabel)
		t := single.AddVertex(dstLabel)
		single.AddEdge(s, t, e.Label)
		if err := dict.Update(single); err != nil {
			return err
		}
	}
	logger.Info("batch iterated",
		zap.Int("batch_edges", b.EdgeCount()),
		zap.Int("covered_by_extension", covered),
		zap.Int("dictionary_size", dict.Len()))
	return nil
}

// extendEmbedding builds the extension of pattern p under embedding phi
// into batch graph b, marking every edge it touches (in all three cases) as
// taken. Returns nil if the embedding yields no extension.
func extendEmbedding(p *graph.Graph, b *graph.Graph, phi iso.Mapping, taken []bool) *graph.Graph {
	// Gv_to_pv: the inverse of phi, restricted to its image — fixed for
	// the duration of this embedding and never updated as pNew grows.
	gvToPv := make(map[int]int, len(phi))
	for pv, gv := range phi {
		gvToPv[gv] = pv
	}

	var pNew *graph.Graph

	for pv, gv := range phi {
		bIncident := b.Incident(gv)
		pIncident := p.Incident(pv)
		// Fast pre-filter: no extension is possible at this
		// vertex unless B strictly outpaces p in incident-edge count here.
		if len(bIncident) <= len(pIncident) {
			continue
		}

		for _, edgePos := range bIncident {
			e := b.Edge(edgePos)
			srcMapped, srcOK := gvToPv[e.Source]
			dstMapped, dstOK := gvToPv[e.Target]

			switch {
			case srcOK && !dstOK:
				// Case (a): new target vertex hanging off the mapped source.
				if pNew == nil {
					pNew = p.Clone()
				}
				dstLabel, _ := b.VertexLabel(e.Target)
				newV := pNew.AddVertex(dstLabel)
				pNew.AddEdge(srcMapped, newV, e.Label)

			case dstOK && !srcOK:
				// Case (a), symmetric: new source vertex hanging off the
				// mapped target, direction preserved from B.
				if pNew == nil {
					pNew = p.Clone()
				}
				srcLabel, _ := b.VertexLabel(e.Source)
				newV := pNew.AddVertex(srcLabel)
				pNew.AddEdge(newV, dstMapped, e.Label)

			case srcOK && dstOK:
				// Case (b): both endpoints already embedded — a
				// cycle-closing edge, unless already present (case (c)).
				if !connectedInCurrent(pNew, p, srcMapped, dstMapped) {
					if pNew == nil {
						pNew = p.Clone()
					}
					pNew.AddEdge(srcMapped, dstMapped, e.Label)
				}
				// else: case (c), already covered — nothing to add.
			}

			// All three cases mark the edge taken, including case (c).
			taken[edgePos] = true
		}
	}

	return pNew
}

// connectedInCurrent reports whether u and v are already connected in
// whichever graph currently represents the pattern under construction:
// pNew if it has been cloned already, otherwise the original p (which is
// identical to an as-yet-unmodified pNew would be).
func connectedInCurrent(pNew, p *graph.Graph, u, v int) bool {
	if pNew != nil {
		return pNew.AreConnected(u, v)
	}
	return p.AreConnected(u, v)
}
