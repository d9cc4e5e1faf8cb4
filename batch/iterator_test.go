package batch

import (
	"testing"

	"github.com/cpacker/graphzip/graph"
	"github.com/cpacker/graphzip/pattern"
)

func mustDict(t *testing.T, opts ...pattern.Option) *pattern.Dictionary {
	t.Helper()
	d, err := pattern.New(opts...)
	if err != nil {
		t.Fatalf("unexpected error constructing dictionary: %v", err)
	}
	return d
}

// TestScenario1SingleTriangle: one 3-vertex triangle pattern, count 1, score 2.
func TestScenario1SingleTriangle(t *testing.T) {
	d := mustDict(t)

	b := graph.New(false)
	v1 := b.AddVertex(1)
	v2 := b.AddVertex(1)
	v3 := b.AddVertex(1)
	b.AddEdge(v1, v2, 9)
	b.AddEdge(v2, v3, 9)
	b.AddEdge(v1, v3, 9)

	if err := Iterate(d, b, true, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var triangleFound bool
	for _, e := range d.Entries() {
		if e.Graph.VertexCount() == 3 && e.Graph.EdgeCount() == 3 {
			triangleFound = true
			if e.Count != 1 || e.Score != 2 {
				t.Fatalf("expected triangle count=1 score=2, got count=%d score=%d", e.Count, e.Score)
			}
		}
	}
	if !triangleFound {
		t.Fatal("expected a 3-vertex/3-edge triangle pattern in the dictionary")
	}
}

// TestScenario2TwoDisjointTriangles: two batches, each a triangle; the
// dictionary should converge on one triangle pattern with count 2, score 2,
// and no spurious 6-vertex pattern.
func TestScenario2TwoDisjointTriangles(t *testing.T) {
	d := mustDict(t)

	makeTriangle := func() *graph.Graph {
		g := graph.New(false)
		a := g.AddVertex(1)
		b := g.AddVertex(1)
		c := g.AddVertex(1)
		g.AddEdge(a, b, 9)
		g.AddEdge(b, c, 9)
		g.AddEdge(a, c, 9)
		return g
	}

	if err := Iterate(d, makeTriangle(), true, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Iterate(d, makeTriangle(), true, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var triangleCount, spurious int
	for _, e := range d.Entries() {
		if e.Graph.VertexCount() == 3 && e.Graph.EdgeCount() == 3 {
			triangleCount++
			if e.Count != 2 || e.Score != 2 {
				t.Fatalf("expected triangle count=2 score=2, got count=%d score=%d", e.Count, e.Score)
			}
		}
		if e.Graph.VertexCount() >= 6 {
			spurious++
		}
	}
	if triangleCount != 1 {
		t.Fatalf("expected exactly one triangle entry, got %d", triangleCount)
	}
	if spurious != 0 {
		t.Fatalf("expected no spurious large pattern, found %d", spurious)
	}
}

// TestScenario3EdgeRepetition: alpha=1, theta=+inf, 5 repetitions of the
// same labeled edge should converge on one single-edge pattern, count 5,
// score 0.
func TestScenario3EdgeRepetition(t *testing.T) {
	d := mustDict(t)

	for i := 0; i < 5; i++ {
		b := graph.New(false)
		a := b.AddVertex(1)
		bb := b.AddVertex(2)
		b.AddEdge(a, bb, 7)
		if err := Iterate(d, b, true, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if d.Len() != 1 {
		t.Fatalf("expected exactly one pattern entry, got %d", d.Len())
	}
	e := d.Entries()[0]
	if e.Count != 5 || e.Score != 0 {
		t.Fatalf("expected count=5 score=0, got count=%d score=%d", e.Count, e.Score)
	}
}

// TestScenario5CycleClosure: a path a-b-c already in the dictionary (count
// 1); a batch containing the closing triangle extends the path into a
// triangle and also re-matches (and increments) the path itself.
func TestScenario5CycleClosure(t *testing.T) {
	d := mustDict(t)

	path := graph.New(false)
	pa := path.AddVertex(1)
	pb := path.AddVertex(1)
	pc := path.AddVertex(1)
	path.AddEdge(pa, pb, 9)
	path.AddEdge(pb, pc, 9)
	if err := d.Update(path); err != nil {
		t.Fatalf("unexpected error seeding dictionary: %v", err)
	}

	b := graph.New(false)
	a := b.AddVertex(1)
	bb := b.AddVertex(1)
	c := b.AddVertex(1)
	b.AddEdge(a, bb, 9)
	b.AddEdge(bb, c, 9)
	b.AddEdge(c, a, 9)

	if err := Iterate(d, b, true, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var pathEntry, triangleEntry *pattern.Entry
	entries := d.Entries()
	for i := range entries {
		e := &entries[i]
		if e.Graph.EdgeCount() == 2 {
			pathEntry = e
		}
		if e.Graph.EdgeCount() == 3 {
			triangleEntry = e
		}
	}
	if pathEntry == nil || pathEntry.Count != 2 {
		t.Fatalf("expected the path pattern's count incremented to 2, got %+v", pathEntry)
	}
	if triangleEntry == nil || triangleEntry.Count != 1 {
		t.Fatalf("expected a newly-inserted triangle pattern with count 1, got %+v", triangleEntry)
	}
}

// TestScenario6LabelDiscrimination: two batch triangles differing only in
// one vertex label must remain distinct dictionary entries.
func TestScenario6LabelDiscrimination(t *testing.T) {
	d := mustDict(t)

	makeTriangle := func(labels [3]int) *graph.Graph {
		g := graph.New(false)
		a := g.AddVertex(labels[0])
		b := g.AddVertex(labels[1])
		c := g.AddVertex(labels[2])
		g.AddEdge(a, b, 9)
		g.AddEdge(b, c, 9)
		g.AddEdge(a, c, 9)
		return g
	}

	if err := Iterate(d, makeTriangle([3]int{1, 1, 1}), true, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Iterate(d, makeTriangle([3]int{1, 1, 2}), true, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var triangles int
	for _, e := range d.Entries() {
		if e.Graph.VertexCount() == 3 && e.Graph.EdgeCount() == 3 {
			triangles++
		}
	}
	if triangles != 2 {
		t.Fatalf("expected 2 distinct triangle entries, got %d", triangles)
	}
}

// TestStrictSubgraphGuardSkipsEqualOrLargerPatterns: a pattern with
// |E(p)| >= |E(B)| never yields an embedding, even though one may exist
// structurally.
func TestStrictSubgraphGuardSkipsEqualOrLargerPatterns(t *testing.T) {
	d := mustDict(t)

	triangle := graph.New(false)
	a := triangle.AddVertex(1)
	bv := triangle.AddVertex(1)
	c := triangle.AddVertex(1)
	triangle.AddEdge(a, bv, 9)
	triangle.AddEdge(bv, c, 9)
	triangle.AddEdge(a, c, 9)
	if err := d.Update(triangle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Batch is exactly the same triangle: |E(p)| == |E(B)| should skip
	// matching entirely rather than re-recognizing the identical instance.
	b := graph.New(false)
	a2 := b.AddVertex(1)
	b2 := b.AddVertex(1)
	c2 := b.AddVertex(1)
	b.AddEdge(a2, b2, 9)
	b.AddEdge(b2, c2, 9)
	b.AddEdge(a2, c2, 9)

	if err := Iterate(d, b, true, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := d.Entries()
	for _, e := range entries {
		if e.Graph.VertexCount() == 3 && e.Graph.EdgeCount() == 3 && e.Count != 1 {
			t.Fatalf("expected the strict-subgraph guard to skip matching, count stayed 1, got %d", e.Count)
		}
	}
}
