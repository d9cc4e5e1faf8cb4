package iso

import (
	"testing"

	"github.com/cpacker/graphzip/graph"
)

func triangle(directed bool, labels [3]int, edgeLabel int) *graph.Graph {
	g := graph.New(directed)
	a := g.AddVertex(labels[0])
	b := g.AddVertex(labels[1])
	c := g.AddVertex(labels[2])
	g.AddEdge(a, b, edgeLabel)
	g.AddEdge(b, c, edgeLabel)
	g.AddEdge(c, a, edgeLabel)
	return g
}

func TestIsIsomorphicIdenticalTriangles(t *testing.T) {
	a := triangle(false, [3]int{1, 1, 1}, 9)
	b := triangle(false, [3]int{1, 1, 1}, 9)
	if !IsIsomorphic(a, b) {
		t.Fatal("expected identical triangles to be isomorphic")
	}
}

func TestIsIsomorphicLabelDiscrimination(t *testing.T) {
	a := triangle(false, [3]int{1, 1, 1}, 9)
	b := triangle(false, [3]int{1, 1, 2}, 9)
	if IsIsomorphic(a, b) {
		t.Fatal("expected vertex-label mismatch to break isomorphism")
	}
}

func TestIsIsomorphicSizeMismatch(t *testing.T) {
	a := triangle(false, [3]int{1, 1, 1}, 9)
	b := graph.New(false)
	b.AddVertex(1)
	b.AddVertex(1)
	if IsIsomorphic(a, b) {
		t.Fatal("expected differing vertex counts to never be isomorphic")
	}
}

func TestEnumerateSubIsomorphismsFindsTriangleInLargerGraph(t *testing.T) {
	big := graph.New(false)
	for i := 0; i < 6; i++ {
		big.AddVertex(1)
	}
	// two disjoint triangles: {0,1,2} and {3,4,5}
	big.AddEdge(0, 1, 9)
	big.AddEdge(1, 2, 9)
	big.AddEdge(2, 0, 9)
	big.AddEdge(3, 4, 9)
	big.AddEdge(4, 5, 9)
	big.AddEdge(5, 3, 9)

	pattern := triangle(false, [3]int{1, 1, 1}, 9)
	maps := EnumerateSubIsomorphisms(big, pattern)
	if len(maps) == 0 {
		t.Fatal("expected at least one embedding of the triangle pattern")
	}
	for _, m := range maps {
		if len(m) != 3 {
			t.Fatalf("expected mapping of length 3, got %d", len(m))
		}
		seen := map[int]bool{}
		for _, v := range m {
			if seen[v] {
				t.Fatalf("mapping is not injective: %v", m)
			}
			seen[v] = true
		}
	}
}

func TestEnumerateSubIsomorphismsEmptyWhenNoMatch(t *testing.T) {
	big := graph.New(false)
	a := big.AddVertex(1)
	b := big.AddVertex(1)
	big.AddEdge(a, b, 9)

	pattern := triangle(false, [3]int{1, 1, 1}, 9)
	maps := EnumerateSubIsomorphisms(big, pattern)
	if len(maps) != 0 {
		t.Fatalf("expected no embeddings, got %d", len(maps))
	}
}

func TestEnumerateSubIsomorphismsRespectsDirection(t *testing.T) {
	big := graph.New(true)
	a := big.AddVertex(1)
	b := big.AddVertex(2)
	big.AddEdge(b, a, 9) // b -> a, not a -> b

	pattern := graph.New(true)
	pa := pattern.AddVertex(1)
	pb := pattern.AddVertex(2)
	pattern.AddEdge(pa, pb, 9) // pa -> pb

	maps := EnumerateSubIsomorphisms(big, pattern)
	if len(maps) != 0 {
		t.Fatalf("expected direction mismatch to exclude the embedding, got %d", len(maps))
	}
}

func TestEnumerateSubIsomorphismsLooseIgnoresLabels(t *testing.T) {
	big := graph.New(false)
	a := big.AddVertex(1)
	b := big.AddVertex(2)
	big.AddEdge(a, b, 7)

	pattern := graph.New(false)
	pa := pattern.AddVertex(99)
	pb := pattern.AddVertex(99)
	pattern.AddEdge(pa, pb, 1)

	if len(EnumerateSubIsomorphisms(big, pattern)) != 0 {
		t.Fatal("expected strict mode to reject label mismatch")
	}
	if len(EnumerateSubIsomorphismsLoose(big, pattern)) == 0 {
		t.Fatal("expected loose mode to ignore labels and find the embedding")
	}
}
