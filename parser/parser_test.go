package parser

import (
	"errors"
	"testing"
)

func TestParseLineBlankAndComment(t *testing.T) {
	for _, raw := range []string{"", "   ", "% a comment", "%"} {
		line, err := ParseLine(raw, 1)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if line.Kind != KindIgnorable {
			t.Fatalf("expected KindIgnorable for %q, got %v", raw, line.Kind)
		}
	}
}

func TestParseLineVertex(t *testing.T) {
	line, err := ParseLine("v 7 42", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Kind != KindVertex || line.VertexID != "7" || line.VertexLabel != 42 {
		t.Fatalf("unexpected parse result: %+v", line)
	}
}

func TestParseLineEdgeForms(t *testing.T) {
	cases := []struct {
		raw  string
		form EdgeForm
	}{
		{"e a b 9", FormPlain},
		{"d a b 9", FormDirected},
		{"u a b 9", FormUndirected},
	}
	for _, c := range cases {
		line, err := ParseLine(c.raw, 1)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", c.raw, err)
		}
		if line.Kind != KindEdge || line.Src != "a" || line.Dst != "b" || line.EdgeLabel != 9 || line.Form != c.form {
			t.Fatalf("unexpected parse result for %q: %+v", c.raw, line)
		}
	}
}

func TestParseLineMalformed(t *testing.T) {
	cases := []string{"v 1", "e 1 2", "x 1 2 3", "v 1 notanumber", "e 1 2 notanumber"}
	for _, raw := range cases {
		_, err := ParseLine(raw, 3)
		if err == nil {
			t.Fatalf("expected error for %q", raw)
		}
		if !errors.Is(err, ErrMalformedLine) {
			t.Fatalf("expected ErrMalformedLine for %q, got %v", raw, err)
		}
		var syn *SyntaxError
		if !errors.As(err, &syn) {
			t.Fatalf("expected *SyntaxError for %q, got %T", raw, err)
		}
		if syn.Line != 3 || syn.Text != raw {
			t.Fatalf("expected line/text preserved, got %+v", syn)
		}
	}
}

func TestLabelTableDeclareAndReset(t *testing.T) {
	table := NewLabelTable()

	if _, ok := table.Label("a"); ok {
		t.Fatal("expected no label before declaration")
	}

	table.Declare("a", 1)
	label, ok := table.Label("a")
	if !ok || label != 1 {
		t.Fatalf("expected label 1, got %d, ok=%v", label, ok)
	}

	table.Declare("a", 2) // redeclaration overwrites
	label, ok = table.Label("a")
	if !ok || label != 2 {
		t.Fatalf("expected overwritten label 2, got %d", label)
	}

	table.Reset()
	if _, ok := table.Label("a"); ok {
		t.Fatal("expected label table cleared after Reset")
	}
}
