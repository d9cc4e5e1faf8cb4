package state

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cpacker/graphzip/graph"
	"github.com/cpacker/graphzip/pattern"
)

// PatternRecord is one dictionary entry's on-disk representation: a
// pattern graph flattened into parallel label/endpoint slices, plus the
// count and score it had at save time.
type PatternRecord struct {
	VertexLabels []int `yaml:"vertex_labels"`
	EdgeLabels   []int `yaml:"edge_labels"`
	EdgeSources  []int `yaml:"edge_sources"`
	EdgeTargets  []int `yaml:"edge_targets"`
	Directed     bool  `yaml:"directed"`
	Count        int   `yaml:"count"`
	Score        int   `yaml:"score"`
}

// Snapshot is the full persisted-state tuple: compress_count,
// lines_read, dict_trimmed, and pattern_entries.
type Snapshot struct {
	CompressCount int             `yaml:"compress_count"`
	LinesRead     int             `yaml:"lines_read"`
	DictTrimmed   int             `yaml:"dict_trimmed"`
	Patterns      []PatternRecord `yaml:"pattern_entries"`
}

// recordFromEntry flattens a pattern.Entry into its on-disk form.
func recordFromEntry(e pattern.Entry) PatternRecord {
	edges := e.Graph.Edges()
	sources := make([]int, len(edges))
	targets := make([]int, len(edges))
	labels := make([]int, len(edges))
	for i, edge := range edges {
		sources[i] = edge.Source
		targets[i] = edge.Target
		labels[i] = edge.Label
	}
	return PatternRecord{
		VertexLabels: e.Graph.VertexLabels(),
		EdgeLabels:   labels,
		EdgeSources:  sources,
		EdgeTargets:  targets,
		Directed:     e.Graph.Directed(),
		Count:        e.Count,
		Score:        e.Score,
	}
}

// Graph reconstructs the record's pattern graph.
func (r PatternRecord) Graph() (*graph.Graph, error) {
	g := graph.New(r.Directed)
	for _, label := range r.VertexLabels {
		g.AddVertex(label)
	}
	for i := range r.EdgeSources {
		if _, err := g.AddEdge(r.EdgeSources[i], r.EdgeTargets[i], r.EdgeLabels[i]); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Save writes a Snapshot of compressCount, linesRead, dictTrimmed, and
// every entry currently in dict to w as YAML.
func Save(w io.Writer, compressCount, linesRead, dictTrimmed int, dict *pattern.Dictionary) error {
	snap := Snapshot{
		CompressCount: compressCount,
		LinesRead:     linesRead,
		DictTrimmed:   dictTrimmed,
	}
	for _, e := range dict.Entries() {
		snap.Patterns = append(snap.Patterns, recordFromEntry(e))
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(snap)
}

// Load decodes a Snapshot from r.
func Load(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// RestoreDictionary rebuilds a *pattern.Dictionary from the snapshot's
// pattern_entries, using opts exactly as pattern.New would. Entries are
// appended via Dictionary.Restore, preserving their persisted counts
// rather than re-deriving them through Update; each score is recomputed
// from its count, and the persisted score field is not read.
func (snap Snapshot) RestoreDictionary(opts ...pattern.Option) (*pattern.Dictionary, error) {
	dict, err := pattern.New(opts...)
	if err != nil {
		return nil, err
	}
	for _, rec := range snap.Patterns {
		g, err := rec.Graph()
		if err != nil {
			return nil, err
		}
		if err := dict.Restore(g, rec.Count); err != nil {
			return nil, err
		}
	}
	return dict, nil
}
