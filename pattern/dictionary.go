package pattern

import (
	"sort"

	"go.uber.org/zap"

	"github.com/cpacker/graphzip/graph"
	"github.com/cpacker/graphzip/iso"
)

// Unbounded is the sentinel Theta value meaning the dictionary bound θ is
// +∞: trimming never fires.
const Unbounded = -1

// Entry is a single dictionary record: an immutable pattern graph together
// with its occurrence count and compression score.
type Entry struct {
	Graph *graph.Graph
	Count int
	Score int
}

// Score computes (|E(g)|-1)*(count-1), the heuristic compression score for
// a pattern seen count times.
func Score(g *graph.Graph, count int) int {
	return (g.EdgeCount() - 1) * (count - 1)
}

// Option configures a Dictionary at construction.
type Option func(*config)

type config struct {
	theta  int
	logger *zap.Logger
}

// WithTheta sets the dictionary bound θ. Pass pattern.Unbounded for +∞.
func WithTheta(theta int) Option {
	return func(c *config) { c.theta = theta }
}

// WithLogger attaches a structured logger; if omitted, a no-op logger is
// used and Dictionary operations are silent.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// Dictionary is the bounded, deduplicated pattern multiset of known
// patterns. Insertion order carries no semantic weight — only the
// set-of-(graph,count) content matters — but entries are kept in a slice so
// that ties during trimming break by original insertion order via a stable
// sort.
type Dictionary struct {
	entries []Entry
	theta   int
	trimmed int
	logger  *zap.Logger
}

// New constructs an empty Dictionary. With no options, θ defaults to
// Unbounded (+∞).
func New(opts ...Option) (*Dictionary, error) {
	cfg := config{theta: Unbounded, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.theta != Unbounded && cfg.theta <= 0 {
		return nil, ErrInvalidTheta
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return &Dictionary{theta: cfg.theta, logger: cfg.logger}, nil
}

// Len returns the current number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Theta returns the configured dictionary bound (Unbounded for +∞).
func (d *Dictionary) Theta() int {
	return d.theta
}

// TrimCount returns how many times Trim has actually truncated the
// dictionary, for telemetry.
func (d *Dictionary) TrimCount() int {
	return d.trimmed
}

// Entries returns a snapshot of the current entries, safe for the caller to
// range over while Update mutates the live dictionary afterward.
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Update compares pattern against every existing entry in order; on a
// label-preserving isomorphism match it increments that entry's count and
// recomputes its score. Otherwise it trims (if due) and appends pattern as
// a fresh entry with count 1.
func (d *Dictionary) Update(patternGraph *graph.Graph) error {
	if patternGraph == nil {
		return ErrNilPattern
	}

	for i, e := range d.entries {
		if e.Graph.VertexCount() != patternGraph.VertexCount() || e.Graph.EdgeCount() != patternGraph.EdgeCount() {
			continue
		}
		if iso.IsIsomorphic(e.Graph, patternGraph) {
			newCount := e.Count + 1
			d.entries[i] = Entry{Graph: e.Graph, Count: newCount, Score: Score(e.Graph, newCount)}
			d.logger.Debug("pattern recurrence",
				zap.Int("index", i), zap.Int("count", newCount), zap.Int("score", d.entries[i].Score))
			return nil
		}
	}

	d.Trim()

	d.entries = append(d.entries, Entry{Graph: patternGraph, Count: 1, Score: Score(patternGraph, 1)})
	d.logger.Debug("pattern inserted", zap.Int("dictionary_size", len(d.entries)))
	return nil
}

// Restore appends patternGraph directly with the given count (score
// recomputed from it), bypassing the isomorphism scan Update performs. It
// exists for the state package's load path: a persisted snapshot is
// already deduplicated by construction, so re-scanning for isomorphic
// matches on every restored entry would be both redundant and, for two
// patterns that happen to be isomorphic across a corrupted snapshot, would
// silently merge them instead of surfacing the inconsistency.
func (d *Dictionary) Restore(patternGraph *graph.Graph, count int) error {
	if patternGraph == nil {
		return ErrNilPattern
	}
	d.entries = append(d.entries, Entry{Graph: patternGraph, Count: count, Score: Score(patternGraph, count)})
	return nil
}

// Trim enforces a 2θ hysteresis: only when the
// dictionary exceeds 2θ does it sort by descending score (ties broken by
// stable, i.e. original insertion, order) and truncate to the top θ.
func (d *Dictionary) Trim() {
	if d.theta == Unbounded {
		return
	}
	if len(d.entries) <= 2*d.theta {
		return
	}

	sort.SliceStable(d.entries, func(i, j int) bool {
		return d.entries[i].Score > d.entries[j].Score
	})
	d.entries = d.entries[:d.theta]
	d.trimmed++
	d.logger.Info("dictionary trimmed", zap.Int("kept", d.theta), zap.Int("trim_count", d.trimmed))
}
