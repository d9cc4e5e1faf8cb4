package stream

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cpacker/graphzip/batch"
	"github.com/cpacker/graphzip/config"
	"github.com/cpacker/graphzip/graph"
	"github.com/cpacker/graphzip/parser"
	"github.com/cpacker/graphzip/pattern"
)

// Driver assembles batches of exactly cfg.BatchSize edges from a `.graph`
// input stream and invokes batch.Iterate at each boundary.
// A single Driver may Feed multiple files in sequence; the vertex-id-to-
// label map persists across files unless cfg.LabelHistoryPerFile is set.
type Driver struct {
	cfg    config.Config
	dict   *pattern.Dictionary
	labels *parser.LabelTable
	logger *zap.Logger

	linesRead int
	edgesRead int
}

// New constructs a Driver over dict using cfg. logger may be nil, in which
// case a no-op logger is used.
func New(cfg config.Config, dict *pattern.Dictionary, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{
		cfg:    cfg,
		dict:   dict,
		labels: parser.NewLabelTable(),
		logger: logger,
	}
}

// Dictionary returns the pattern dictionary this driver mutates.
func (d *Driver) Dictionary() *pattern.Dictionary {
	return d.dict
}

// LinesRead returns the cumulative number of lines read across every Feed
// call so far.
func (d *Driver) LinesRead() int {
	return d.linesRead
}

// EdgesRead returns the cumulative number of edges added to a batch graph
// across every Feed call so far (duplicates within a batch do not count).
func (d *Driver) EdgesRead() int {
	return d.edgesRead
}

// Feed reads r line by line, treating it as one `.graph` file named name
// (used only for error context and log fields). It returns the first
// input-format or I/O error encountered; an error aborts the remainder of
// this file and leaves the dictionary as it stood after the last
// successfully processed batch. The line and edge counters and the label
// declarations keep what was read before the error, and the per-file label
// reset does not run.
func (d *Driver) Feed(r io.Reader, name string) error {
	b := graph.New(d.cfg.Directed)
	index := make(map[string]int)
	lineNum := 0
	fileEdges := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		d.linesRead++
		raw := scanner.Text()

		parsed, err := parser.ParseLine(raw, lineNum)
		if err != nil {
			return fmt.Errorf("stream: %s: %w", name, err)
		}

		switch parsed.Kind {
		case parser.KindIgnorable:
			continue

		case parser.KindVertex:
			d.labels.Declare(parsed.VertexID, parsed.VertexLabel)

		case parser.KindEdge:
			srcPos, err := d.resolveVertex(b, index, parsed.Src, lineNum, raw)
			if err != nil {
				return fmt.Errorf("stream: %s: %w", name, err)
			}
			dstPos, err := d.resolveVertex(b, index, parsed.Dst, lineNum, raw)
			if err != nil {
				return fmt.Errorf("stream: %s: %w", name, err)
			}

			if b.AreConnected(srcPos, dstPos) {
				d.logger.Debug("duplicate edge suppressed", zap.Int("line", lineNum))
				continue
			}
			if _, err := b.AddEdge(srcPos, dstPos, parsed.EdgeLabel); err != nil {
				return fmt.Errorf("stream: %s: %w", name, err)
			}

			d.edgesRead++
			fileEdges++
			if fileEdges%d.cfg.BatchSize == 0 {
				if err := batch.Iterate(d.dict, b, d.cfg.MatchStrict, d.logger); err != nil {
					return fmt.Errorf("stream: %s: %w", name, err)
				}
				b = graph.New(d.cfg.Directed)
				index = make(map[string]int)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stream: %s: %w", name, err)
	}

	if b.EdgeCount() > 0 {
		if err := batch.Iterate(d.dict, b, d.cfg.MatchStrict, d.logger); err != nil {
			return fmt.Errorf("stream: %s: %w", name, err)
		}
	}

	d.logger.Info("finished file",
		zap.String("file", name),
		zap.Int("lines", lineNum),
		zap.Int("edges", fileEdges),
		zap.Int("dictionary_size", d.dict.Len()))

	if d.cfg.LabelHistoryPerFile {
		d.labels.Reset()
	}
	return nil
}

// resolveVertex maps an edge endpoint's string identifier to its position
// in the current batch graph b, adding it if necessary per the
// implicit-vertex policy.
func (d *Driver) resolveVertex(b *graph.Graph, index map[string]int, id string, lineNum int, raw string) (int, error) {
	if pos, ok := index[id]; ok {
		return pos, nil
	}
	if !d.cfg.AddImplicitVertices {
		return -1, &parser.SyntaxError{Line: lineNum, Text: raw, Err: ErrUndeclaredVertex}
	}
	label, ok := d.labels.Label(id)
	if !ok {
		return -1, &parser.SyntaxError{Line: lineNum, Text: raw, Err: ErrUndeclaredVertex}
	}
	pos := b.AddVertex(label)
	index[id] = pos
	return pos, nil
}
