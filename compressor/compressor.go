package compressor

import (
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/cpacker/graphzip/config"
	"github.com/cpacker/graphzip/pattern"
	"github.com/cpacker/graphzip/state"
	"github.com/cpacker/graphzip/stream"
	"github.com/cpacker/graphzip/viz"
)

// Compressor is the top-level driver a CLI or library caller interacts
// with: construction-time configuration, a running pattern dictionary, and
// the bookkeeping (compress_count, lines_read, dict_trimmed) that
// save/restore round-trips.
type Compressor struct {
	cfg    config.Config
	driver *stream.Driver
	logger *zap.Logger

	compressCount    int
	priorLinesRead   int
	priorDictTrimmed int
}

// New constructs a Compressor with a fresh, empty pattern dictionary sized
// to cfg.DictSize. logger may be nil.
func New(cfg config.Config, logger *zap.Logger) (*Compressor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dict, err := pattern.New(pattern.WithTheta(cfg.DictSize), pattern.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &Compressor{
		cfg:    cfg,
		driver: stream.New(cfg, dict, logger),
		logger: logger,
	}, nil
}

// FromSnapshot constructs a Compressor whose dictionary and bookkeeping
// counters resume exactly where snap left off, implementing the
// save/restore round-trip contract of the persisted-state format.
func FromSnapshot(cfg config.Config, snap state.Snapshot, logger *zap.Logger) (*Compressor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dict, err := snap.RestoreDictionary(pattern.WithTheta(cfg.DictSize), pattern.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &Compressor{
		cfg:              cfg,
		driver:           stream.New(cfg, dict, logger),
		logger:           logger,
		compressCount:    snap.CompressCount,
		priorLinesRead:   snap.LinesRead,
		priorDictTrimmed: snap.DictTrimmed,
	}, nil
}

// CompressFile opens path and feeds it through the stream driver,
// incrementing CompressCount once per call regardless of how many batches
// the file produces.
func (c *Compressor) CompressFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("compressor: %s: %w", path, err)
	}
	defer f.Close()

	c.compressCount++
	if err := c.driver.Feed(f, path); err != nil {
		return err
	}
	return nil
}

// CompressReader feeds r through the stream driver directly, as if it were
// the contents of a file named name, so callers such as the tests can
// exercise the compressor without touching the filesystem.
func (c *Compressor) CompressReader(r io.Reader, name string) error {
	c.compressCount++
	return c.driver.Feed(r, name)
}

// Dictionary returns the live pattern dictionary.
func (c *Compressor) Dictionary() *pattern.Dictionary {
	return c.driver.Dictionary()
}

// CompressCount returns how many files have been compressed so far,
// including any restored from a prior snapshot.
func (c *Compressor) CompressCount() int {
	return c.compressCount
}

// LinesRead returns the cumulative number of input lines read, including
// any restored from a prior snapshot.
func (c *Compressor) LinesRead() int {
	return c.priorLinesRead + c.driver.LinesRead()
}

// DictTrimmed returns the cumulative number of dictionary trims, including
// any restored from a prior snapshot.
func (c *Compressor) DictTrimmed() int {
	return c.priorDictTrimmed + c.driver.Dictionary().TrimCount()
}

// SaveState writes the compressor's full bookkeeping and dictionary to w.
func (c *Compressor) SaveState(w io.Writer) error {
	return state.Save(w, c.compressCount, c.LinesRead(), c.DictTrimmed(), c.Dictionary())
}

// VisualizeDictionarySeparate renders every dictionary entry as its own
// SVG file under dir.
func (c *Compressor) VisualizeDictionarySeparate(dir string) error {
	return viz.VisualizeSeparate(dir, c.Dictionary().Entries())
}

// VisualizeDictionaryGrid renders the topN highest-scoring dictionary
// entries (topN <= 0 for all of them) tiled onto one SVG written to w.
func (c *Compressor) VisualizeDictionaryGrid(w io.Writer, topN int) error {
	return viz.VisualizeGrid(w, c.Dictionary().Entries(), topN)
}

// Dump writes the dictionary in the canonical dictionary-dump text format,
// patterns ordered by descending score (ties broken by their existing
// relative order).
func (c *Compressor) Dump(w io.Writer) error {
	entries := c.Dictionary().Entries()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })

	for i, e := range entries {
		if _, err := fmt.Fprintf(w, "%% Pattern %d\n", i); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%% Score:  %d\n", e.Score); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%% Count:  %d\n", e.Count); err != nil {
			return err
		}
		for vi, label := range e.Graph.VertexLabels() {
			if _, err := fmt.Fprintf(w, "v %d %d\n", vi, label); err != nil {
				return err
			}
		}
		for _, edge := range e.Graph.Edges() {
			if _, err := fmt.Fprintf(w, "e %d %d %d\n", edge.Source, edge.Target, edge.Label); err != nil {
				return err
			}
		}
	}
	return nil
}
