package config

// Unbounded marks DictSize as having no configured upper bound (θ = +∞).
const Unbounded = -1

// Config gathers the six construction-time parameters a compressor needs.
//
//   - BatchSize (α): edges accumulated before a batch fires.
//   - DictSize (θ): dictionary trimming bound, or Unbounded.
//   - Directed: whether the graph stream is directed.
//   - MatchStrict: when false, subgraph matching ignores vertex/edge labels
//     entirely (a diagnostic mode).
//   - AddImplicitVertices: whether an edge may implicitly add an
//     undeclared endpoint using the vertex-id-to-label map.
//   - LabelHistoryPerFile: whether the vertex-id-to-label map is cleared
//     at the end of each input file rather than kept process-wide.
type Config struct {
	BatchSize           int
	DictSize            int
	Directed            bool
	MatchStrict         bool
	AddImplicitVertices bool
	LabelHistoryPerFile bool
}

// Option configures a Config. All Option functions modify the pointed
// Config in place.
type Option func(*Config)

// WithBatchSize sets α.
func WithBatchSize(n int) Option {
	return func(c *Config) { c.BatchSize = n }
}

// WithDictSize sets θ. Pass Unbounded for +∞.
func WithDictSize(n int) Option {
	return func(c *Config) { c.DictSize = n }
}

// WithDirected sets the directed flag.
func WithDirected(directed bool) Option {
	return func(c *Config) { c.Directed = directed }
}

// WithMatchStrict sets the match-strict flag.
func WithMatchStrict(strict bool) Option {
	return func(c *Config) { c.MatchStrict = strict }
}

// WithAddImplicitVertices sets the implicit-vertex policy.
func WithAddImplicitVertices(enabled bool) Option {
	return func(c *Config) { c.AddImplicitVertices = enabled }
}

// WithLabelHistoryPerFile sets the per-file label-history policy.
func WithLabelHistoryPerFile(enabled bool) Option {
	return func(c *Config) { c.LabelHistoryPerFile = enabled }
}

// Default returns the baseline configuration: batch_size=10, dict_size=+∞,
// directed=false, match_strict=true, add_implicit_vertices=true,
// label_history_per_file=false.
func Default() Config {
	return Config{
		BatchSize:           10,
		DictSize:            Unbounded,
		Directed:            false,
		MatchStrict:         true,
		AddImplicitVertices: true,
		LabelHistoryPerFile: false,
	}
}

// New builds a Config from Default(), applying opts in order, then
// validates it.
func New(opts ...Option) (Config, error) {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports a configuration error: non-positive batch size or
// dictionary bound (other than Unbounded).
func (c Config) Validate() error {
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.DictSize != Unbounded && c.DictSize <= 0 {
		return ErrInvalidDictSize
	}
	return nil
}
