// Package state persists compressor bookkeeping — the
// (compress_count, lines_read, dict_trimmed, pattern_entries) tuple — as
// YAML via gopkg.in/yaml.v3. Pattern graphs, which have no external
// identifier scheme, serialize as parallel vertex-label / edge-label /
// edge-endpoint slices and are fully reconstructable from them alone.
package state
