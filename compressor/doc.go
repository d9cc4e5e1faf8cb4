// Package compressor ties the graph, iso, pattern, batch, parser, stream,
// viz, and state packages together into a single public surface: construct
// once from a config, feed it `.graph` files, inspect or dump the
// resulting pattern dictionary, and save/restore its bookkeeping between
// runs.
package compressor
