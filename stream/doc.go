// Package stream implements the stream driver: it reads `.graph` input
// line by line, assembles a running batch graph of exactly α edges,
// invokes the batch iterator at each boundary, and flushes any leftover
// partial batch at end-of-file.
package stream
