// Package parser turns lines of the `.graph` text format into vertex and
// edge operations against a batch graph. A line is one of a vertex
// declaration (`v <id> <label>`), an edge declaration (`e`/`d`/`u` `<src>
// <dst> <label>`), a comment (`% ...`), or blank; anything else is a
// malformed line.
//
// The package also provides LabelTable, the vertex-id-to-label map (a string
// identifier resolves to the integer label of its most recent declaration).
// The implicit-vertex policy is applied by the stream driver, not here: an
// edge endpoint that has no declared label, or any endpoint not yet in the
// batch graph when implicit vertices are disabled, is reported as a
// SyntaxError; no vertex is ever fabricated with a default label.
package parser
