// Package viz renders pattern-dictionary entries as SVG. Vertices are
// drawn as labeled circles on a circular layout; edges are labeled line
// segments, with an arrowhead marker on directed patterns.
// VisualizeSeparate writes one SVG per pattern; VisualizeGrid tiles
// several patterns onto a single canvas.
package viz
