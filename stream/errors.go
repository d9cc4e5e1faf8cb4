package stream

import "errors"

// ErrUndeclaredVertex is returned when an edge line names an endpoint that
// has never been declared and implicit-vertex addition is disabled, or
// that has no recorded label even though implicit addition is enabled.
var ErrUndeclaredVertex = errors.New("stream: edge references undeclared vertex")
