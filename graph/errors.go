package graph

import "errors"

// ErrVertexOutOfRange is returned when a vertex position does not exist.
var ErrVertexOutOfRange = errors.New("graph: vertex position out of range")
