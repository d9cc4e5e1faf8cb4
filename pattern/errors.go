package pattern

import "errors"

// ErrNilPattern is returned by Update when handed a nil graph.
var ErrNilPattern = errors.New("pattern: nil pattern graph")

// ErrInvalidTheta is returned by New when θ is neither Unbounded nor a
// positive integer.
var ErrInvalidTheta = errors.New("pattern: theta must be positive or Unbounded")
