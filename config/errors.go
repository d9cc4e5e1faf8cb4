package config

import "errors"

// ErrInvalidBatchSize is returned when BatchSize is not a positive integer.
var ErrInvalidBatchSize = errors.New("config: batch_size must be positive")

// ErrInvalidDictSize is returned when DictSize is neither Unbounded nor a
// positive integer.
var ErrInvalidDictSize = errors.New("config: dict_size must be positive or Unbounded")
