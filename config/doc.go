// Package config holds the compressor's construction-time parameters and
// the functional options used to set them.
package config
