package fixtures

import (
	"fmt"
	"strings"
)

// IDScheme deterministically names the i-th vertex of a generated stream.
// DefaultIDScheme names them v0, v1, v2, ...
type IDScheme func(i int) string

// DefaultIDScheme is "v<i>".
func DefaultIDScheme(i int) string {
	return fmt.Sprintf("v%d", i)
}

// Option configures a generator.
type Option func(*options)

type options struct {
	idScheme IDScheme
}

// WithIDScheme overrides the vertex-naming scheme.
func WithIDScheme(scheme IDScheme) Option {
	return func(o *options) { o.idScheme = scheme }
}

func resolve(opts []Option) options {
	o := options{idScheme: DefaultIDScheme}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Triangles emits n disjoint triangles, each vertex labeled vertexLabel
// and each edge labeled edgeLabel, as `.graph` text.
func Triangles(n, vertexLabel, edgeLabel int, opts ...Option) string {
	o := resolve(opts)
	var sb strings.Builder
	for t := 0; t < n; t++ {
		a := o.idScheme(3 * t)
		b := o.idScheme(3*t + 1)
		c := o.idScheme(3*t + 2)
		fmt.Fprintf(&sb, "v %s %d\nv %s %d\nv %s %d\n", a, vertexLabel, b, vertexLabel, c, vertexLabel)
		fmt.Fprintf(&sb, "e %s %s %d\ne %s %s %d\ne %s %s %d\n", a, b, edgeLabel, b, c, edgeLabel, a, c, edgeLabel)
	}
	return sb.String()
}

// RepeatedEdge emits count repetitions of a single labeled edge between
// two fixed, pre-declared vertices.
func RepeatedEdge(count, srcLabel, dstLabel, edgeLabel int, opts ...Option) string {
	o := resolve(opts)
	src := o.idScheme(0)
	dst := o.idScheme(1)

	var sb strings.Builder
	fmt.Fprintf(&sb, "v %s %d\nv %s %d\n", src, srcLabel, dst, dstLabel)
	for i := 0; i < count; i++ {
		fmt.Fprintf(&sb, "e %s %s %d\n", src, dst, edgeLabel)
	}
	return sb.String()
}

// DistinctEdges emits n single edges with pairwise-distinct vertex-label
// pairs, so no two are isomorphic.
func DistinctEdges(n, edgeLabel int, opts ...Option) string {
	o := resolve(opts)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		src := o.idScheme(2 * i)
		dst := o.idScheme(2*i + 1)
		fmt.Fprintf(&sb, "v %s %d\nv %s %d\n", src, i, dst, i+1000)
		fmt.Fprintf(&sb, "e %s %s %d\n", src, dst, edgeLabel)
	}
	return sb.String()
}
