package viz

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/ajstarks/svgo"

	"github.com/cpacker/graphzip/graph"
	"github.com/cpacker/graphzip/pattern"
)

const (
	canvasSize   = 240
	margin       = 30
	vertexRadius = 14
)

// layout places a pattern's vertices evenly around a circle inscribed in a
// canvasSize x canvasSize square.
func layout(g *graph.Graph) (xs, ys []int) {
	n := g.VertexCount()
	xs = make([]int, n)
	ys = make([]int, n)
	cx, cy := canvasSize/2, canvasSize/2
	if n == 1 {
		xs[0], ys[0] = cx, cy
		return xs, ys
	}
	radius := float64(canvasSize/2 - margin)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		xs[i] = cx + int(radius*math.Cos(theta))
		ys[i] = cy + int(radius*math.Sin(theta))
	}
	return xs, ys
}

// drawPattern renders g onto canvas, translated so its layout origin sits
// at (originX, originY) — used by VisualizeGrid to tile multiple patterns.
func drawPattern(canvas *svg.SVG, g *graph.Graph, originX, originY int) {
	xs, ys := layout(g)
	for i := range xs {
		xs[i] += originX
		ys[i] += originY
	}

	for _, e := range g.Edges() {
		canvas.Line(xs[e.Source], ys[e.Source], xs[e.Target], ys[e.Target], "stroke:#556;stroke-width:2")
		midX, midY := (xs[e.Source]+xs[e.Target])/2, (ys[e.Source]+ys[e.Target])/2
		canvas.Text(midX, midY, fmt.Sprintf("%d", e.Label), "font-size:10px;fill:#333")
		if g.Directed() {
			drawArrowhead(canvas, xs[e.Source], ys[e.Source], xs[e.Target], ys[e.Target])
		}
	}

	for i, label := range g.VertexLabels() {
		canvas.Circle(xs[i], ys[i], vertexRadius, "fill:#eef2ff;stroke:#223;stroke-width:2")
		canvas.Text(xs[i], ys[i]+4, fmt.Sprintf("%d", label), "font-size:12px;text-anchor:middle")
	}
}

// drawArrowhead draws a small filled triangle at the target end of the
// edge, backed off by the vertex radius so it sits at the circle's rim.
func drawArrowhead(canvas *svg.SVG, x1, y1, x2, y2 int) {
	const arrowLen = 10.0
	const arrowWidth = 5.0

	angle := math.Atan2(float64(y2-y1), float64(x2-x1))
	tipX := float64(x2) - vertexRadius*math.Cos(angle)
	tipY := float64(y2) - vertexRadius*math.Sin(angle)
	backX := tipX - arrowLen*math.Cos(angle)
	backY := tipY - arrowLen*math.Sin(angle)

	leftX := backX - arrowWidth*math.Sin(angle)
	leftY := backY + arrowWidth*math.Cos(angle)
	rightX := backX + arrowWidth*math.Sin(angle)
	rightY := backY - arrowWidth*math.Cos(angle)

	canvas.Polygon(
		[]int{int(tipX), int(leftX), int(rightX)},
		[]int{int(tipY), int(leftY), int(rightY)},
		"fill:#556",
	)
}

func writeOne(w io.Writer, g *graph.Graph) {
	canvas := svg.New(w)
	canvas.Start(canvasSize, canvasSize)
	canvas.Title("pattern")
	drawPattern(canvas, g, 0, 0)
	canvas.End()
}

// VisualizeSeparate writes one SVG file per entry into dir, named
// pattern-<index>-score-<score>.svg.
func VisualizeSeparate(dir string, entries []pattern.Entry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i, entry := range entries {
		path := filepath.Join(dir, fmt.Sprintf("pattern-%d-score-%d.svg", i, entry.Score))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		writeOne(f, entry.Graph)
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

// VisualizeGrid tiles the topN highest-scoring entries (pass topN <= 0 for
// all of them) onto a single SVG canvas written to w. Ties break by the
// entries' existing relative order, the same stable tie-break the
// dictionary's own Trim uses.
func VisualizeGrid(w io.Writer, entries []pattern.Entry, topN int) error {
	sorted := make([]pattern.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	if topN > 0 && topN < len(sorted) {
		sorted = sorted[:topN]
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(sorted)))))
	if cols == 0 {
		cols = 1
	}
	rows := int(math.Ceil(float64(len(sorted)) / float64(cols)))
	if rows == 0 {
		rows = 1
	}

	canvas := svg.New(w)
	canvas.Start(cols*canvasSize, rows*canvasSize)
	canvas.Title("pattern dictionary")
	for i, entry := range sorted {
		originX := (i % cols) * canvasSize
		originY := (i / cols) * canvasSize
		drawPattern(canvas, entry.Graph, originX, originY)
	}
	canvas.End()
	return nil
}
