package shape

import (
	"math"
	"strings"

	"github.com/san-kum/gridplot/internal/canvas"
	"github.com/san-kum/gridplot/internal/geom"
	"github.com/san-kum/gridplot/internal/view"
)

// Line draws a straight run of one repeated symbol between two grid
// points.
type Line struct {
	Start  geom.GridPoint
	End    geom.GridPoint
	Symbol rune
}

func NewLine(start, end geom.GridPoint, symbol rune) Line {
	return Line{Start: start, End: end, Symbol: symbol}
}

// NewLineInSVB builds a line from domain coordinates, resolved through a
// scaled viewbox.
func NewLineInSVB(svb *view.ScaledViewBox, start, end geom.DomainPoint, symbol rune) Line {
	return NewLine(svb.TranslateToPlot(start), svb.TranslateToPlot(end), symbol)
}

// Draw dispatches on the delta between the endpoints: horizontal lines
// are one repeated run, vertical lines one multi-line placement, and
// everything else a scan-line rasterization along y. A zero delta on
// both axes degenerates to a single point.
func (l Line) Draw(c *canvas.Canvas) error {
	dx := l.End.X - l.Start.X
	dy := l.End.Y - l.Start.Y

	switch {
	case dx == 0 && dy == 0:
		return c.Put(l.Symbol, l.Start)
	case dy == 0:
		run := strings.Repeat(string(l.Symbol), abs(dx))
		start := geom.GridPoint{X: minInt(l.Start.X, l.End.X), Y: l.Start.Y}
		return c.PutString(run, start)
	case dx == 0:
		column := strings.Repeat(string(l.Symbol)+"\n", abs(dy))
		start := geom.GridPoint{X: l.Start.X, Y: minInt(l.Start.Y, l.End.Y)}
		return c.PutString(column, start)
	default:
		return l.drawSloped(c, dx, dy)
	}
}

// DrawInBox draws the line translated by the viewbox origin, onto the
// viewbox's canvas.
func (l Line) DrawInBox(vb *view.ViewBox) error {
	start := geom.NewGridPoint(l.Start.X+vb.Origin.X, l.Start.Y+vb.Origin.Y)
	end := geom.NewGridPoint(l.End.X+vb.Origin.X, l.End.Y+vb.Origin.Y)
	return NewLine(start, end, l.Symbol).Draw(vb.Canvas)
}

// drawSloped rasterizes a non-axis-aligned line one row at a time.
// stepX is the x advance per unit of y; the floating cursor starts at
// the lower endpoint's x and sweeps toward the other end. Each row
// covers [floor(min(prev,cur)), ceil(max(prev,cur))), a staircase one
// symbol wide per row. Rows are placed through the transparent path so
// the leading padding never erases earlier content.
func (l Line) drawSloped(c *canvas.Canvas, dx, dy int) error {
	stepX := float64(dx) / float64(dy)

	lowX := l.Start.X
	if l.End.Y < l.Start.Y {
		lowX = l.End.X
	}
	yMin := minInt(l.Start.Y, l.End.Y)
	yMax := maxInt(l.Start.Y, l.End.Y)
	baseX := minInt(l.Start.X, l.End.X)

	px := float64(lowX)
	var rows strings.Builder
	for y := yMin; y < yMax; y++ {
		prev := px
		px += stepX
		colStart := int(math.Floor(math.Min(prev, px)))
		colEnd := int(math.Ceil(math.Max(prev, px)))
		if colStart < baseX {
			colStart = baseX
		}
		rows.WriteString(strings.Repeat(" ", colStart-baseX))
		rows.WriteString(strings.Repeat(string(l.Symbol), colEnd-colStart))
		rows.WriteByte('\n')
	}
	return c.PutStringTransparent(rows.String(), geom.GridPoint{X: baseX, Y: yMin})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
