package shape

import (
	"github.com/san-kum/gridplot/internal/canvas"
	"github.com/san-kum/gridplot/internal/geom"
	"github.com/san-kum/gridplot/internal/view"
)

// Point places a single symbol at a grid position.
type Point struct {
	Position geom.GridPoint
	Symbol   rune
}

func NewPoint(position geom.GridPoint, symbol rune) Point {
	return Point{Position: position, Symbol: symbol}
}

// NewPointInSVB builds a point from domain coordinates, resolved through
// a scaled viewbox.
func NewPointInSVB(svb *view.ScaledViewBox, position geom.DomainPoint, symbol rune) Point {
	return NewPoint(svb.TranslateToPlot(position), symbol)
}

func (p Point) Draw(c *canvas.Canvas) error {
	return c.Put(p.Symbol, p.Position)
}

// DrawInBox draws the point translated by the viewbox origin, onto the
// viewbox's canvas.
func (p Point) DrawInBox(vb *view.ViewBox) error {
	shifted := geom.NewGridPoint(p.Position.X+vb.Origin.X, p.Position.Y+vb.Origin.Y)
	return NewPoint(shifted, p.Symbol).Draw(vb.Canvas)
}
