package shape

import (
	"github.com/san-kum/gridplot/internal/canvas"
	"github.com/san-kum/gridplot/internal/geom"
	"github.com/san-kum/gridplot/internal/view"
)

// Rect draws the outline of a rectangle as four lines. The interior is
// left untouched.
type Rect struct {
	Position geom.GridPoint
	Size     geom.GridPoint
	Symbol   rune
}

func NewRect(position, size geom.GridPoint, symbol rune) Rect {
	return Rect{Position: position, Size: size, Symbol: symbol}
}

// NewRectInSVB builds a rectangle from domain coordinates, resolved
// through a scaled viewbox.
func NewRectInSVB(svb *view.ScaledViewBox, position, size geom.DomainPoint, symbol rune) Rect {
	return NewRect(svb.TranslateToPlot(position), svb.TranslateToPlot(size), symbol)
}

func (r Rect) Draw(c *canvas.Canvas) error {
	tl := r.Position
	tr := geom.GridPoint{X: r.Position.X + r.Size.X, Y: r.Position.Y}
	bl := geom.GridPoint{X: r.Position.X, Y: r.Position.Y + r.Size.Y}
	br := geom.GridPoint{X: r.Position.X + r.Size.X, Y: r.Position.Y + r.Size.Y}

	for _, edge := range []Line{
		NewLine(tl, tr, r.Symbol),
		NewLine(bl, br, r.Symbol),
		NewLine(tl, bl, r.Symbol),
		NewLine(tr, br, r.Symbol),
	} {
		if err := edge.Draw(c); err != nil {
			return err
		}
	}
	return nil
}

// DrawInBox draws the rectangle translated by the viewbox origin, onto
// the viewbox's canvas.
func (r Rect) DrawInBox(vb *view.ViewBox) error {
	shifted := geom.NewGridPoint(r.Position.X+vb.Origin.X, r.Position.Y+vb.Origin.Y)
	return NewRect(shifted, r.Size, r.Symbol).Draw(vb.Canvas)
}
