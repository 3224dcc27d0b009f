package view

import (
	"errors"
	"math"

	"github.com/san-kum/gridplot/internal/canvas"
	"github.com/san-kum/gridplot/internal/geom"
)

// ErrDegenerateDomain is returned when a scaled viewbox is given a
// zero-width domain on either axis, which would divide by zero during
// normalization.
var ErrDegenerateDomain = errors.New("view: scaled viewbox domain has zero extent")

// ViewBox restricts shapes to a sub-rectangle of a canvas by pure
// translation, without rescaling.
type ViewBox struct {
	Canvas *canvas.Canvas
	Origin geom.GridPoint
	Size   geom.GridPoint
}

func NewViewBox(c *canvas.Canvas, origin, size geom.GridPoint) *ViewBox {
	return &ViewBox{Canvas: c, Origin: origin, Size: size}
}

// TranslateToPlot converts viewbox-relative coordinates to canvas
// coordinates, clamped into the viewbox extent.
func (v *ViewBox) TranslateToPlot(p geom.GridPoint) geom.GridPoint {
	shifted := geom.NewGridPoint(p.X+v.Origin.X, p.Y+v.Origin.Y)
	return geom.ClampPoint(shifted, 0, v.Size.X, 0, v.Size.Y)
}

// ScaledViewBox is a ViewBox plus a linear domain-to-grid scale: points
// in [XMin,XMax] x [YMin,YMax] map onto the viewbox rectangle.
type ScaledViewBox struct {
	Canvas *canvas.Canvas
	Origin geom.GridPoint
	Size   geom.GridPoint

	XMin, XMax float64
	YMin, YMax float64
}

// NewScaledViewBox validates the domain up front; a collapsed axis is a
// configuration error, not a runtime NaN.
func NewScaledViewBox(c *canvas.Canvas, origin, size geom.GridPoint, xMin, xMax, yMin, yMax float64) (*ScaledViewBox, error) {
	if xMin == xMax || yMin == yMax {
		return nil, ErrDegenerateDomain
	}
	return &ScaledViewBox{
		Canvas: c,
		Origin: origin,
		Size:   size,
		XMin:   xMin,
		XMax:   xMax,
		YMin:   yMin,
		YMax:   yMax,
	}, nil
}

// TranslateToPlot maps a domain point onto the grid: clamp into the
// domain, min-max normalize each axis into [0,1], scale by the viewbox
// size truncating to whole cells, then offset by the origin. The domain
// minimum lands on the origin and the maximum on origin+size.
func (v *ScaledViewBox) TranslateToPlot(p geom.DomainPoint) geom.GridPoint {
	clamped := geom.ClampDomainPoint(p, v.XMin, v.XMax, v.YMin, v.YMax)
	normX := (clamped.X - v.XMin) / (v.XMax - v.XMin)
	normY := (clamped.Y - v.YMin) / (v.YMax - v.YMin)
	return geom.NewGridPoint(
		int(math.Floor(normX*float64(v.Size.X)))+v.Origin.X,
		int(math.Floor(normY*float64(v.Size.Y)))+v.Origin.Y,
	)
}
