package geom

import "math"

// GridPoint is a cell address on the canvas grid. Coordinates are
// non-negative; translation results use the signed Delta type so that
// subtraction is defined regardless of operand order.
type GridPoint struct {
	X, Y int
}

// Delta is a signed translation vector between two grid points.
type Delta struct {
	DX, DY int
}

func NewGridPoint(x, y int) GridPoint {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return GridPoint{X: x, Y: y}
}

// To returns the translation that moves p onto other, so that
// p.Add(p.To(other)) == other for any pair of points.
func (p GridPoint) To(other GridPoint) Delta {
	return Delta{DX: other.X - p.X, DY: other.Y - p.Y}
}

// Add applies a translation. Components that would go negative are
// pinned at zero, keeping grid coordinates non-negative.
func (p GridPoint) Add(d Delta) GridPoint {
	return NewGridPoint(p.X+d.DX, p.Y+d.DY)
}

// Sub is shorthand for other.To(p).
func (p GridPoint) Sub(other GridPoint) Delta {
	return other.To(p)
}

// Distance returns the Euclidean distance between two grid points.
func (p GridPoint) Distance(other GridPoint) float64 {
	dx := float64(other.X - p.X)
	dy := float64(other.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// DomainPoint is a point in arbitrary data-space units, used before a
// scaled viewbox maps it onto the grid.
type DomainPoint struct {
	X, Y float64
}

func NewDomainPoint(x, y float64) DomainPoint {
	return DomainPoint{X: x, Y: y}
}

// To returns the translation that moves p onto other.
func (p DomainPoint) To(other DomainPoint) DomainPoint {
	return DomainPoint{X: other.X - p.X, Y: other.Y - p.Y}
}

func (p DomainPoint) Add(other DomainPoint) DomainPoint {
	return DomainPoint{X: p.X + other.X, Y: p.Y + other.Y}
}

func (p DomainPoint) Sub(other DomainPoint) DomainPoint {
	return DomainPoint{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the Euclidean distance between two domain points.
func (p DomainPoint) Distance(other DomainPoint) float64 {
	d := p.To(other)
	return math.Sqrt(d.X*d.X + d.Y*d.Y)
}

// Clamp constrains n to [lower, upper].
func Clamp(n, lower, upper int) int {
	if n < lower {
		return lower
	}
	if n > upper {
		return upper
	}
	return n
}

// ClampF constrains n to [lower, upper].
func ClampF(n, lower, upper float64) float64 {
	return math.Max(lower, math.Min(n, upper))
}

// ClampPoint constrains each axis of p independently.
func ClampPoint(p GridPoint, xMin, xMax, yMin, yMax int) GridPoint {
	return GridPoint{X: Clamp(p.X, xMin, xMax), Y: Clamp(p.Y, yMin, yMax)}
}

// ClampDomainPoint constrains each axis of p independently.
func ClampDomainPoint(p DomainPoint, xMin, xMax, yMin, yMax float64) DomainPoint {
	return DomainPoint{X: ClampF(p.X, xMin, xMax), Y: ClampF(p.Y, yMin, yMax)}
}
