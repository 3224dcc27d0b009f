// Package shape provides drawable primitives for the anchored terminal
// canvas: single points, axis-aligned and sloped lines, and rectangle
// outlines. Shapes are ephemeral values constructed per draw call; all
// placement goes through the canvas clip and cursor protocol.
package shape

import "github.com/san-kum/gridplot/internal/canvas"

// Drawable is anything that can render itself onto a canvas.
type Drawable interface {
	Draw(c *canvas.Canvas) error
}
