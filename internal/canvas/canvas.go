package canvas

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/san-kum/gridplot/internal/geom"
	"github.com/san-kum/gridplot/internal/term"
)

// ErrStaleCanvas is returned when a canvas handle is used after Resize
// produced a successor. The stale handle's anchor no longer matches the
// terminal, so every operation on it is refused.
var ErrStaleCanvas = errors.New("canvas: stale handle used after resize")

// session is shared by every canvas generation drawn against one
// surface. The generation counter identifies the live handle.
type session struct {
	surface term.Surface
	gen     int
}

// Canvas is a width x height character grid carved out of the terminal.
// All addressing is relative to an anchor row saved on the surface at
// creation time: a write restores the anchor, moves up Height-y rows and
// right x columns, then emits its content. Row y = 0 is the top of the
// grid and y = Height is the anchor row at the bottom.
//
// The clip bounds start at the full extent and every placement clamps
// into them. Resize invalidates the handle; keep only the returned one.
type Canvas struct {
	Width  int
	Height int

	// Clip bounds, inclusive. Invariant: 0 <= XMin <= XMax <= Width
	// and 0 <= YMin <= YMax <= Height.
	XMin, XMax int
	YMin, YMax int

	sess *session
	gen  int
}

// New scrolls height blank lines into the terminal, anchors the cursor
// beneath them, and returns a canvas with full clip bounds.
func New(surface term.Surface, width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: invalid extent %dx%d", width, height)
	}
	surface.Print(strings.Repeat("\n", height))
	surface.SaveAnchor()
	if err := surface.Flush(); err != nil {
		return nil, err
	}
	return &Canvas{
		Width:  width,
		Height: height,
		XMax:   width,
		YMax:   height,
		sess:   &session{surface: surface},
	}, nil
}

// Resize emits fresh blank lines above the old anchor, re-anchors, and
// returns the successor canvas. The receiver becomes stale: any further
// operation on it fails with ErrStaleCanvas.
func (c *Canvas) Resize(width, height int) (*Canvas, error) {
	if err := c.live(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: invalid extent %dx%d", width, height)
	}
	s := c.sess.surface
	s.RestoreAnchor()
	s.MoveUp(c.Height)
	s.Print(strings.Repeat("\n", height))
	s.SaveAnchor()
	if err := s.Flush(); err != nil {
		return nil, err
	}
	c.sess.gen++
	return &Canvas{
		Width:  width,
		Height: height,
		XMax:   width,
		YMax:   height,
		sess:   c.sess,
		gen:    c.sess.gen,
	}, nil
}

// SetBounds narrows the clip rectangle. Bounds are inclusive and must
// stay inside the canvas extent.
func (c *Canvas) SetBounds(xMin, xMax, yMin, yMax int) error {
	if xMin < 0 || xMax > c.Width || xMin > xMax ||
		yMin < 0 || yMax > c.Height || yMin > yMax {
		return fmt.Errorf("canvas: bounds [%d,%d]x[%d,%d] outside %dx%d extent",
			xMin, xMax, yMin, yMax, c.Width, c.Height)
	}
	c.XMin, c.XMax = xMin, xMax
	c.YMin, c.YMax = yMin, yMax
	return nil
}

// ClampToPlot constrains a point into the clip bounds, each axis
// independently. Out-of-range input degrades to the nearest in-bounds
// cell rather than failing.
func (c *Canvas) ClampToPlot(p geom.GridPoint) geom.GridPoint {
	return geom.ClampPoint(p, c.XMin, c.XMax, c.YMin, c.YMax)
}

// OriginBL returns a point dx columns in from the left and dy rows up
// from the anchor row, pre-clamped.
func (c *Canvas) OriginBL(dx, dy int) geom.GridPoint {
	return c.ClampToPlot(geom.NewGridPoint(dx, c.Height-dy))
}

// OriginBR returns a point dx columns in from the right and dy rows up
// from the anchor row, pre-clamped.
func (c *Canvas) OriginBR(dx, dy int) geom.GridPoint {
	return c.ClampToPlot(geom.NewGridPoint(c.Width-dx, c.Height-dy))
}

// DerivePointDec maps fractional coordinates in [0,1] onto the grid:
// (0,0) is the top-left cell and (1,1) the bottom-right, rounded to the
// nearest cell and clamped.
func (c *Canvas) DerivePointDec(fx, fy float64) geom.GridPoint {
	x := int(fx*float64(c.Width) + 0.5)
	y := int(fy*float64(c.Height) + 0.5)
	return c.ClampToPlot(geom.NewGridPoint(x, y))
}

// Clear overwrites the full width x height extent with blanks. This
// deliberately ignores the clip bounds; narrowed bounds only constrain
// placements.
func (c *Canvas) Clear() error {
	if err := c.live(); err != nil {
		return err
	}
	s := c.sess.surface
	s.RestoreAnchor()
	s.MoveUp(c.Height)
	s.Print(strings.Repeat(strings.Repeat(" ", c.Width)+"\n", c.Height))
	return s.Flush()
}

// Put writes one character at a clamped grid point.
func (c *Canvas) Put(symbol rune, p geom.GridPoint) error {
	if err := c.live(); err != nil {
		return err
	}
	actual := c.ClampToPlot(p)
	c.moveTo(actual)
	c.sess.surface.Print(string(symbol))
	return c.sess.surface.Flush()
}

// PutString writes text starting at a clamped grid point. Lines are
// split on newlines, each clipped to the columns remaining right of the
// start, and successive lines stay left-aligned at the start column.
// Whitespace overwrites existing content; use PutStringTransparent to
// preserve it.
func (c *Canvas) PutString(text string, start geom.GridPoint) error {
	if err := c.live(); err != nil {
		return err
	}
	s := c.sess.surface
	actual := c.ClampToPlot(start)
	c.moveTo(actual)
	for _, line := range strings.Split(text, "\n") {
		s.Print(clip(line, c.Width-actual.X))
		s.Print("\n")
		s.MoveRight(actual.X)
	}
	return s.Flush()
}

// PutStringTransparent writes text like PutString, but whitespace runs
// are emitted as cursor skips instead of spaces, so whatever was under
// them survives.
func (c *Canvas) PutStringTransparent(text string, start geom.GridPoint) error {
	if err := c.live(); err != nil {
		return err
	}
	s := c.sess.surface
	actual := c.ClampToPlot(start)
	c.moveTo(actual)
	for _, line := range strings.Split(text, "\n") {
		c.printTransparent(clip(line, c.Width-actual.X))
		s.Print("\n")
		s.MoveRight(actual.X)
	}
	return s.Flush()
}

// Finish parks the cursor one row below the anchor so normal scrolling
// resumes beneath the drawn region.
func (c *Canvas) Finish() error {
	if err := c.live(); err != nil {
		return err
	}
	s := c.sess.surface
	s.RestoreAnchor()
	s.MoveDown(1)
	return s.Flush()
}

func (c *Canvas) live() error {
	if c.gen != c.sess.gen {
		return ErrStaleCanvas
	}
	return nil
}

func (c *Canvas) moveTo(p geom.GridPoint) {
	s := c.sess.surface
	s.RestoreAnchor()
	s.MoveUp(c.Height - p.Y)
	s.MoveRight(p.X)
}

// printTransparent scans one line as alternating text and whitespace
// runs: text is printed, whitespace becomes a rightward cursor skip.
// Trailing whitespace emits nothing at all.
func (c *Canvas) printTransparent(line string) {
	s := c.sess.surface
	rest := line
	for len(rest) > 0 {
		i := strings.IndexFunc(rest, unicode.IsSpace)
		if i < 0 {
			s.Print(rest)
			return
		}
		s.Print(rest[:i])
		rest = rest[i:]
		j := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsSpace(r) })
		if j < 0 {
			return
		}
		s.MoveRight(utf8.RuneCountInString(rest[:j]))
		rest = rest[j:]
	}
}

// clip cuts a line down to at most max cells.
func clip(line string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(line)
	if len(runes) <= max {
		return line
	}
	return string(runes[:max])
}
