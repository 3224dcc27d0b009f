// Package canvas implements the anchored terminal drawing area.
//
// A canvas claims a block of terminal rows by scrolling blank lines
// into view and saving the cursor position beneath them as an anchor.
// Every placement is a short relative-motion sequence from that anchor,
// so the canvas needs no absolute screen addressing and coexists with
// whatever scrollback surrounds it:
//
//	c, _ := canvas.New(term.NewANSI(os.Stdout), 80, 24)
//	c.Put('*', geom.GridPoint{X: 10, Y: 5})
//	c.Finish()
//
// Resize transfers ownership: it returns a successor canvas and the old
// handle fails every operation with [ErrStaleCanvas]. The canvas is not
// safe for concurrent writers; a single goroutine must own the live
// handle.
package canvas
