// Package viz provides the interactive sketch mode and terminal
// styling for gridplot.
//
// The sketch mode is a Bubble Tea program backed by an in-memory
// recording surface: every stamp goes through the same canvas and shape
// pipeline the live terminal renderer uses, and the resulting cell grid
// is framed and displayed by View.
//
// # Key Bindings
//
//	Arrows/hjkl - Move the cursor
//	Space       - Stamp with the current tool
//	P, L, R     - Select point, line, or rectangle tool
//	C           - Clear the canvas
//	T           - Cycle color themes
//	Q           - Quit
package viz
