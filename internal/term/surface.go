package term

// Surface is the canvas's only view of the terminal: size queries, raw
// text output, one saved cursor anchor, and relative cursor motion.
// Commands accumulate until Flush, which commits them in order and
// reports the first I/O error encountered.
type Surface interface {
	// Size returns the surface extent in columns and rows.
	Size() (width, height int, err error)

	// Print queues raw text at the current cursor position.
	Print(s string)

	// SaveAnchor queues saving the current cursor position.
	SaveAnchor()

	// RestoreAnchor queues restoring the saved cursor position.
	RestoreAnchor()

	// MoveUp, MoveDown and MoveRight queue relative cursor motion by
	// n cells. n <= 0 is a no-op.
	MoveUp(n int)
	MoveDown(n int)
	MoveRight(n int)

	// Flush commits all queued commands.
	Flush() error
}
