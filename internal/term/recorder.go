package term

import "fmt"

// Recorder is an in-memory Surface for tests and the interactive sketch
// mode. It replays cursor motion against a virtual cell grid and keeps a
// log of every command, so exact movement sequences can be asserted
// without a real terminal.
type Recorder struct {
	width  int
	height int

	rows      [][]rune
	curRow    int
	curCol    int
	anchorRow int
	anchorCol int

	ops      []string
	flushErr error
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// FailFlush makes every subsequent Flush return err.
func (r *Recorder) FailFlush(err error) {
	r.flushErr = err
}

func (r *Recorder) Size() (int, int, error) {
	return r.width, r.height, nil
}

func (r *Recorder) Print(s string) {
	r.ops = append(r.ops, fmt.Sprintf("print(%q)", s))
	for _, ch := range s {
		if ch == '\n' {
			r.curRow++
			r.curCol = 0
			continue
		}
		r.setCell(r.curRow, r.curCol, ch)
		r.curCol++
	}
}

func (r *Recorder) SaveAnchor() {
	r.ops = append(r.ops, "save")
	r.anchorRow = r.curRow
	r.anchorCol = r.curCol
}

func (r *Recorder) RestoreAnchor() {
	r.ops = append(r.ops, "restore")
	r.curRow = r.anchorRow
	r.curCol = r.anchorCol
}

func (r *Recorder) MoveUp(n int) {
	if n <= 0 {
		return
	}
	r.ops = append(r.ops, fmt.Sprintf("up(%d)", n))
	r.curRow -= n
	if r.curRow < 0 {
		r.curRow = 0
	}
}

func (r *Recorder) MoveDown(n int) {
	if n <= 0 {
		return
	}
	r.ops = append(r.ops, fmt.Sprintf("down(%d)", n))
	r.curRow += n
}

func (r *Recorder) MoveRight(n int) {
	if n <= 0 {
		return
	}
	r.ops = append(r.ops, fmt.Sprintf("right(%d)", n))
	r.curCol += n
}

func (r *Recorder) Flush() error {
	r.ops = append(r.ops, "flush")
	return r.flushErr
}

// Ops returns the command log accumulated so far.
func (r *Recorder) Ops() []string {
	return r.ops
}

// ResetOps clears the command log without touching the grid.
func (r *Recorder) ResetOps() {
	r.ops = nil
}

// Cell returns the rune written at a grid position, or space if the
// position was never touched.
func (r *Recorder) Cell(row, col int) rune {
	if row < 0 || row >= len(r.rows) || col < 0 || col >= len(r.rows[row]) {
		return ' '
	}
	return r.rows[row][col]
}

// Row renders one grid row as a string.
func (r *Recorder) Row(row int) string {
	if row < 0 || row >= len(r.rows) {
		return ""
	}
	return string(r.rows[row])
}

// String renders the whole grid, one line per row.
func (r *Recorder) String() string {
	out := ""
	for i := range r.rows {
		out += string(r.rows[i]) + "\n"
	}
	return out
}

// Fill stamps ch into every cell of the declared extent, giving tests a
// marker background to check transparent placement against.
func (r *Recorder) Fill(ch rune) {
	for row := 0; row <= r.height; row++ {
		for col := 0; col < r.width; col++ {
			r.setCell(row, col, ch)
		}
	}
}

func (r *Recorder) setCell(row, col int, ch rune) {
	if row < 0 || col < 0 {
		return
	}
	for len(r.rows) <= row {
		r.rows = append(r.rows, nil)
	}
	for len(r.rows[row]) <= col {
		r.rows[row] = append(r.rows[row], ' ')
	}
	r.rows[row][col] = ch
}
