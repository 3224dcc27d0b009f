package term

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Pre-allocated escape fragments (avoid allocations during render)
var (
	csi         = []byte("\x1b[")
	escSaveCur  = []byte("\x1b7") // DECSC
	escRestore  = []byte("\x1b8") // DECRC
	escUpOne    = []byte("\x1b[A")
	escDownOne  = []byte("\x1b[B")
	escRightOne = []byte("\x1b[C")
)

// ANSI renders surface commands as escape sequences on a terminal file,
// buffered so a draw call flushes once.
type ANSI struct {
	file   *os.File
	writer *bufio.Writer
}

// NewANSI wraps a terminal file, normally os.Stdout.
func NewANSI(f *os.File) *ANSI {
	return &ANSI{
		file:   f,
		writer: bufio.NewWriterSize(f, 8192),
	}
}

func (a *ANSI) Size() (int, int, error) {
	w, h, err := term.GetSize(int(a.file.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return w, h, nil
}

func (a *ANSI) Print(s string) {
	a.writer.WriteString(s)
}

func (a *ANSI) SaveAnchor() {
	a.writer.Write(escSaveCur)
}

func (a *ANSI) RestoreAnchor() {
	a.writer.Write(escRestore)
}

func (a *ANSI) MoveUp(n int) {
	a.writeMotion(n, 'A', escUpOne)
}

func (a *ANSI) MoveDown(n int) {
	a.writeMotion(n, 'B', escDownOne)
}

func (a *ANSI) MoveRight(n int) {
	a.writeMotion(n, 'C', escRightOne)
}

func (a *ANSI) Flush() error {
	if err := a.writer.Flush(); err != nil {
		return fmt.Errorf("flush terminal output: %w", err)
	}
	return nil
}

func (a *ANSI) writeMotion(n int, final byte, single []byte) {
	if n <= 0 {
		return
	}
	if n == 1 {
		a.writer.Write(single)
		return
	}
	a.writer.Write(csi)
	writeInt(a.writer, n)
	a.writer.WriteByte(final)
}

// writeInt writes a non-negative integer without allocation.
// Terminal motion counts rarely exceed three digits.
func writeInt(w *bufio.Writer, n int) {
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}
