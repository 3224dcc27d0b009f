package term

import (
	"io"
	"os"
	"testing"
)

// captureANSI runs fn against an ANSI surface backed by a pipe and
// returns everything it wrote.
func captureANSI(t *testing.T, fn func(a *ANSI)) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	a := NewANSI(w)
	fn(a)
	if err := a.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(out)
}

func TestANSIMotionSequences(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(a *ANSI)
		expected string
	}{
		{"up one", func(a *ANSI) { a.MoveUp(1) }, "\x1b[A"},
		{"up many", func(a *ANSI) { a.MoveUp(12) }, "\x1b[12A"},
		{"down", func(a *ANSI) { a.MoveDown(3) }, "\x1b[3B"},
		{"right", func(a *ANSI) { a.MoveRight(7) }, "\x1b[7C"},
		{"right three digits", func(a *ANSI) { a.MoveRight(120) }, "\x1b[120C"},
		{"zero is no-op", func(a *ANSI) { a.MoveUp(0) }, ""},
		{"negative is no-op", func(a *ANSI) { a.MoveRight(-4) }, ""},
		{"save", func(a *ANSI) { a.SaveAnchor() }, "\x1b7"},
		{"restore", func(a *ANSI) { a.RestoreAnchor() }, "\x1b8"},
		{"print", func(a *ANSI) { a.Print("xy") }, "xy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := captureANSI(t, tt.fn); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestANSIBatchesUntilFlush(t *testing.T) {
	got := captureANSI(t, func(a *ANSI) {
		a.RestoreAnchor()
		a.MoveUp(4)
		a.MoveRight(2)
		a.Print("*")
	})
	if got != "\x1b8\x1b[4A\x1b[2C*" {
		t.Errorf("unexpected sequence %q", got)
	}
}
