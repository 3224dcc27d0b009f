package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m SketchModel, keys ...string) SketchModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(SketchModel)
	}
	return m
}

func TestSketchStampPoint(t *testing.T) {
	m, err := NewSketch(20, 8, '*', "mono")
	if err != nil {
		t.Fatalf("new sketch: %v", err)
	}

	m = update(t, m, "l", "l", "j", " ")
	if got := m.rec.Cell(1, 2); got != '*' {
		t.Errorf("expected stamp at (2,1), got %q", got)
	}
}

func TestSketchLineNeedsTwoStamps(t *testing.T) {
	m, err := NewSketch(20, 8, '*', "mono")
	if err != nil {
		t.Fatalf("new sketch: %v", err)
	}

	m = update(t, m, "L", " ")
	if m.pending == nil {
		t.Fatal("first stamp should arm the line start")
	}
	m = update(t, m, "l", "l", "l", " ")
	if m.pending != nil {
		t.Error("second stamp should draw and disarm")
	}
	for x := 0; x < 3; x++ {
		if got := m.rec.Cell(0, x); got != '*' {
			t.Errorf("expected line cell at col %d, got %q", x, got)
		}
	}
}

func TestSketchClear(t *testing.T) {
	m, err := NewSketch(10, 4, '*', "mono")
	if err != nil {
		t.Fatalf("new sketch: %v", err)
	}

	m = update(t, m, " ", "c")
	if got := m.rec.Cell(0, 0); got != ' ' {
		t.Errorf("expected cleared cell, got %q", got)
	}
}

func TestSketchViewContainsChrome(t *testing.T) {
	m, err := NewSketch(10, 4, '*', "ocean")
	if err != nil {
		t.Fatalf("new sketch: %v", err)
	}

	out := m.View()
	if !strings.Contains(out, "gridplot sketch") {
		t.Error("view missing header")
	}
	if !strings.Contains(out, "tool: point") {
		t.Error("view missing status line")
	}
}
