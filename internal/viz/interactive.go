package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/gridplot/internal/canvas"
	"github.com/san-kum/gridplot/internal/geom"
	"github.com/san-kum/gridplot/internal/shape"
	"github.com/san-kum/gridplot/internal/term"
)

type tool int

const (
	toolPoint tool = iota
	toolLine
	toolRect
)

func (t tool) String() string {
	switch t {
	case toolLine:
		return "line"
	case toolRect:
		return "rect"
	default:
		return "point"
	}
}

// SketchModel is the Bubble Tea model for the interactive sketch mode.
// Drawing happens on a real canvas backed by a recording surface, so
// the on-screen grid is exactly what the live terminal renderer would
// produce.
type SketchModel struct {
	rec    *term.Recorder
	canvas *canvas.Canvas
	width  int
	height int

	cursor  geom.GridPoint
	pending *geom.GridPoint
	tool    tool
	symbol  rune

	themeIdx int
	styles   Styles
	err      error
}

func NewSketch(width, height int, symbol rune, themeName string) (SketchModel, error) {
	rec := term.NewRecorder(width, height)
	c, err := canvas.New(rec, width, height)
	if err != nil {
		return SketchModel{}, err
	}
	idx := 0
	for i, t := range Themes {
		if t.Name == themeName {
			idx = i
		}
	}
	return SketchModel{
		rec:      rec,
		canvas:   c,
		width:    width,
		height:   height,
		symbol:   symbol,
		themeIdx: idx,
		styles:   NewStyles(Themes[idx]),
	}, nil
}

// RunSketch starts the interactive program and blocks until quit.
func RunSketch(m SketchModel) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m SketchModel) Init() tea.Cmd { return nil }

func (m SketchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.cursor = m.clampCursor(m.cursor.X-1, m.cursor.Y)
	case "right", "l":
		m.cursor = m.clampCursor(m.cursor.X+1, m.cursor.Y)
	case "up", "k":
		m.cursor = m.clampCursor(m.cursor.X, m.cursor.Y-1)
	case "down", "j":
		m.cursor = m.clampCursor(m.cursor.X, m.cursor.Y+1)
	case "p":
		m.tool = toolPoint
		m.pending = nil
	case "L":
		m.tool = toolLine
		m.pending = nil
	case "r":
		m.tool = toolRect
		m.pending = nil
	case "esc":
		m.pending = nil
	case "c":
		m.err = m.canvas.Clear()
	case "t":
		m.themeIdx = (m.themeIdx + 1) % len(Themes)
		m.styles = NewStyles(Themes[m.themeIdx])
	case " ", "enter":
		m = m.stamp()
	}
	return m, nil
}

func (m SketchModel) stamp() SketchModel {
	switch m.tool {
	case toolPoint:
		m.err = shape.NewPoint(m.cursor, m.symbol).Draw(m.canvas)
	case toolLine:
		if m.pending == nil {
			start := m.cursor
			m.pending = &start
			return m
		}
		m.err = shape.NewLine(*m.pending, m.cursor, m.symbol).Draw(m.canvas)
		m.pending = nil
	case toolRect:
		if m.pending == nil {
			corner := m.cursor
			m.pending = &corner
			return m
		}
		pos := geom.GridPoint{
			X: minInt(m.pending.X, m.cursor.X),
			Y: minInt(m.pending.Y, m.cursor.Y),
		}
		size := geom.GridPoint{
			X: absInt(m.cursor.X - m.pending.X),
			Y: absInt(m.cursor.Y - m.pending.Y),
		}
		m.err = shape.NewRect(pos, size, m.symbol).Draw(m.canvas)
		m.pending = nil
	}
	return m
}

func (m SketchModel) View() string {
	var rows []string
	for y := 0; y < m.height; y++ {
		row := []rune(m.rec.Row(y))
		for len(row) < m.width {
			row = append(row, ' ')
		}
		row = row[:m.width]
		line := string(row)
		if y == m.cursor.Y {
			line = string(row[:m.cursor.X]) +
				m.styles.Cursor.Render(string(row[m.cursor.X])) +
				string(row[m.cursor.X+1:])
		}
		rows = append(rows, line)
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("gridplot sketch"))
	b.WriteString("\n")
	b.WriteString(m.styles.Frame.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	status := fmt.Sprintf("tool: %s  cursor: (%d,%d)  theme: %s",
		m.tool, m.cursor.X, m.cursor.Y, Themes[m.themeIdx].Name)
	if m.pending != nil {
		status += fmt.Sprintf("  from: (%d,%d)", m.pending.X, m.pending.Y)
	}
	b.WriteString(m.styles.Status.Render(status))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Errors.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Hint.Render("arrows move | space stamps | p/L/r tools | c clear | t theme | q quit"))
	return b.String()
}

func (m SketchModel) clampCursor(x, y int) geom.GridPoint {
	return geom.ClampPoint(geom.GridPoint{X: x, Y: y}, 0, m.width-1, 0, m.height-1)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
