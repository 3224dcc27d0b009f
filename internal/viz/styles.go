package viz

import "github.com/charmbracelet/lipgloss"

// Styles derived from a theme. Rebuilt whenever the theme cycles.
type Styles struct {
	Frame  lipgloss.Style
	Header lipgloss.Style
	Status lipgloss.Style
	Hint   lipgloss.Style
	Cursor lipgloss.Style
	Errors lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			MarginBottom(1),
		Status: lipgloss.NewStyle().
			Foreground(t.Text),
		Hint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent).
			Reverse(true),
		Errors: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error),
	}
}
