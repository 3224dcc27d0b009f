package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the sketch mode chrome.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeMono = Theme{
		Name:    "mono",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#cccccc"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeEmber = Theme{
		Name:    "ember",
		Primary: lipgloss.Color("#ff6b6b"),
		Accent:  lipgloss.Color("#feca57"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Error:   lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{ThemeMono, ThemeOcean, ThemeEmber}
)

// GetTheme returns a theme by name, falling back to mono.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMono
}

// ThemeNames returns the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
