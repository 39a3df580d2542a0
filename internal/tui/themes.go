package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a lipgloss color set for the TUI chrome. Names match the GUI
// palettes so -theme means the same thing in both frontends.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Graph  lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:   "classic",
		Title:  lipgloss.Color("#f05096"),
		Accent: lipgloss.Color("#5078dc"),
		Text:   lipgloss.Color("#e8e8ee"),
		Muted:  lipgloss.Color("#666666"),
		Graph:  lipgloss.Color("#ff50a0"),
	}

	ThemeMidnight = Theme{
		Name:   "midnight",
		Title:  lipgloss.Color("#78d2ff"),
		Accent: lipgloss.Color("#c8a0ff"),
		Text:   lipgloss.Color("#dcdce6"),
		Muted:  lipgloss.Color("#445070"),
		Graph:  lipgloss.Color("#5ac8fa"),
	}

	ThemeEmber = Theme{
		Name:   "ember",
		Title:  lipgloss.Color("#ff8c46"),
		Accent: lipgloss.Color("#e65a6e"),
		Text:   lipgloss.Color("#f0e6dc"),
		Muted:  lipgloss.Color("#7a5648"),
		Graph:  lipgloss.Color("#ff7832"),
	}

	ThemeMono = Theme{
		Name:   "mono",
		Title:  lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#cccccc"),
		Text:   lipgloss.Color("#e0e0e0"),
		Muted:  lipgloss.Color("#888888"),
		Graph:  lipgloss.Color("#ffffff"),
	}

	Themes = []Theme{ThemeClassic, ThemeMidnight, ThemeEmber, ThemeMono}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// ThemeNames returns the available theme names in cycle order.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
