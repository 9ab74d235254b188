package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by the splash and main views.
type Theme struct {
	Name string

	Accent  string
	Text    string
	Muted   string
	Success string
	Warning string
	Danger  string
	Border  string
}

var themes = []Theme{
	{
		Name:    "Dracula",
		Accent:  "#bd93f9",
		Text:    "#f8f8f2",
		Muted:   "#6272a4",
		Success: "#50fa7b",
		Warning: "#f1fa8c",
		Danger:  "#ff5555",
		Border:  "#44475a",
	},
	{
		Name:    "Slate",
		Accent:  "#7dd3fc",
		Text:    "#e2e8f0",
		Muted:   "#64748b",
		Success: "#4ade80",
		Warning: "#facc15",
		Danger:  "#f87171",
		Border:  "#334155",
	},
}

// GetTheme returns the named theme, defaulting to the first one.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name following the given one, wrapping around.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Logo    lipgloss.Style
	Status  lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
	Panel   lipgloss.Style
}

// Styles builds the lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Logo:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
	}
}
