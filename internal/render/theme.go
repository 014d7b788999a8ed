package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used for human-readable output.
type Theme struct {
	Primary   lipgloss.Color // fragment source labels
	Success   lipgloss.Color // active pane marker
	Warning   lipgloss.Color // empty content notice
	TextMuted lipgloss.Color // inactive pane marker, counts
	Border    lipgloss.Color // separators
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#fab283"),
		Success:   lipgloss.Color("#7fd88f"),
		Warning:   lipgloss.Color("#f5a742"),
		TextMuted: lipgloss.Color("#808080"),
		Border:    lipgloss.Color("#484848"),
	}
}

// LightTheme returns a theme for bright terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#b35c00"),
		Success:   lipgloss.Color("#116329"),
		Warning:   lipgloss.Color("#bf8700"),
		TextMuted: lipgloss.Color("#656d76"),
		Border:    lipgloss.Color("#d0d7de"),
	}
}

// ThemeByName returns a theme by name. Defaults to dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

type styles struct {
	source   lipgloss.Style
	active   lipgloss.Style
	inactive lipgloss.Style
	warn     lipgloss.Style
	rule     lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		source:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		active:   lipgloss.NewStyle().Foreground(t.Success),
		inactive: lipgloss.NewStyle().Foreground(t.TextMuted),
		warn:     lipgloss.NewStyle().Foreground(t.Warning),
		rule:     lipgloss.NewStyle().Foreground(t.Border),
	}
}
