package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Theme holds every lipgloss style the terminal layer uses.
type Theme struct {
	// Palette maps screen buffer colors to terminal styles.
	Palette map[core.Color]lipgloss.Style

	// Scoreboard styles
	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Border      lipgloss.Color
	Selected    lipgloss.Style
	Empty       lipgloss.Style
	Help        lipgloss.Style
	Stats       lipgloss.Style
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// DefaultTheme returns the standard 256-color theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           fg("1"),
			core.ColorGreen:         fg("2"),
			core.ColorYellow:        fg("3"),
			core.ColorBlue:          fg("39"),
			core.ColorMagenta:       fg("5"),
			core.ColorCyan:          fg("6"),
			core.ColorWhite:         fg("7"),
			core.ColorBrightRed:     fg("9").Bold(true),
			core.ColorBrightGreen:   fg("10"),
			core.ColorBrightYellow:  fg("11").Bold(true),
			core.ColorBrightBlue:    fg("12"),
			core.ColorBrightMagenta: fg("13"),
			core.ColorBrightCyan:    fg("14"),
			core.ColorBrightWhite:   fg("15").Bold(true),
			core.ColorOrange:        fg("208"),
			core.ColorGray:          fg("240"),
		},

		Title:       fg("229").Bold(true).MarginBottom(1),
		TabActive:   fg("229").Background(lipgloss.Color("24")).Bold(true).Padding(0, 1),
		TabInactive: fg("241").Padding(0, 1),
		Border:      lipgloss.Color("240"),
		Selected:    fg("229").Background(lipgloss.Color("24")),
		Empty:       fg("241").Italic(true).Padding(2, 4),
		Help:        fg("241"),
		Stats:       fg("245"),
	}
}

// HighContrastTheme returns a theme for light or low-color terminals.
func HighContrastTheme() Theme {
	t := DefaultTheme()
	t.Palette[core.ColorBlue] = fg("12").Bold(true)
	t.Palette[core.ColorGray] = fg("8")
	t.Palette[core.ColorYellow] = fg("11").Bold(true)
	t.Palette[core.ColorRed] = fg("9").Bold(true)
	t.Selected = lipgloss.NewStyle().Reverse(true)
	t.TabActive = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	return t
}

// MonochromeTheme returns a theme without colors.
func MonochromeTheme() Theme {
	t := DefaultTheme()
	for c := range t.Palette {
		t.Palette[c] = lipgloss.NewStyle()
	}
	t.Palette[core.ColorBrightYellow] = lipgloss.NewStyle().Bold(true)
	t.Palette[core.ColorBrightRed] = lipgloss.NewStyle().Bold(true)
	t.Selected = lipgloss.NewStyle().Reverse(true)
	t.TabActive = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	return t
}

var themes = map[string]func() Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
	"mono":          MonochromeTheme,
}

// ThemeNames returns the names accepted by ThemeByName.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a named theme.
func ThemeByName(name string) (Theme, error) {
	f, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %v)", name, ThemeNames())
	}
	return f(), nil
}

// Global theme variable (can be changed at runtime)
var theme = DefaultTheme()

// SetTheme sets the theme used by every model created afterwards.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	return theme
}
