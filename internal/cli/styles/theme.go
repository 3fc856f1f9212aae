// Package styles renders blockrules output with lipgloss and hosts the small
// bubbletea components the interactive commands share.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of hex colors a Theme is built from.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Border     string
	Warning    string
	Error      string
}

// DarkPalette is the palette blockrules uses on every terminal.
var DarkPalette = Palette{
	Background: "#0a0a0b",
	Surface:    "#2d2d2d",
	Text:       "#ffffff",
	Muted:      "#909090",
	Accent:     "#4ade80",
	Border:     "#333333",
	Warning:    "#f59e0b",
	Error:      "#ef4444",
}

// Theme holds the colors and styles shared by the renderers.
type Theme struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	// Success is the accent; a successful fetch is the normal case.
	Success lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Badges used for fetch results and rule counts.
	Badge        lipgloss.Style
	BadgeMuted   lipgloss.Style
	BadgeWarning lipgloss.Style
	BadgeError   lipgloss.Style

	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
	Box            lipgloss.Style
}

// NewTheme returns the theme built from DarkPalette.
func NewTheme() *Theme {
	return NewThemeFromPalette(DarkPalette)
}

// NewThemeFromPalette builds a Theme and all its styles from p.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Surface:    lipgloss.Color(p.Surface),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Border:     lipgloss.Color(p.Border),
		Warning:    lipgloss.Color(p.Warning),
		Error:      lipgloss.Color(p.Error),
		Success:    lipgloss.Color(p.Accent),
	}

	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	t.WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)

	badge := lipgloss.NewStyle().Padding(0, 1)
	t.Badge = badge.Foreground(t.Background).Background(t.Accent)
	t.BadgeMuted = badge.Foreground(t.Text).Background(t.Surface)
	t.BadgeWarning = badge.Foreground(t.Background).Background(t.Warning)
	t.BadgeError = badge.Foreground(t.Text).Background(t.Error)

	t.ButtonActive = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)
	t.ButtonInactive = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 2)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	return t
}
