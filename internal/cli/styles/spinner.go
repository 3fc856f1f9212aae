package styles

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerKind selects the animation for a long-running step.
type SpinnerKind int

const (
	// SpinnerUpdate marks sources being read and compiled.
	SpinnerUpdate SpinnerKind = iota
	// SpinnerWrite marks files being written.
	SpinnerWrite
)

// NewSpinner returns a spinner in the theme's colors.
func NewSpinner(theme *Theme, kind SpinnerKind) spinner.Model {
	if kind == SpinnerWrite {
		return spinner.New(
			spinner.WithSpinner(spinner.Points),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Warning)),
		)
	}
	return spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
	)
}
