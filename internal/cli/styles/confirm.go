package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmKeyMap holds the bindings of a ConfirmModel.
type ConfirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeyMap returns the bindings shown in the dialog help line.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y", "right", "l"), key.WithHelp("y/→", "yes")),
		No:      key.NewBinding(key.WithKeys("n", "left", "h"), key.WithHelp("n/←", "no")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ConfirmModel asks a yes/no question. It starts on "No".
type ConfirmModel struct {
	Message string
	// Detail is an optional line under the message, such as the file about
	// to be changed.
	Detail string

	Yes       bool
	Confirmed bool
	Canceled  bool

	keys  ConfirmKeyMap
	theme *Theme
}

// NewConfirm creates a dialog asking message.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		Message: message,
		keys:    DefaultConfirmKeyMap(),
		theme:   theme,
	}
}

// WithDetail returns a copy of m showing detail under the message.
func (m ConfirmModel) WithDetail(detail string) ConfirmModel {
	m.Detail = detail
	return m
}

// Update handles a key press. Keys are ignored once the dialog is done.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		m.Yes = true
	case key.Matches(keyMsg, m.keys.No):
		m.Yes = false
	case key.Matches(keyMsg, m.keys.Confirm):
		m.Confirmed = true
	case key.Matches(keyMsg, m.keys.Cancel):
		m.Canceled = true
	}
	return m, nil
}

// View renders the dialog in a box.
func (m ConfirmModel) View() string {
	t := m.theme

	no, yes := t.ButtonActive, t.ButtonInactive
	if m.Yes {
		no, yes = t.ButtonInactive, t.ButtonActive
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, no.Render("No"), "  ", yes.Render("Yes"))

	lines := []string{t.Title.Render(m.Message)}
	if m.Detail != "" {
		lines = append(lines, t.Subtle.Render(m.Detail))
	}
	lines = append(lines, "", buttons, "", m.help())

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m ConfirmModel) help() string {
	bindings := []key.Binding{m.keys.Yes, m.keys.No, m.keys.Confirm, m.keys.Cancel}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.theme.Highlight.Render(h.Key)+" "+m.theme.Subtle.Render(h.Desc))
	}
	return strings.Join(parts, m.theme.Subtle.Render(" · "))
}

// Done reports whether the user confirmed or canceled.
func (m ConfirmModel) Done() bool {
	return m.Confirmed || m.Canceled
}

// Result reports whether the user confirmed "Yes".
func (m ConfirmModel) Result() bool {
	return m.Confirmed && m.Yes
}
