package styles_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/blockrules/internal/cli/styles"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestConfirmModel_DefaultsToNo(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Proceed?")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Done())
	assert.False(t, m.Result())
}

func TestConfirmModel_Yes(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Proceed?")

	m, _ = m.Update(runeKey('y'))
	assert.False(t, m.Done())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Done())
	assert.True(t, m.Result())
}

func TestConfirmModel_ArrowsToggle(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Proceed?")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, m.Yes)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, m.Yes)
}

func TestConfirmModel_Cancel(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Proceed?")

	m, _ = m.Update(runeKey('y'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.Done())
	assert.False(t, m.Result())
	assert.Contains(t, m.View(), "Proceed?")
}

func TestConfirmModel_DetailAndHelp(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Proceed?").WithDetail("/tmp/config.toml")

	view := m.View()
	assert.Contains(t, view, "/tmp/config.toml")
	assert.Contains(t, view, "enter")
	assert.Contains(t, view, "cancel")
}

func TestConfirmModel_IgnoresKeysWhenDone(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Proceed?")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(runeKey('y'))
	assert.False(t, m.Yes)
	assert.False(t, m.Result())
}
