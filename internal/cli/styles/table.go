package styles

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/blockrules/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Not focused, so nothing is highlighted.
	s.Selected = lipgloss.NewStyle().Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// SourceTableColumns returns columns for the rule source table.
func SourceTableColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Kind", Width: 10},
		{Title: "Result", Width: 26},
		{Title: "Rules", Width: 8},
		{Title: "Invalid", Width: 8},
		{Title: "Updated", Width: 10},
		{Title: "Next", Width: 10},
	}
}

// SourceRow converts a rule source to a table row, with times relative to now.
func SourceRow(s *entity.RuleSource, now time.Time) table.Row {
	result := s.FetchResult
	if result == "" {
		result = "-"
	}
	updated := "never"
	if s.UpdatedAt != nil {
		updated = RelativeTimeFrom(*s.UpdatedAt, now)
	}
	next := "due"
	if s.NextFetchAt != nil {
		next = UntilFrom(*s.NextFetchAt, now)
	}
	return table.Row{
		s.Name,
		string(s.Kind),
		result,
		formatInt(s.ValidRules),
		formatInt(s.InvalidRules + s.UnsupportedRules),
		updated,
		next,
	}
}

// RenderSourceTable renders sources as a static table.
func RenderSourceTable(theme *Theme, sources []*entity.RuleSource, now time.Time) string {
	columns := SourceTableColumns()
	rows := make([]table.Row, 0, len(sources))
	for _, s := range sources {
		rows = append(rows, SourceRow(s, now))
	}

	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	// Header row plus its border.
	t := NewStyledTable(theme, columns, rows, width, len(rows)+2)
	return t.View()
}

// formatInt formats an integer for display: 1234 -> 1.2K.
func formatInt(n int) string {
	switch {
	case n >= 1000000:
		return formatFloat(float64(n)/1000000) + "M"
	case n >= 1000:
		return formatFloat(float64(n)/1000) + "K"
	default:
		return strconv.Itoa(n)
	}
}

// formatFloat formats a float with at most one decimal, truncating.
func formatFloat(f float64) string {
	i := int(f * 10)
	if i%10 == 0 {
		return strconv.Itoa(i / 10)
	}
	return strconv.Itoa(i/10) + "." + strconv.Itoa(i%10)
}
