package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/blockrules/internal/filtering/rules"
	infrafiltering "github.com/bnema/blockrules/internal/infrastructure/filtering"
)

// RulesetRenderer renders parse, compile and update outcomes.
type RulesetRenderer struct {
	theme *Theme
}

// NewRulesetRenderer creates a new ruleset renderer with the given theme.
func NewRulesetRenderer(theme *Theme) *RulesetRenderer {
	return &RulesetRenderer{theme: theme}
}

// RenderParseResult renders the metadata and rule counts of a parsed list.
func (r *RulesetRenderer) RenderParseResult(path string, result *rules.ParseResult) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Normal

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s %s %s\n",
		iconStyle.Render(IconFile),
		r.theme.Title.Render(path),
		r.theme.FetchResultBadge(result.FetchResult.String()),
	)

	meta := result.Metadata
	fields := []struct{ key, val string }{
		{"Title", meta.Title},
		{"Homepage", meta.Homepage},
		{"License", meta.License},
		{"Version", meta.Version},
	}
	if meta.Expires > 0 {
		fields = append(fields, struct{ key, val string }{"Expires", FormatExpires(meta.Expires)})
	}
	for _, f := range fields {
		if f.val == "" {
			continue
		}
		fmt.Fprintf(&sb, "    %s %s\n", keyStyle.Render(fmt.Sprintf("%-9s", f.key)), valStyle.Render(f.val))
	}

	fmt.Fprintf(&sb, "\n    %s %s %s\n",
		r.theme.CountBadge(len(result.RequestFilterRules), "request"),
		r.theme.CountBadge(len(result.CosmeticRules), "cosmetic"),
		r.theme.CountBadge(len(result.ScriptletInjectionRules), "scriptlet"),
	)
	fmt.Fprintf(&sb, "    %s\n", r.renderRulesInfo(result.RulesInfo))

	if n := len(result.TrackerInfos); n > 0 {
		fmt.Fprintf(&sb, "    %s %s\n", iconStyle.Render(IconInfo), keyStyle.Render(fmt.Sprintf("%d tracker domains with owner data", n)))
	}
	return sb.String()
}

func (r *RulesetRenderer) renderRulesInfo(info rules.RulesInfo) string {
	parts := []string{
		r.theme.SuccessStyle.Render(fmt.Sprintf("%d valid", info.ValidRules)),
		r.theme.ErrorStyle.Render(fmt.Sprintf("%d invalid", info.InvalidRules)),
		r.theme.WarningStyle.Render(fmt.Sprintf("%d unsupported", info.UnsupportedRules)),
	}
	return strings.Join(parts, r.theme.Subtle.Render(" · "))
}

// RenderCompiled renders where an artifact was written and its checksum.
func (r *RulesetRenderer) RenderCompiled(path, checksum string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Compiled %s\n    %s %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(path),
		r.theme.Subtle.Render("sha256"),
		r.theme.Normal.Render(checksum),
	)
}

// RenderUpdating renders a source whose update is running.
func (r *RulesetRenderer) RenderUpdating(spinner, name string) string {
	return fmt.Sprintf("  %s %s", spinner, r.theme.Subtle.Render(name))
}

// RenderPending renders a source waiting for a free update slot.
func (r *RulesetRenderer) RenderPending(name string) string {
	return fmt.Sprintf("  %s %s", r.theme.Subtle.Render(IconClock), r.theme.Subtle.Render(name))
}

// RenderUpdateResult renders the outcome of one source update.
func (r *RulesetRenderer) RenderUpdateResult(res *infrafiltering.UpdateResult, err error) string {
	if res == nil {
		iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
		return fmt.Sprintf("  %s %v", iconStyle.Render(IconX), err)
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
	switch {
	case err != nil:
		icon = lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX)
	case res.FetchResult == rules.FetchFileUnsupported:
		icon = lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconWarning)
	case !res.Succeeded():
		icon = lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX)
	}

	line := fmt.Sprintf("  %s %s %s", icon, r.theme.Highlight.Render(res.Source.Name), r.theme.FetchResultBadge(res.FetchResult.String()))
	if res.Succeeded() {
		line += " " + r.renderRulesInfo(res.RulesInfo)
	}
	line += " " + r.theme.Subtle.Render("next in "+shortDuration(res.NextFetchIn))
	if err != nil {
		line += "\n    " + r.theme.ErrorStyle.Render(err.Error())
	}
	return line
}

// RenderUpdateSummary renders the totals line after an update run.
func (r *RulesetRenderer) RenderUpdateSummary(results []*infrafiltering.UpdateResult) string {
	ok := 0
	for _, res := range results {
		if res != nil && res.Succeeded() {
			ok++
		}
	}
	style := r.theme.SuccessStyle
	if ok < len(results) {
		style = r.theme.WarningStyle
	}
	return fmt.Sprintf("\n  %s\n", style.Render(fmt.Sprintf("%d/%d sources updated", ok, len(results))))
}

// FormatExpires renders an expiry as whole days, or hours below one day.
func FormatExpires(d time.Duration) string {
	if d < 24*time.Hour || d%(24*time.Hour) != 0 {
		return fmt.Sprintf("%d hours", int(d.Hours()))
	}
	days := int(d / (24 * time.Hour))
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

// RenderStatus renders a source whose update just changed state.
func (r *RulesetRenderer) RenderStatus(spinner string, status infrafiltering.SourceStatus) string {
	name := r.theme.Highlight.Render(status.Name)
	switch status.State {
	case infrafiltering.StateUpdating:
		return r.RenderUpdating(spinner, status.Name)
	case infrafiltering.StateUpToDate:
		icon := lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck)
		return fmt.Sprintf("  %s %s %s", icon, name, r.theme.Subtle.Render(status.Message))
	default:
		icon := lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX)
		return fmt.Sprintf("  %s %s %s", icon, name, r.theme.ErrorStyle.Render(status.Message))
	}
}

// RenderSkipped renders a source that was not due for an update.
func (r *RulesetRenderer) RenderSkipped(name string) string {
	return fmt.Sprintf("  %s %s %s", r.theme.Subtle.Render(IconClock), r.theme.Subtle.Render(name), r.theme.MutedBadge("not due"))
}
