package styles

import (
	"fmt"
	"time"

	"github.com/bnema/blockrules/internal/filtering/rules"
)

// FetchResultBadge renders the outcome of the last update of a source.
// An empty result means the source was never updated.
func (t *Theme) FetchResultBadge(result string) string {
	if result == "" {
		return t.BadgeMuted.Render("never updated")
	}

	switch rules.ParseFetchResult(result) {
	case rules.FetchSuccess:
		return t.Badge.Render(result)
	case rules.FetchFileUnsupported:
		return t.BadgeWarning.Render(result)
	default:
		return t.BadgeError.Render(result)
	}
}

// CountBadge renders "n label", with a muted style when n is zero.
func (t *Theme) CountBadge(n int, label string) string {
	text := fmt.Sprintf("%d %s", n, label)
	if n == 0 {
		return t.BadgeMuted.Render(text)
	}
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// RelativeTime formats a past time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return RelativeTimeFrom(tm, time.Now())
}

// RelativeTimeFrom is RelativeTime against a fixed now.
func RelativeTimeFrom(tm, now time.Time) string {
	diff := now.Sub(tm)
	if diff < time.Minute {
		return "just now"
	}
	return shortDuration(diff) + " ago"
}

// UntilFrom formats a future time relative to now, "due" once it has passed.
func UntilFrom(tm, now time.Time) string {
	diff := tm.Sub(now)
	if diff <= 0 {
		return "due"
	}
	if diff < time.Minute {
		return "in <1m"
	}
	return "in " + shortDuration(diff)
}

// shortDuration renders d with its largest unit: 5m, 3h, 2d, 1w, 4mo, 1y.
func shortDuration(d time.Duration) string {
	switch {
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dw", int(d.Hours()/(24*7)))
	case d < 365*24*time.Hour:
		return fmt.Sprintf("%dmo", int(d.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy", int(d.Hours()/(24*365)))
	}
}
