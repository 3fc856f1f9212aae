package styles_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/blockrules/internal/cli/styles"
)

func TestRelativeTimeFrom(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 30 * time.Second, "just now"},
		{"minutes", 5 * time.Minute, "5m ago"},
		{"hours", 3 * time.Hour, "3h ago"},
		{"days", 2 * 24 * time.Hour, "2d ago"},
		{"weeks", 15 * 24 * time.Hour, "2w ago"},
		{"months", 65 * 24 * time.Hour, "2mo ago"},
		{"years", 400 * 24 * time.Hour, "1y ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.RelativeTimeFrom(now.Add(-tt.ago), now))
		})
	}
}

func TestUntilFrom(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "due", styles.UntilFrom(now.Add(-time.Minute), now))
	assert.Equal(t, "due", styles.UntilFrom(now, now))
	assert.Equal(t, "in <1m", styles.UntilFrom(now.Add(20*time.Second), now))
	assert.Equal(t, "in 45m", styles.UntilFrom(now.Add(45*time.Minute), now))
	assert.Equal(t, "in 4d", styles.UntilFrom(now.Add(4*24*time.Hour), now))
}

func TestTheme_FetchResultBadge(t *testing.T) {
	theme := styles.NewTheme()

	assert.Contains(t, theme.FetchResultBadge(""), "never updated")
	assert.Contains(t, theme.FetchResultBadge("success"), "success")
	assert.Contains(t, theme.FetchResultBadge("file-unsupported"), "file-unsupported")
	assert.Contains(t, theme.FetchResultBadge("file-not-found"), "file-not-found")
}

func TestTheme_CountBadge(t *testing.T) {
	theme := styles.NewTheme()

	assert.Contains(t, theme.CountBadge(0, "cosmetic"), "0 cosmetic")
	assert.Contains(t, theme.CountBadge(12, "request"), "12 request")
}
