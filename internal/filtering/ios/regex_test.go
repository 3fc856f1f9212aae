package ios

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/blockrules/internal/filtering/rules"
)

func TestRegexFromRule(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(r *rules.RequestFilterRule)
		want   string
		wantOK bool
	}{
		{
			name:   "plain",
			setup:  func(r *rules.RequestFilterRule) { r.Pattern = "/ads/" },
			want:   `\/ads\/`,
			wantOK: true,
		},
		{
			name: "wildcard and separator",
			setup: func(r *rules.RequestFilterRule) {
				r.PatternType = rules.PatternWildcarded
				r.Pattern = "ad*banner^"
			},
			want:   `ad.*banner` + separatorClass,
			wantOK: true,
		},
		{
			name: "start and end anchors",
			setup: func(r *rules.RequestFilterRule) {
				r.AnchorType.Set(rules.AnchorStart)
				r.AnchorType.Set(rules.AnchorEnd)
				r.Pattern = "http://x.com/a.js?v=1"
			},
			want:   `^http:\/\/x\.com\/a\.js\?v=1$`,
			wantOK: true,
		},
		{
			name: "host anchored",
			setup: func(r *rules.RequestFilterRule) {
				r.AnchorType.Set(rules.AnchorHost)
				r.Host = "ads.com"
				r.Pattern = "ads.com^"
			},
			want:   hostPrefix + `ads\.com` + separatorClass,
			wantOK: true,
		},
		{
			name: "host option",
			setup: func(r *rules.RequestFilterRule) {
				r.Host = "cdn.com"
				r.Pattern = "track"
			},
			want:   hostPrefix + `cdn\.com[:/].*track`,
			wantOK: true,
		},
		{
			name:   "host option without pattern",
			setup:  func(r *rules.RequestFilterRule) { r.Host = "cdn.com" },
			want:   hostPrefix + `cdn\.com[:/]`,
			wantOK: true,
		},
		{
			name: "host option with start anchor",
			setup: func(r *rules.RequestFilterRule) {
				r.Host = "cdn.com"
				r.AnchorType.Set(rules.AnchorStart)
				r.Pattern = "https://"
			},
		},
		{
			name:   "empty pattern",
			setup:  func(r *rules.RequestFilterRule) {},
			want:   matchAll,
			wantOK: true,
		},
		{
			name:  "non ascii",
			setup: func(r *rules.RequestFilterRule) { r.Pattern = "rеklama" },
		},
		{
			name: "supported regex",
			setup: func(r *rules.RequestFilterRule) {
				r.PatternType = rules.PatternRegex
				r.Pattern = `^https?://[^/]+\.ads\.`
			},
			want:   `^https?://[^/]+\.ads\.`,
			wantOK: true,
		},
		{
			name: "regex with escaped class",
			setup: func(r *rules.RequestFilterRule) {
				r.PatternType = rules.PatternRegex
				r.Pattern = `banner\d+`
			},
		},
		{
			name: "regex with quantifier range",
			setup: func(r *rules.RequestFilterRule) {
				r.PatternType = rules.PatternRegex
				r.Pattern = `a{2}`
			},
		},
		{
			name: "regex with alternation",
			setup: func(r *rules.RequestFilterRule) {
				r.PatternType = rules.PatternRegex
				r.Pattern = `(ads|track)`
			},
		},
		{
			name: "regex with inner caret",
			setup: func(r *rules.RequestFilterRule) {
				r.PatternType = rules.PatternRegex
				r.Pattern = `a^b`
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := rules.NewRequestFilterRule()
			tt.setup(&rule)

			got, ok := RegexFromRule(&rule)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
