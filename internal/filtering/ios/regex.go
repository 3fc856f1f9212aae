package ios

import (
	"strings"

	"github.com/bnema/blockrules/internal/filtering/rules"
)

const (
	// hostPrefix matches the scheme and any subdomains in front of an anchored host.
	hostPrefix = `^[a-z-]+://([^/]*\.)?`
	// separatorClass is the content-blocker rendering of the ^ separator.
	separatorClass = `[^a-zA-Z0-9_.%-]`
)

// RegexFromRule translates the pattern of rule into the content-blocker regex
// dialect. It reports false when the rule cannot be expressed.
func RegexFromRule(rule *rules.RequestFilterRule) (string, bool) {
	if !isASCII(rule.Pattern) || !isASCII(rule.Host) {
		return "", false
	}

	if rule.PatternType == rules.PatternRegex {
		if !isSupportedRegex(rule.Pattern) {
			return "", false
		}
		return rule.Pattern, true
	}

	var sb strings.Builder
	switch {
	case rule.AnchorType.Has(rules.AnchorHost):
		// the stored pattern already starts with the host
		sb.WriteString(hostPrefix)
	case rule.Host != "":
		if rule.AnchorType.Has(rules.AnchorStart) {
			return "", false
		}
		sb.WriteString(hostPrefix)
		writeEscaped(&sb, rule.Host)
		sb.WriteString(`[:/]`)
		if rule.Pattern != "" {
			sb.WriteString(".*")
		}
	case rule.AnchorType.Has(rules.AnchorStart):
		sb.WriteByte('^')
	}

	writeEscaped(&sb, rule.Pattern)

	if rule.AnchorType.Has(rules.AnchorEnd) {
		sb.WriteByte('$')
	}

	if sb.Len() == 0 {
		return matchAll, true
	}
	return sb.String(), true
}

func writeEscaped(sb *strings.Builder, pattern string) {
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '*':
			sb.WriteString(".*")
		case '^':
			sb.WriteString(separatorClass)
		case '.', '+', '$', '?', '{', '}', '(', ')', '[', ']', '|', '/', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
}

// isSupportedRegex rejects constructs the content-blocker engine does not
// implement: quantifier ranges, alternation, group flags, escaped classes or
// backreferences, and ^ anywhere but the start or a class negation.
func isSupportedRegex(pattern string) bool {
	if strings.ContainsAny(pattern, "{|") || strings.Contains(pattern, "(?") {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			if i+1 < len(pattern) && isASCIIAlnum(pattern[i+1]) {
				return false
			}
			i++
		case '^':
			if i != 0 && pattern[i-1] != '[' {
				return false
			}
		}
	}
	return true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

func isASCIIAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
