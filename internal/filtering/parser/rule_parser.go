// Package parser turns filter list text and tracker list JSON into rules.ParseResult.
package parser

import (
	"net/netip"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bnema/blockrules/internal/filtering/rules"
)

// Result classifies one parsed line.
type Result int

const (
	ResultRequestFilterRule Result = iota
	ResultCosmeticRule
	ResultScriptletInjectionRule
	ResultComment
	ResultMetadata
	ResultUnsupported
	ResultError
)

func (r Result) String() string {
	switch r {
	case ResultRequestFilterRule:
		return "request-filter-rule"
	case ResultCosmeticRule:
		return "cosmetic-rule"
	case ResultScriptletInjectionRule:
		return "scriptlet-injection-rule"
	case ResultComment:
		return "comment"
	case ResultMetadata:
		return "metadata"
	case ResultUnsupported:
		return "unsupported"
	case ResultError:
		return "error"
	default:
		return "unknown"
	}
}

// RuleSourceSettings are the per-source switches that change how lines are read.
type RuleSourceSettings struct {
	// NakedHostnameIsPureHost turns "example.com" into "||example.com^".
	NakedHostnameIsPureHost bool `mapstructure:"naked_hostname_is_pure_host" json:"naked_hostname_is_pure_host"`
	// AllowAbpSnippets enables "#$#" snippet rules.
	AllowAbpSnippets bool `mapstructure:"allow_abp_snippets" json:"allow_abp_snippets"`
}

// RuleParser parses filter list lines into a shared ParseResult.
type RuleParser struct {
	result   *rules.ParseResult
	settings RuleSourceSettings
}

// NewRuleParser returns a parser appending to result.
func NewRuleParser(result *rules.ParseResult, settings RuleSourceSettings) *RuleParser {
	return &RuleParser{result: result, settings: settings}
}

// Parse classifies one line and, for rules and metadata, records it in the result.
func (p *RuleParser) Parse(line string) Result {
	line = strings.TrimSpace(line)
	if line == "" {
		return ResultComment
	}

	if strings.HasPrefix(line, "!") {
		return p.parseMetadata(line[1:])
	}
	if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
		return ResultComment
	}
	if isHashComment(line) {
		return ResultComment
	}

	if idx, sep, ok := findContentInjectionSeparator(line); ok {
		return p.parseContentInjectionRule(line[:idx], sep, line[idx+len(sep.token):])
	}
	if strings.HasPrefix(line, "#") {
		return ResultComment
	}

	if fields := strings.Fields(line); len(fields) > 1 {
		if addr, err := netip.ParseAddr(fields[0]); err == nil {
			return p.parseHostsLine(addr, fields[1:])
		}
	}

	rule := rules.NewRequestFilterRule()
	res := parseRequestFilterRule(&rule, line, p.settings)
	if res == ResultRequestFilterRule {
		p.result.RequestFilterRules = append(p.result.RequestFilterRules, rule)
	}
	return res
}

// isHashComment reports hosts-file style comments and section banners such
// as "# hosts" or "#### Ads ####", which would otherwise read as "##" rules.
func isHashComment(line string) bool {
	if !strings.HasPrefix(line, "#") {
		return false
	}
	rest := strings.TrimLeft(line, "#")
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsSpace(r)
}

// parseRequestFilterRule fills rule from one network filter line.
func parseRequestFilterRule(rule *rules.RequestFilterRule, line string, settings RuleSourceSettings) Result {
	body := line
	if strings.HasPrefix(body, "@@") {
		rule.Decision = rules.DecisionPass
		body = body[2:]
	}

	pattern, options, hasOptions := splitOptions(body)

	optionsResult := ResultRequestFilterRule
	if hasOptions {
		optionsResult = parseOptions(rule, options)
		if optionsResult == ResultError {
			return ResultError
		}
	} else {
		rule.ResourceTypes = rules.AllResourceTypes
	}

	if res := parsePattern(rule, pattern, settings); res != ResultRequestFilterRule {
		return res
	}
	if optionsResult != ResultRequestFilterRule {
		return optionsResult
	}

	if !rule.HasPurpose() {
		return ResultUnsupported
	}
	return ResultRequestFilterRule
}

// splitOptions separates the pattern from the option list. For regex patterns
// the options begin after the closing slash.
func splitOptions(body string) (pattern, options string, ok bool) {
	if strings.HasPrefix(body, "/") && len(body) > 1 {
		if strings.HasSuffix(body, "/") {
			return body, "", false
		}
		if idx := strings.LastIndex(body, "/$"); idx > 0 {
			return body[:idx+1], body[idx+2:], true
		}
	}

	for i := len(body) - 1; i >= 0; i-- {
		if body[i] != '$' {
			continue
		}
		if i > 0 && body[i-1] == '\\' {
			continue
		}
		return body[:i], body[i+1:], true
	}
	return body, "", false
}

func parsePattern(rule *rules.RequestFilterRule, pattern string, settings RuleSourceSettings) Result {
	if len(pattern) > 2 && strings.HasPrefix(pattern, "/") && strings.HasSuffix(pattern, "/") {
		return parseRegexPattern(rule, pattern[1:len(pattern)-1])
	}

	if strings.HasPrefix(pattern, "||") {
		if rule.Host != "" {
			return ResultError
		}
		rule.AnchorType.Set(rules.AnchorHost)
		pattern = pattern[2:]
	} else if strings.HasPrefix(pattern, "|") {
		rule.AnchorType.Set(rules.AnchorStart)
		pattern = pattern[1:]
	}

	if strings.HasSuffix(pattern, "|") {
		rule.AnchorType.Set(rules.AnchorEnd)
		pattern = pattern[:len(pattern)-1]
	}

	if strings.HasPrefix(pattern, "*") {
		pattern = strings.TrimLeft(pattern, "*")
		rule.AnchorType.Clear(rules.AnchorStart)
		rule.AnchorType.Clear(rules.AnchorHost)
	}

	if rule.AnchorType.Has(rules.AnchorHost) {
		var res Result
		pattern, res = extractHost(rule, pattern)
		if res != ResultRequestFilterRule {
			return res
		}
	}

	if strings.HasSuffix(pattern, "*") {
		pattern = strings.TrimRight(pattern, "*")
		rule.AnchorType.Clear(rules.AnchorEnd)
	}

	for strings.Contains(pattern, "**") {
		pattern = strings.ReplaceAll(pattern, "**", "*")
	}
	if strings.Contains(pattern, "*") {
		rule.PatternType = rules.PatternWildcarded
	}

	if settings.NakedHostnameIsPureHost && isNakedHostnameCandidate(rule, pattern) {
		if host, ok := NormalizeHost(pattern); ok && strings.Contains(host, ".") {
			rule.AnchorType.Set(rules.AnchorHost)
			rule.Host = host
			pattern = host + "^"
		}
	}

	if pattern == "" {
		if len(rule.IncludedDomains) == 0 && rule.Host == "" &&
			rule.ExplicitTypes.None() && rule.ActivationTypes.None() {
			return ResultUnsupported
		}
	} else if utf8.RuneCountInString(pattern) == 1 && rule.PatternType != rules.PatternWildcarded {
		return ResultUnsupported
	}

	rule.Pattern = pattern
	return ResultRequestFilterRule
}

func parseRegexPattern(rule *rules.RequestFilterRule, body string) Result {
	expr := body
	if !rule.IsCaseSensitive {
		expr = "(?i)" + body
	}
	if _, err := regexp.Compile(expr); err != nil {
		return ResultError
	}
	rule.PatternType = rules.PatternRegex
	rule.Pattern = body
	rule.NgramSearchString = BuildNgramSearchString(body)
	return ResultRequestFilterRule
}

// extractHost reads the host at the start of a host-anchored pattern, stores
// it punycoded in rule.Host and returns the pattern with the normalized host.
func extractHost(rule *rules.RequestFilterRule, pattern string) (string, Result) {
	end := len(pattern)
	for i, r := range pattern {
		if !isHostRune(r) {
			end = i
			break
		}
	}

	run, rest := pattern[:end], pattern[end:]
	wildcard := strings.HasPrefix(rest, "*")
	if run == "" {
		if wildcard {
			return pattern, ResultRequestFilterRule
		}
		return pattern, ResultUnsupported
	}

	// A run cut by a wildcard inside a label ("ads.*") is only a prefix of
	// the host: it is punycoded but not recorded as the host.
	partial := wildcard && strings.HasSuffix(run, ".")
	host, ok := NormalizeHost(strings.TrimSuffix(run, "."))
	if !ok || (strings.HasSuffix(run, ".") && !partial) {
		return pattern, ResultError
	}
	if partial {
		return host + "." + rest, ResultRequestFilterRule
	}
	rule.Host = host

	// the wildcard continues the host, no implicit separator
	if rest == "" && !rule.AnchorType.Has(rules.AnchorEnd) {
		rest = "^"
	}
	return host + rest, ResultRequestFilterRule
}

func isNakedHostnameCandidate(rule *rules.RequestFilterRule, pattern string) bool {
	return rule.AnchorType == 0 &&
		rule.PatternType == rules.PatternPlain &&
		rule.Host == "" &&
		pattern != "" &&
		len(rule.IncludedDomains) == 0 &&
		len(rule.ExcludedDomains) == 0 &&
		rule.ExplicitTypes.None() &&
		rule.ActivationTypes.None() &&
		rule.Modifier == rules.NoModifier &&
		!rule.IsCaseSensitive
}
