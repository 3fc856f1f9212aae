package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/blockrules/internal/filtering/rules"
)

func parseLine(t *testing.T, line string) (Result, *rules.ParseResult) {
	t.Helper()
	return parseLineWith(t, line, RuleSourceSettings{})
}

func parseLineWith(t *testing.T, line string, settings RuleSourceSettings) (Result, *rules.ParseResult) {
	t.Helper()
	result := rules.NewParseResult()
	return NewRuleParser(result, settings).Parse(line), result
}

func parseRequestRule(t *testing.T, line string) rules.RequestFilterRule {
	t.Helper()
	res, result := parseLine(t, line)
	require.Equal(t, ResultRequestFilterRule, res, "line %q", line)
	require.Len(t, result.RequestFilterRules, 1)
	return result.RequestFilterRules[0]
}

func TestParse_PlainPattern(t *testing.T) {
	rule := parseRequestRule(t, "badword")

	assert.Equal(t, "badword", rule.Pattern)
	assert.Equal(t, rules.PatternPlain, rule.PatternType)
	assert.Equal(t, rules.AllResourceTypes, rule.ResourceTypes)
	assert.Equal(t, rules.PartyAll, rule.Party)
	assert.Zero(t, rule.AnchorType)
	assert.Equal(t, rules.DecisionModify, rule.Decision)
	assert.Empty(t, rule.Host)
}

func TestParse_HostAnchor(t *testing.T) {
	rule := parseRequestRule(t, "||a.bad.domain.com^")

	assert.Equal(t, rules.AnchorHost, rule.AnchorType)
	assert.Equal(t, "a.bad.domain.com", rule.Host)
	assert.Equal(t, "a.bad.domain.com^", rule.Pattern)
}

func TestParse_HostAnchorVariants(t *testing.T) {
	tests := []struct {
		line    string
		host    string
		pattern string
		anchor  rules.AnchorType
	}{
		{line: "||example.com", host: "example.com", pattern: "example.com^", anchor: rules.AnchorHost},
		{line: "||example.com|", host: "example.com", pattern: "example.com", anchor: rules.AnchorHost | rules.AnchorEnd},
		{line: "||example.com/ads/", host: "example.com", pattern: "example.com/ads/", anchor: rules.AnchorHost},
		{line: "||EXAMPLE.com^", host: "example.com", pattern: "example.com^", anchor: rules.AnchorHost},
		{line: "||münchen.de^", host: "xn--mnchen-3ya.de", pattern: "xn--mnchen-3ya.de^", anchor: rules.AnchorHost},
		{line: "||ads.*.com^", host: "", pattern: "ads.*.com^", anchor: rules.AnchorHost},
		{line: "||example.com*", host: "example.com", pattern: "example.com", anchor: rules.AnchorHost},
		{line: "||münchen.de*x", host: "xn--mnchen-3ya.de", pattern: "xn--mnchen-3ya.de*x", anchor: rules.AnchorHost},
		{line: "||München.*/ads", host: "", pattern: "xn--mnchen-3ya.*/ads", anchor: rules.AnchorHost},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			rule := parseRequestRule(t, tt.line)
			assert.Equal(t, tt.host, rule.Host)
			assert.Equal(t, tt.pattern, rule.Pattern)
			assert.Equal(t, tt.anchor, rule.AnchorType)
		})
	}
}

func TestParse_Anchors(t *testing.T) {
	tests := []struct {
		line        string
		pattern     string
		anchor      rules.AnchorType
		patternType rules.PatternType
	}{
		{line: "|https://ads.", pattern: "https://ads.", anchor: rules.AnchorStart},
		{line: "tracker.js|", pattern: "tracker.js", anchor: rules.AnchorEnd},
		{line: "tracker*|", pattern: "tracker", anchor: 0},
		{line: "*tracker", pattern: "tracker", anchor: 0},
		{line: "|*tracker", pattern: "tracker", anchor: 0},
		{line: "ad**banner", pattern: "ad*banner", anchor: 0, patternType: rules.PatternWildcarded},
		{line: "/banner/*/img^", pattern: "/banner/*/img^", anchor: 0, patternType: rules.PatternWildcarded},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			rule := parseRequestRule(t, tt.line)
			assert.Equal(t, tt.pattern, rule.Pattern)
			assert.Equal(t, tt.anchor, rule.AnchorType)
			assert.Equal(t, tt.patternType, rule.PatternType)
		})
	}
}

func TestParse_PlainPatternsRoundTrip(t *testing.T) {
	for _, p := range []string{"badword", "/ads/banner.gif", "example.com/track?id=", "-ad-300x250."} {
		rule := parseRequestRule(t, p)
		assert.Equal(t, p, rule.Pattern)
		assert.Equal(t, rules.PatternPlain, rule.PatternType)
	}
}

func TestParse_Regex(t *testing.T) {
	rule := parseRequestRule(t, `/banner\d+\.gif/$image`)

	assert.Equal(t, rules.PatternRegex, rule.PatternType)
	assert.Equal(t, `banner\d+\.gif`, rule.Pattern)
	assert.Equal(t, "banner*.gif", rule.NgramSearchString)
	assert.Equal(t, rules.ResourceTypes(rules.ResourceImage), rule.ResourceTypes)

	rule = parseRequestRule(t, `/(ads|track)er$/`)
	assert.Equal(t, rules.PatternRegex, rule.PatternType)
	assert.Equal(t, `(ads|track)er$`, rule.Pattern)

	res, _ := parseLine(t, `/ad[/`)
	assert.NotEqual(t, ResultRequestFilterRule, res)

	res, _ = parseLine(t, `/ad(/$script`)
	assert.Equal(t, ResultError, res)
}

func TestParse_CspModifier(t *testing.T) {
	rule := parseRequestRule(t, "bad-resource$csp=script-src none")

	assert.Equal(t, rules.ModifierCsp, rule.Modifier)
	assert.Equal(t, rules.NewStringSet("script-src none"), rule.ModifierValues)
	assert.False(t, rule.ModifyBlock)
	assert.True(t, rule.IsCspRule)
	assert.Equal(t, rules.DecisionModify, rule.Decision)
}

func TestParse_CspException(t *testing.T) {
	rule := parseRequestRule(t, "@@good-resource$csp")

	assert.Equal(t, rules.DecisionPass, rule.Decision)
	assert.Equal(t, rules.ModifierCsp, rule.Modifier)
	assert.Empty(t, rule.ModifierValues)
}

func TestParse_CspErrors(t *testing.T) {
	for _, line := range []string{
		"bad$csp",
		"bad$csp=script-src none; report-uri https://x.test",
		"bad$csp=a,redirect=noop.js",
	} {
		res, _ := parseLine(t, line)
		assert.Equal(t, ResultError, res, line)
	}
}

func TestParse_Redirect(t *testing.T) {
	rule := parseRequestRule(t, "||ads.example.com^$script,redirect=noop.js")
	assert.Equal(t, rules.ModifierRedirect, rule.Modifier)
	assert.Equal(t, rules.NewStringSet("noop.js"), rule.ModifierValues)
	assert.True(t, rule.ModifyBlock)

	rule = parseRequestRule(t, "||ads.example.com^$script,redirect-rule=noop.js")
	assert.False(t, rule.ModifyBlock)

	rule = parseRequestRule(t, "||ads.example.com^$rewrite=abp-resource:blank-js")
	assert.Equal(t, rules.ModifierRedirect, rule.Modifier)
	assert.Equal(t, rules.NewStringSet("blank-js"), rule.ModifierValues)

	res, _ := parseLine(t, "ads$redirect")
	assert.Equal(t, ResultError, res)

	rule = parseRequestRule(t, "@@ads$redirect")
	assert.Equal(t, rules.DecisionPass, rule.Decision)
	assert.Empty(t, rule.ModifierValues)

	res, _ = parseLine(t, "ads$rewrite=https://x.test")
	assert.Equal(t, ResultUnsupported, res)
}

func TestParse_AdQueryTrigger(t *testing.T) {
	rule := parseRequestRule(t, "||ads.example.com^$ad-query-trigger=adurl|url")
	assert.Equal(t, rules.ModifierAdQueryTrigger, rule.Modifier)
	assert.Equal(t, rules.NewStringSet("adurl", "url"), rule.ModifierValues)
	assert.False(t, rule.ModifyBlock)
}

func TestParse_ResourceTypes(t *testing.T) {
	all := rules.AllResourceTypes
	tests := []struct {
		options string
		want    rules.ResourceTypes
	}{
		{options: "script", want: rules.ResourceTypes(rules.ResourceScript)},
		{options: "script,image", want: rules.ResourceTypes(rules.ResourceScript | rules.ResourceImage)},
		{options: "~image", want: all &^ rules.ResourceTypes(rules.ResourceImage)},
		{options: "~image,~media,script", want: all &^ rules.ResourceTypes(rules.ResourceImage|rules.ResourceMedia)},
		{options: "css,xhr", want: rules.ResourceTypes(rules.ResourceStylesheet | rules.ResourceXMLHTTPRequest)},
		{options: "background", want: rules.ResourceTypes(rules.ResourceImage)},
		{options: "xbl,dtd", want: rules.ResourceTypes(rules.ResourceOther)},
		{options: "third-party", want: all},
		{options: "all", want: all},
	}

	for _, tt := range tests {
		t.Run(tt.options, func(t *testing.T) {
			rule := parseRequestRule(t, "ads$"+tt.options)
			assert.Equal(t, tt.want, rule.ResourceTypes, "got %s", rule.ResourceTypes)
		})
	}
}

func TestParse_ExplicitTypes(t *testing.T) {
	rule := parseRequestRule(t, "ads$popup")
	assert.True(t, rule.ResourceTypes.None())
	assert.Equal(t, rules.ExplicitTypes(rules.ExplicitPopup), rule.ExplicitTypes)

	rule = parseRequestRule(t, "ads$popup,~popup,document")
	assert.Equal(t, rules.ExplicitTypes(rules.ExplicitDocument), rule.ExplicitTypes)
	assert.True(t, rule.ResourceTypes.None())

	res, _ := parseLine(t, "ads$popup,~popup")
	assert.Equal(t, ResultError, res)

	rule = parseRequestRule(t, "ads$all")
	assert.Equal(t, rules.AllExplicitTypes, rule.ExplicitTypes)
	assert.Equal(t, rules.AllResourceTypes, rule.ResourceTypes)

	res, _ = parseLine(t, "ads$~all")
	assert.Equal(t, ResultError, res)
	res, _ = parseLine(t, "ads$all=1")
	assert.Equal(t, ResultError, res)
}

func TestParse_Party(t *testing.T) {
	tests := []struct {
		options string
		want    rules.Party
	}{
		{options: "third-party", want: rules.PartyThird},
		{options: "3p", want: rules.PartyThird},
		{options: "~third-party", want: rules.PartyFirst},
		{options: "first-party", want: rules.PartyFirst},
		{options: "~first-party", want: rules.PartyThird},
		{options: "~third-party,third-party", want: rules.PartyAll},
	}

	for _, tt := range tests {
		t.Run(tt.options, func(t *testing.T) {
			rule := parseRequestRule(t, "ads$"+tt.options)
			assert.Equal(t, tt.want, rule.Party)
		})
	}
}

func TestParse_Domains(t *testing.T) {
	rule := parseRequestRule(t, "ads$domain=a.com|~b.a.com|Bücher.example")

	assert.Equal(t, rules.NewStringSet("a.com", "xn--bcher-kva.example"), rule.IncludedDomains)
	assert.Equal(t, rules.NewStringSet("b.a.com"), rule.ExcludedDomains)

	for _, line := range []string{
		"ads$domain",
		"ads$domain=",
		"ads$domain=http://a.com",
		"ads$domain=a.com:8080",
		"ads$domain=a.com/path",
	} {
		res, _ := parseLine(t, line)
		assert.Equal(t, ResultError, res, line)
	}
}

func TestParse_HostOption(t *testing.T) {
	rule := parseRequestRule(t, "/ads/$host=Ads.Example.com")
	assert.Equal(t, "ads.example.com", rule.Host)

	rule = parseRequestRule(t, "/ads/$host=[::1]")
	assert.Equal(t, "[::1]", rule.Host)

	for _, line := range []string{
		"/ads/$host=a.com,host=b.com",
		"||a.com/ads$host=b.com",
		"/ads/$host=[::1",
		"/ads/$host=[not-ipv6]",
		"/ads/$host",
	} {
		res, _ := parseLine(t, line)
		assert.Equal(t, ResultError, res, line)
	}
}

func TestParse_Activation(t *testing.T) {
	rule := parseRequestRule(t, "@@||example.com^$document")
	assert.True(t, rule.ActivationTypes.Has(rules.ActivationWholeDocument))
	assert.True(t, rule.ExplicitTypes.Has(rules.ExplicitDocument))
	assert.True(t, rule.ResourceTypes.None())

	rule = parseRequestRule(t, "@@||example.com^$generichide,genericblock")
	assert.True(t, rule.ActivationTypes.Has(rules.ActivationGenericHide))
	assert.True(t, rule.ActivationTypes.Has(rules.ActivationGenericBlock))

	rule = parseRequestRule(t, "@@||example.com^$ehide")
	assert.True(t, rule.ActivationTypes.Has(rules.ActivationElementHide))

	res, _ := parseLine(t, "@@||example.com^$elemhide,~elemhide")
	assert.Equal(t, ResultError, res)

	res, _ = parseLine(t, "||example.com^$generichide")
	assert.Equal(t, ResultUnsupported, res)
}

func TestParse_Important(t *testing.T) {
	rule := parseRequestRule(t, "||ads.com^$important")
	assert.Equal(t, rules.DecisionModifyImportant, rule.Decision)

	res, _ := parseLine(t, "||ads.com^$~important")
	assert.Equal(t, ResultError, res)
}

func TestParse_MatchCase(t *testing.T) {
	rule := parseRequestRule(t, "AdBanner$match-case")
	assert.True(t, rule.IsCaseSensitive)
	assert.Equal(t, "AdBanner", rule.Pattern)
}

func TestParse_UnknownAndUnsupportedOptions(t *testing.T) {
	res, _ := parseLine(t, "ads$frobnicate")
	assert.Equal(t, ResultError, res)

	res, _ = parseLine(t, "ads$badfilter")
	assert.Equal(t, ResultUnsupported, res)

	res, _ = parseLine(t, "ads$removeparam=utm_source")
	assert.Equal(t, ResultUnsupported, res)
}

func TestParse_DegeneratePatterns(t *testing.T) {
	for _, line := range []string{"a", "*", "|*|", "$script", "||^"} {
		res, result := parseLine(t, line)
		assert.Equal(t, ResultUnsupported, res, line)
		assert.Empty(t, result.RequestFilterRules, line)
	}

	rule := parseRequestRule(t, "$script,domain=example.com")
	assert.Empty(t, rule.Pattern)
	assert.Equal(t, rules.NewStringSet("example.com"), rule.IncludedDomains)
}

func TestParse_NakedHostname(t *testing.T) {
	settings := RuleSourceSettings{NakedHostnameIsPureHost: true}

	res, result := parseLineWith(t, "Ads.Example.com", settings)
	require.Equal(t, ResultRequestFilterRule, res)
	rule := result.RequestFilterRules[0]
	assert.Equal(t, rules.AnchorHost, rule.AnchorType)
	assert.Equal(t, "ads.example.com", rule.Host)
	assert.Equal(t, "ads.example.com^", rule.Pattern)

	res, result = parseLineWith(t, "ads.example.com$third-party", settings)
	require.Equal(t, ResultRequestFilterRule, res)
	assert.Equal(t, "ads.example.com", result.RequestFilterRules[0].Host)

	res, result = parseLineWith(t, "ads.example.com/path", settings)
	require.Equal(t, ResultRequestFilterRule, res)
	assert.Empty(t, result.RequestFilterRules[0].Host)

	rule = parseRequestRule(t, "ads.example.com")
	assert.Empty(t, rule.Host)
	assert.Zero(t, rule.AnchorType)
}

func TestParse_HostsFile(t *testing.T) {
	res, result := parseLine(t, "0.0.0.0 ads.example.com tracker.example.net # blocked")
	require.Equal(t, ResultRequestFilterRule, res)
	require.Len(t, result.RequestFilterRules, 2)
	assert.Equal(t, "ads.example.com", result.RequestFilterRules[0].Host)
	assert.Equal(t, "ads.example.com^", result.RequestFilterRules[0].Pattern)
	assert.Equal(t, rules.AnchorHost, result.RequestFilterRules[0].AnchorType)
	assert.Equal(t, "tracker.example.net", result.RequestFilterRules[1].Host)

	res, result = parseLine(t, "127.0.0.1 localhost localhost.localdomain")
	assert.Equal(t, ResultUnsupported, res)
	assert.Empty(t, result.RequestFilterRules)

	res, _ = parseLine(t, "::1 ip6-localhost ads.example.com")
	assert.Equal(t, ResultUnsupported, res)
}

func TestParse_Comments(t *testing.T) {
	for _, line := range []string{
		"! just a comment",
		"[Adblock Plus 2.0]",
		"# hosts comment",
		"! Checksum: abc",
		"#### Section",
		"## Ads ##",
		"#####",
		"#\tindented",
	} {
		res, result := parseLine(t, line)
		assert.Equal(t, ResultComment, res, line)
		assert.Zero(t, result.RuleCount())
	}
}

func TestParse_HashSelectorsAreNotComments(t *testing.T) {
	for _, line := range []string{"###banner", "##.ad", "#@#.ad"} {
		res, _ := parseLine(t, line)
		assert.Equal(t, ResultCosmeticRule, res, line)
	}
}

func TestParse_Metadata(t *testing.T) {
	result := rules.NewParseResult()
	p := NewRuleParser(result, RuleSourceSettings{})

	assert.Equal(t, ResultMetadata, p.Parse("! Title: EasyList"))
	assert.Equal(t, ResultMetadata, p.Parse("! Homepage: https://easylist.to/"))
	assert.Equal(t, ResultMetadata, p.Parse("! Licence: https://easylist.to/pages/licence.html"))
	assert.Equal(t, ResultMetadata, p.Parse("! Version: 202401011200"))
	assert.Equal(t, ResultMetadata, p.Parse("! Expires: 4 days (update frequency)"))
	assert.Equal(t, ResultComment, p.Parse("! Homepage: not a url"))

	assert.Equal(t, "EasyList", result.Metadata.Title)
	assert.Equal(t, "https://easylist.to/", result.Metadata.Homepage)
	assert.Equal(t, "https://easylist.to/pages/licence.html", result.Metadata.License)
	assert.Equal(t, "202401011200", result.Metadata.Version)
	assert.Equal(t, 96*time.Hour, result.Metadata.Expires)
}

func TestParseExpires(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{in: "4 days", want: 96 * time.Hour, ok: true},
		{in: "1 day", want: 24 * time.Hour, ok: true},
		{in: "12 hours", want: 12 * time.Hour, ok: true},
		{in: "6h", want: 6 * time.Hour, ok: true},
		{in: "2d", want: 48 * time.Hour, ok: true},
		{in: "soon", ok: false},
		{in: "0 days", ok: false},
	}
	for _, tt := range tests {
		got, ok := parseExpires(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParse_CosmeticRules(t *testing.T) {
	res, result := parseLine(t, "##.ad-banner")
	require.Equal(t, ResultCosmeticRule, res)
	require.Len(t, result.CosmeticRules, 1)
	assert.Equal(t, ".ad-banner", result.CosmeticRules[0].Selector)
	assert.False(t, result.CosmeticRules[0].Core.IsAllowRule)
	assert.Empty(t, result.CosmeticRules[0].Core.IncludedDomains)

	res, result = parseLine(t, "example.com,~sub.example.com###ad")
	require.Equal(t, ResultCosmeticRule, res)
	rule := result.CosmeticRules[0]
	assert.Equal(t, "#ad", rule.Selector)
	assert.Equal(t, rules.NewStringSet("example.com"), rule.Core.IncludedDomains)
	assert.Equal(t, rules.NewStringSet("sub.example.com"), rule.Core.ExcludedDomains)

	res, result = parseLine(t, "example.com#@#.ad")
	require.Equal(t, ResultCosmeticRule, res)
	assert.True(t, result.CosmeticRules[0].Core.IsAllowRule)

	res, _ = parseLine(t, "example.com##")
	assert.Equal(t, ResultError, res)

	res, _ = parseLine(t, "bad domain!##.ad")
	assert.NotEqual(t, ResultCosmeticRule, res)

	res, _ = parseLine(t, "example.com#?#.ad:-abp-has(.x)")
	assert.Equal(t, ResultUnsupported, res)

	res, _ = parseLine(t, "example.com##.ad:has-text(Sponsored)")
	assert.Equal(t, ResultUnsupported, res)
}

func TestParse_NetworkRuleWithFragment(t *testing.T) {
	rule := parseRequestRule(t, "||example.com/page##ad")
	assert.Equal(t, "example.com/page##ad", rule.Pattern)
}

func TestParse_Scriptlets(t *testing.T) {
	res, result := parseLine(t, `example.com##+js(set-constant.js, ads\, more, true)`)
	require.Equal(t, ResultScriptletInjectionRule, res)
	require.Len(t, result.ScriptletInjectionRules, 1)
	s := result.ScriptletInjectionRules[0]
	assert.Equal(t, "set-constant", s.ScriptletName)
	assert.Equal(t, []string{"ads, more", "true"}, s.Arguments)
	assert.Equal(t, rules.NewStringSet("example.com"), s.Core.IncludedDomains)

	res, result = parseLine(t, "##+js(nobab)")
	require.Equal(t, ResultScriptletInjectionRule, res)
	assert.Equal(t, []string{}, result.ScriptletInjectionRules[0].Arguments)

	res, result = parseLine(t, "example.com#@#+js(nobab)")
	require.Equal(t, ResultScriptletInjectionRule, res)
	assert.True(t, result.ScriptletInjectionRules[0].Core.IsAllowRule)

	res, result = parseLine(t, `example.com#%#//scriptlet('abort-on-property-read', 'alert')`)
	require.Equal(t, ResultScriptletInjectionRule, res)
	assert.Equal(t, "abort-on-property-read", result.ScriptletInjectionRules[0].ScriptletName)
	assert.Equal(t, []string{"alert"}, result.ScriptletInjectionRules[0].Arguments)

	res, _ = parseLine(t, "example.com#%#window.x = 1;")
	assert.Equal(t, ResultUnsupported, res)
}

func TestParse_AbpSnippets(t *testing.T) {
	res, _ := parseLine(t, "example.com#$#log hello")
	assert.Equal(t, ResultUnsupported, res)

	settings := RuleSourceSettings{AllowAbpSnippets: true}
	res, result := parseLineWith(t, "example.com#$#log hello", settings)
	require.Equal(t, ResultScriptletInjectionRule, res)
	assert.Equal(t, "abp-snippet", result.ScriptletInjectionRules[0].ScriptletName)
	assert.Equal(t, []string{"log hello"}, result.ScriptletInjectionRules[0].Arguments)

	res, _ = parseLineWith(t, "#$#log hello", settings)
	assert.Equal(t, ResultUnsupported, res)
}

func TestParse_NoRuleWithoutPurpose(t *testing.T) {
	lines := []string{"badword", "||ads.com^$script", "@@||ads.com^$document", "ads$popup", "ads$~image,~media,script"}
	for _, line := range lines {
		res, result := parseLine(t, line)
		require.Equal(t, ResultRequestFilterRule, res, line)
		for _, r := range result.RequestFilterRules {
			assert.True(t, r.HasPurpose(), line)
		}
	}
}
