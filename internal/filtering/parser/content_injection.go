package parser

import (
	"strings"

	"github.com/bnema/blockrules/internal/filtering/rules"
)

type separatorKind int

const (
	separatorCosmetic separatorKind = iota
	separatorExtendedCSS
	separatorAbpSnippet
	separatorAdGuardScript
)

type contentInjectionSeparator struct {
	token string
	kind  separatorKind
	allow bool
}

// Longest tokens first so "#@#" is not read as "#@" + "#".
var contentInjectionSeparators = []contentInjectionSeparator{
	{token: "#@?#", kind: separatorExtendedCSS, allow: true},
	{token: "#@$#", kind: separatorAbpSnippet, allow: true},
	{token: "#@%#", kind: separatorAdGuardScript, allow: true},
	{token: "#@#", kind: separatorCosmetic, allow: true},
	{token: "#?#", kind: separatorExtendedCSS},
	{token: "#$#", kind: separatorAbpSnippet},
	{token: "#%#", kind: separatorAdGuardScript},
	{token: "##", kind: separatorCosmetic},
}

// Procedural and HTML-filtering selectors that a plain CSS engine cannot apply.
var proceduralSelectorMarkers = []string{
	":-abp-", ":has-text(", ":matches-css", ":xpath(", ":upward(", ":remove(",
	":style(", ":min-text-length(", ":watch-attr(", ":matches-path(", ":others(",
}

// findContentInjectionSeparator locates the first cosmetic or scriptlet
// separator whose domain prefix could be a domain list.
func findContentInjectionSeparator(line string) (int, contentInjectionSeparator, bool) {
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		for _, sep := range contentInjectionSeparators {
			if !strings.HasPrefix(line[i:], sep.token) {
				continue
			}
			if strings.ContainsAny(line[:i], "/|$ ") {
				return 0, contentInjectionSeparator{}, false
			}
			return i, sep, true
		}
	}
	return 0, contentInjectionSeparator{}, false
}

func (p *RuleParser) parseContentInjectionRule(prefix string, sep contentInjectionSeparator, body string) Result {
	core := rules.NewContentInjectionRuleCore()
	core.IsAllowRule = sep.allow

	included, excluded, ok := ParseDomains(prefix, ',')
	if !ok {
		return ResultError
	}
	core.IncludedDomains = included
	core.ExcludedDomains = excluded

	body = strings.TrimSpace(body)
	if body == "" {
		return ResultError
	}

	switch sep.kind {
	case separatorExtendedCSS:
		return ResultUnsupported

	case separatorAbpSnippet:
		if !p.settings.AllowAbpSnippets || len(core.IncludedDomains) == 0 {
			return ResultUnsupported
		}
		return p.addScriptlet(core, "abp-snippet", []string{body})

	case separatorAdGuardScript:
		inner, ok := unwrapCall(body, "//scriptlet(")
		if !ok {
			return ResultUnsupported
		}
		args := splitQuotedArguments(inner)
		if len(args) == 0 || args[0] == "" {
			return ResultError
		}
		return p.addScriptlet(core, args[0], args[1:])
	}

	if inner, ok := unwrapCall(body, "+js("); ok {
		args := splitScriptletArguments(inner)
		if len(args) == 0 || args[0] == "" {
			if core.IsAllowRule {
				// "#@#+js()" disables every scriptlet, which has no representation
				return ResultUnsupported
			}
			return ResultError
		}
		name := strings.TrimSuffix(args[0], ".js")
		return p.addScriptlet(core, name, args[1:])
	}

	if strings.HasPrefix(body, "^") || strings.HasPrefix(body, "+") {
		return ResultUnsupported
	}
	for _, marker := range proceduralSelectorMarkers {
		if strings.Contains(body, marker) {
			return ResultUnsupported
		}
	}

	p.result.CosmeticRules = append(p.result.CosmeticRules, rules.CosmeticRule{
		Core:     core,
		Selector: body,
	})
	return ResultCosmeticRule
}

func (p *RuleParser) addScriptlet(core rules.ContentInjectionRuleCore, name string, args []string) Result {
	if args == nil {
		args = []string{}
	}
	p.result.ScriptletInjectionRules = append(p.result.ScriptletInjectionRules, rules.ScriptletInjectionRule{
		Core:          core,
		ScriptletName: name,
		Arguments:     args,
	})
	return ResultScriptletInjectionRule
}

func unwrapCall(body, open string) (string, bool) {
	if !strings.HasPrefix(body, open) || !strings.HasSuffix(body, ")") {
		return "", false
	}
	return body[len(open) : len(body)-1], true
}

// splitScriptletArguments splits uBlock-style arguments on ',' with "\," as
// an escaped comma.
func splitScriptletArguments(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var args []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == ',':
			cur.WriteByte(',')
			i++
		case c == ',':
			args = append(args, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	return append(args, strings.TrimSpace(cur.String()))
}

// splitQuotedArguments splits AdGuard-style 'a', "b" argument lists.
func splitQuotedArguments(s string) []string {
	var args []string
	var cur strings.Builder
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0 && c == '\\' && i+1 < len(s):
			cur.WriteByte(s[i+1])
			i++
		case quote != 0 && c == quote:
			quote = 0
		case quote != 0:
			cur.WriteByte(c)
		case c == '\'' || c == '"':
			quote = c
		case c == ',':
			args = append(args, strings.TrimSpace(cur.String()))
			cur.Reset()
		case c != ' ':
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 || len(args) > 0 {
		args = append(args, strings.TrimSpace(cur.String()))
	}
	return args
}
