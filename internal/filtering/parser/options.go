package parser

import (
	"strings"

	"github.com/bnema/blockrules/internal/filtering/rules"
)

var resourceTypeOptions = map[string]rules.ResourceType{
	"stylesheet":        rules.ResourceStylesheet,
	"css":               rules.ResourceStylesheet,
	"image":             rules.ResourceImage,
	"background":        rules.ResourceImage,
	"object":            rules.ResourceObject,
	"object-subrequest": rules.ResourceObject,
	"script":            rules.ResourceScript,
	"xmlhttprequest":    rules.ResourceXMLHTTPRequest,
	"xhr":               rules.ResourceXMLHTTPRequest,
	"subdocument":       rules.ResourceSubDocument,
	"frame":             rules.ResourceSubDocument,
	"font":              rules.ResourceFont,
	"media":             rules.ResourceMedia,
	"websocket":         rules.ResourceWebSocket,
	"webrtc":            rules.ResourceWebRTC,
	"ping":              rules.ResourcePing,
	"beacon":            rules.ResourcePing,
	"webtransport":      rules.ResourceWebTransport,
	"webbundle":         rules.ResourceWebBundle,
	"other":             rules.ResourceOther,
	"xbl":               rules.ResourceOther,
	"dtd":               rules.ResourceOther,
}

var activationOptions = map[string]rules.ActivationType{
	"elemhide":     rules.ActivationElementHide,
	"ehide":        rules.ActivationElementHide,
	"generichide":  rules.ActivationGenericHide,
	"ghide":        rules.ActivationGenericHide,
	"genericblock": rules.ActivationGenericBlock,
}

// Recognized options this engine cannot represent.
var unsupportedOptions = map[string]struct{}{
	"badfilter":     {},
	"popunder":      {},
	"sitekey":       {},
	"strict1p":      {},
	"strict3p":      {},
	"empty":         {},
	"mp4":           {},
	"removeparam":   {},
	"queryprune":    {},
	"cname":         {},
	"inline-script": {},
	"inline-font":   {},
	"denyallow":     {},
	"shide":         {},
	"specifichide":  {},
	"header":        {},
	"permissions":   {},
	"method":        {},
	"to":            {},
	"replace":       {},
	"urltransform":  {},
	"uritransform":  {},
	"redirect-url":  {},
}

// optionsState accumulates the option list of one rule before it is applied.
type optionsState struct {
	resourceSet   rules.ResourceTypes
	resourceUnset rules.ResourceTypes

	explicitSet   rules.ExplicitTypes
	explicitUnset rules.ExplicitTypes

	activationSet   rules.ActivationTypes
	activationUnset rules.ActivationTypes

	wantFirstParty bool
	wantThirdParty bool

	unsupported bool
}

// parseOptions applies a comma separated option list to rule. It returns
// ResultRequestFilterRule when every option was understood.
func parseOptions(rule *rules.RequestFilterRule, options string) Result {
	state := &optionsState{}

	for _, raw := range strings.Split(options, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if res := state.apply(rule, raw); res != ResultRequestFilterRule {
			return res
		}
	}

	return state.finish(rule)
}

func (s *optionsState) apply(rule *rules.RequestFilterRule, raw string) Result {
	name, value, hasValue := strings.Cut(raw, "=")
	name = strings.ToLower(strings.TrimSpace(name))

	negated := strings.HasPrefix(name, "~")
	if negated {
		name = name[1:]
	}

	if t, ok := resourceTypeOptions[name]; ok {
		if hasValue {
			return ResultError
		}
		if negated {
			s.resourceUnset |= rules.ResourceTypes(t)
		} else {
			s.resourceSet |= rules.ResourceTypes(t)
		}
		return ResultRequestFilterRule
	}

	if t, ok := activationOptions[name]; ok {
		if hasValue {
			return ResultError
		}
		if negated {
			s.activationUnset.Set(t)
		} else {
			s.activationSet.Set(t)
		}
		return ResultRequestFilterRule
	}

	if _, ok := unsupportedOptions[name]; ok {
		s.unsupported = true
		return ResultRequestFilterRule
	}

	switch name {
	case "document", "doc":
		if hasValue {
			return ResultError
		}
		if negated {
			s.explicitUnset.Set(rules.ExplicitDocument)
			return ResultRequestFilterRule
		}
		s.explicitSet.Set(rules.ExplicitDocument)
		if rule.Decision == rules.DecisionPass {
			s.activationSet.Set(rules.ActivationWholeDocument)
		}

	case "popup":
		if hasValue {
			return ResultError
		}
		if negated {
			s.explicitUnset.Set(rules.ExplicitPopup)
		} else {
			s.explicitSet.Set(rules.ExplicitPopup)
		}

	case "all":
		if hasValue || negated {
			return ResultError
		}
		s.resourceSet = rules.AllResourceTypes
		s.explicitSet = rules.AllExplicitTypes

	case "match-case":
		if hasValue {
			return ResultError
		}
		rule.IsCaseSensitive = !negated

	case "third-party", "3p":
		if hasValue {
			return ResultError
		}
		if negated {
			s.wantFirstParty = true
		} else {
			s.wantThirdParty = true
		}

	case "first-party", "1p":
		if hasValue {
			return ResultError
		}
		if negated {
			s.wantThirdParty = true
		} else {
			s.wantFirstParty = true
		}

	case "important":
		if negated || hasValue {
			return ResultError
		}
		if rule.Decision == rules.DecisionModify {
			rule.Decision = rules.DecisionModifyImportant
		}

	case "domain", "from":
		if negated || !hasValue || value == "" {
			return ResultError
		}
		included, excluded, ok := ParseDomains(value, '|')
		if !ok {
			return ResultError
		}
		rule.IncludedDomains.Union(included)
		rule.ExcludedDomains.Union(excluded)

	case "host":
		if negated || !hasValue || rule.Host != "" {
			return ResultError
		}
		host, ok := normalizeHostOption(value)
		if !ok {
			return ResultError
		}
		rule.Host = host

	case "csp":
		return applyCsp(rule, value, hasValue, negated)

	case "rewrite":
		resource, ok := strings.CutPrefix(value, "abp-resource:")
		if negated || !ok || resource == "" {
			s.unsupported = true
			return ResultRequestFilterRule
		}
		return setModifier(rule, rules.ModifierRedirect, resource)

	case "redirect", "redirect-rule":
		if negated {
			return ResultError
		}
		if !hasValue || value == "" {
			if rule.Decision != rules.DecisionPass {
				return ResultError
			}
			return setModifier(rule, rules.ModifierRedirect)
		}
		if res := setModifier(rule, rules.ModifierRedirect, value); res != ResultRequestFilterRule {
			return res
		}
		if name == "redirect-rule" {
			rule.ModifyBlock = false
		}

	case "ad-query-trigger":
		if negated || !hasValue || value == "" {
			return ResultError
		}
		var values []string
		for _, v := range strings.Split(value, "|") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			return ResultError
		}
		if res := setModifier(rule, rules.ModifierAdQueryTrigger, values...); res != ResultRequestFilterRule {
			return res
		}
		rule.ModifyBlock = false

	default:
		return ResultError
	}

	return ResultRequestFilterRule
}

// applyCsp handles both csp=<directives> and the bare exception form.
func applyCsp(rule *rules.RequestFilterRule, value string, hasValue, negated bool) Result {
	if negated {
		return ResultError
	}
	if !hasValue || value == "" {
		if rule.Decision != rules.DecisionPass {
			return ResultError
		}
		rule.IsCspRule = true
		return setModifier(rule, rules.ModifierCsp)
	}
	if strings.Contains(strings.ToLower(value), "report-uri") {
		return ResultError
	}
	rule.IsCspRule = true
	rule.ModifyBlock = false
	return setModifier(rule, rules.ModifierCsp, value)
}

func setModifier(rule *rules.RequestFilterRule, m rules.Modifier, values ...string) Result {
	if rule.Modifier != rules.NoModifier {
		return ResultError
	}
	rule.Modifier = m
	for _, v := range values {
		rule.ModifierValues.Add(v)
	}
	return ResultRequestFilterRule
}

func (s *optionsState) finish(rule *rules.RequestFilterRule) Result {
	if s.activationSet&s.activationUnset != 0 {
		return ResultError
	}

	explicit := s.explicitSet &^ s.explicitUnset
	if s.explicitSet.Any() && explicit.None() && s.resourceSet.None() && s.resourceUnset.None() {
		// popup,~popup and nothing else
		return ResultError
	}

	switch {
	case s.resourceUnset.Any():
		rule.ResourceTypes = rules.AllResourceTypes &^ s.resourceUnset
	case s.resourceSet.Any():
		rule.ResourceTypes = s.resourceSet
	case explicit.Any() || s.activationSet.Any():
		rule.ResourceTypes = 0
	default:
		rule.ResourceTypes = rules.AllResourceTypes
	}

	rule.ExplicitTypes = explicit
	rule.ActivationTypes = s.activationSet

	switch {
	case s.wantFirstParty && !s.wantThirdParty:
		rule.Party = rules.PartyFirst
	case s.wantThirdParty && !s.wantFirstParty:
		rule.Party = rules.PartyThird
	default:
		rule.Party = rules.PartyAll
	}

	if s.unsupported {
		return ResultUnsupported
	}
	if rule.ActivationTypes.Any() && rule.Decision != rules.DecisionPass {
		return ResultUnsupported
	}
	return ResultRequestFilterRule
}
