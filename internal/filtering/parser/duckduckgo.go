package parser

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/bnema/blockrules/internal/filtering/rules"
	"github.com/bnema/blockrules/internal/logging"
)

const (
	duckDuckGoTitle   = "DuckDuckGo tracker list"
	duckDuckGoExpires = 12 * time.Hour
)

var duckDuckGoResourceTypes = map[string]rules.ResourceType{
	"stylesheet":     rules.ResourceStylesheet,
	"image":          rules.ResourceImage,
	"object":         rules.ResourceObject,
	"script":         rules.ResourceScript,
	"xmlhttprequest": rules.ResourceXMLHTTPRequest,
	"subdocument":    rules.ResourceSubDocument,
	"font":           rules.ResourceFont,
	"media":          rules.ResourceMedia,
	"websocket":      rules.ResourceWebSocket,
	"ping":           rules.ResourcePing,
	"beacon":         rules.ResourcePing,
	"other":          rules.ResourceOther,
}

type ddgList struct {
	Trackers map[string]json.RawMessage `json:"trackers"`
	Entities map[string]json.RawMessage `json:"entities"`
}

type ddgEntity struct {
	Domains []string `json:"domains"`
}

type ddgTracker struct {
	Domain     string              `json:"domain"`
	Owner      *rules.TrackerOwner `json:"owner"`
	Default    string              `json:"default"`
	Categories []string            `json:"categories"`
	Rules      []json.RawMessage   `json:"rules"`
}

type ddgRule struct {
	Rule       *string   `json:"rule"`
	Action     string    `json:"action"`
	Surrogate  string    `json:"surrogate"`
	Options    *ddgScope `json:"options"`
	Exceptions *ddgScope `json:"exceptions"`
}

type ddgScope struct {
	Domains *[]string `json:"domains"`
	Types   *[]string `json:"types"`
}

// scope is a validated ddgScope. A nil set means "not constrained".
type scope struct {
	domains rules.StringSet
	types   rules.ResourceTypes
	typed   bool
}

// DuckDuckGoRulesParser converts a DuckDuckGo tracker list into request filter rules.
type DuckDuckGoRulesParser struct{}

func NewDuckDuckGoRulesParser() *DuckDuckGoRulesParser {
	return &DuckDuckGoRulesParser{}
}

// Parse decodes data and builds a ParseResult. Malformed trackers and rules
// are counted as invalid and skipped.
func (d *DuckDuckGoRulesParser) Parse(ctx context.Context, data []byte) *rules.ParseResult {
	log := logging.Component(ctx, "ddg-parser")
	result := rules.NewParseResult()

	var list ddgList
	if err := json.Unmarshal(data, &list); err != nil {
		log.Debug().Err(err).Msg("tracker list is not valid JSON")
		result.FetchResult = rules.FetchFileUnsupported
		return result
	}

	entities := make(map[string][]string, len(list.Entities))
	for name, raw := range list.Entities {
		var entity ddgEntity
		if err := json.Unmarshal(raw, &entity); err != nil {
			continue
		}
		entities[name] = entity.Domains
	}

	for _, key := range rules.NewStringSet(keys(list.Trackers)...).Sorted() {
		var tracker ddgTracker
		if err := json.Unmarshal(list.Trackers[key], &tracker); err != nil {
			result.RulesInfo.InvalidRules++
			log.Trace().Err(err).Str("tracker", key).Msg("malformed tracker")
			continue
		}
		if tracker.Domain == "" {
			tracker.Domain = key
		}
		d.parseTracker(result, &tracker, entities)
	}

	if len(result.RequestFilterRules) == 0 {
		result.FetchResult = rules.FetchFileUnsupported
	} else {
		result.Metadata.Title = duckDuckGoTitle
		result.Metadata.Expires = duckDuckGoExpires
	}

	log.Debug().
		Int("rules", len(result.RequestFilterRules)).
		Int("trackers", len(result.TrackerInfos)).
		Int("invalid", result.RulesInfo.InvalidRules).
		Int("unsupported", result.RulesInfo.UnsupportedRules).
		Msg("parsed tracker list")

	return result
}

func (d *DuckDuckGoRulesParser) parseTracker(result *rules.ParseResult, tracker *ddgTracker, entities map[string][]string) {
	domain, ok := NormalizeHost(tracker.Domain)
	if !ok {
		result.RulesInfo.InvalidRules++
		return
	}

	var defaultIgnore bool
	switch tracker.Default {
	case "block":
	case "ignore":
		defaultIgnore = true
	default:
		result.RulesInfo.InvalidRules++
		return
	}

	if tracker.Owner != nil || len(tracker.Categories) > 0 {
		if result.TrackerInfos == nil {
			result.TrackerInfos = make(map[string]rules.TrackerInfo)
		}
		result.TrackerInfos[domain] = rules.TrackerInfo{Owner: tracker.Owner, Categories: tracker.Categories}
	}

	excludedOrigins := rules.NewStringSet(domain)
	if tracker.Owner != nil {
		for _, sibling := range entities[tracker.Owner.Name] {
			if normalized, ok := NormalizeHost(sibling); ok {
				excludedOrigins.Add(normalized)
			}
		}
	}

	if !defaultIgnore {
		rule := newHostRule(domain)
		rule.ExcludedDomains = excludedOrigins.Clone()
		result.RequestFilterRules = append(result.RequestFilterRules, rule)
		result.RulesInfo.ValidRules++
	}

	for _, raw := range tracker.Rules {
		var entry ddgRule
		if err := json.Unmarshal(raw, &entry); err != nil {
			result.RulesInfo.InvalidRules++
			continue
		}
		switch compileTrackerRule(result, &entry, defaultIgnore, excludedOrigins) {
		case ResultRequestFilterRule:
			result.RulesInfo.ValidRules++
		case ResultUnsupported:
			result.RulesInfo.UnsupportedRules++
		default:
			result.RulesInfo.InvalidRules++
		}
	}
}

func compileTrackerRule(result *rules.ParseResult, entry *ddgRule, defaultIgnore bool, excludedOrigins rules.StringSet) Result {
	if entry.Rule == nil || *entry.Rule == "" {
		return ResultError
	}

	var ignore bool
	switch entry.Action {
	case "", "block":
	case "ignore":
		ignore = true
	default:
		return ResultError
	}

	options, ok := validateScope(entry.Options)
	if !ok {
		return ResultError
	}
	exceptions, ok := validateScope(entry.Exceptions)
	if !ok {
		return ResultError
	}

	if entry.Surrogate == "" && ignore == defaultIgnore && exceptions == nil {
		return ResultUnsupported
	}

	base := rules.NewRequestFilterRule()
	if !setTrackerPattern(&base, *entry.Rule) {
		return ResultError
	}
	base.ExcludedDomains = excludedOrigins.Clone()

	var emitted []rules.RequestFilterRule

	if entry.Surrogate != "" && !ignore {
		redirect := scopedRule(&base, rules.DecisionModify, options)
		redirect.Modifier = rules.ModifierRedirect
		redirect.ModifierValues = rules.NewStringSet(entry.Surrogate)
		redirect.ModifyBlock = false
		if !defaultIgnore && exceptions != nil {
			narrowByExceptions(&redirect, exceptions)
		}
		emitted = append(emitted, redirect)
	}

	switch {
	case !defaultIgnore && !ignore:
		if exceptions != nil {
			if pass, ok := intersectScopes(&base, options, exceptions); ok {
				emitted = append(emitted, pass)
			}
		}

	case defaultIgnore && !ignore:
		if entry.Surrogate == "" {
			emitted = append(emitted, scopedRule(&base, rules.DecisionModify, options))
		}
		if exceptions != nil {
			emitted = append(emitted, scopedRule(&base, rules.DecisionPass, exceptions))
		}

	case !defaultIgnore && ignore:
		emitted = append(emitted, scopedRule(&base, rules.DecisionPass, options))
	}

	if len(emitted) == 0 {
		return ResultUnsupported
	}
	result.RequestFilterRules = append(result.RequestFilterRules, emitted...)
	return ResultRequestFilterRule
}

// validateScope returns nil for an absent scope and false for a malformed one.
func validateScope(raw *ddgScope) (*scope, bool) {
	if raw == nil {
		return nil, true
	}
	if raw.Domains == nil && raw.Types == nil {
		return nil, false
	}

	s := &scope{}
	if raw.Domains != nil {
		if len(*raw.Domains) == 0 {
			return nil, false
		}
		s.domains = rules.StringSet{}
		for _, d := range *raw.Domains {
			domain, ok := NormalizeHost(d)
			if !ok {
				return nil, false
			}
			s.domains.Add(domain)
		}
	}
	if raw.Types != nil {
		if len(*raw.Types) == 0 {
			return nil, false
		}
		for _, name := range *raw.Types {
			t, ok := duckDuckGoResourceTypes[name]
			if !ok {
				return nil, false
			}
			s.types |= rules.ResourceTypes(t)
		}
		s.typed = true
	}
	return s, true
}

// scopedRule copies base with decision and the constraints of s.
func scopedRule(base *rules.RequestFilterRule, decision rules.Decision, s *scope) rules.RequestFilterRule {
	rule := base.Clone()
	rule.Decision = decision
	rule.ResourceTypes = rules.AllResourceTypes
	if s == nil {
		return rule
	}
	if s.domains != nil {
		rule.IncludedDomains = s.domains.Clone()
	}
	if s.typed {
		rule.ResourceTypes = s.types
	}
	return rule
}

// narrowByExceptions removes the exception scope from a rule when the
// exceptions constrain only one dimension. Both at once cannot be expressed.
func narrowByExceptions(rule *rules.RequestFilterRule, exceptions *scope) {
	switch {
	case exceptions.domains != nil && !exceptions.typed:
		rule.ExcludedDomains.Union(exceptions.domains)
	case exceptions.domains == nil && exceptions.typed:
		rule.ResourceTypes &^= exceptions.types
	}
}

// intersectScopes builds the pass rule for requests that are both inside the
// rule's options and inside its exceptions.
func intersectScopes(base *rules.RequestFilterRule, options, exceptions *scope) (rules.RequestFilterRule, bool) {
	rule := scopedRule(base, rules.DecisionPass, exceptions)

	if options == nil {
		return rule, true
	}

	if options.typed {
		rule.ResourceTypes &= options.types
		if rule.ResourceTypes.None() {
			return rule, false
		}
	}

	switch {
	case options.domains != nil && exceptions.domains != nil:
		rule.IncludedDomains = intersectDomains(options.domains, exceptions.domains)
		if len(rule.IncludedDomains) == 0 {
			return rule, false
		}
	case options.domains != nil:
		rule.IncludedDomains = options.domains.Clone()
	}
	return rule, true
}

// intersectDomains keeps, for every pair that is equal or in a
// domain/subdomain relation, the more specific of the two.
func intersectDomains(a, b rules.StringSet) rules.StringSet {
	out := rules.StringSet{}
	for _, x := range a.Sorted() {
		for _, y := range b.Sorted() {
			switch {
			case x == y:
				out.Add(x)
			case isSubdomainOf(x, y):
				out.Add(x)
			case isSubdomainOf(y, x):
				out.Add(y)
			}
		}
	}
	return out
}

// setTrackerPattern stores a tracker rule pattern, unescaping it to a plain
// pattern when it uses no regex operator.
func setTrackerPattern(rule *rules.RequestFilterRule, pattern string) bool {
	if plain, ok := unescapeRegex(pattern); ok {
		rule.PatternType = rules.PatternPlain
		rule.Pattern = plain
		return true
	}

	if _, err := regexp.Compile(pattern); err != nil {
		return false
	}
	rule.PatternType = rules.PatternRegex
	rule.Pattern = pattern
	rule.NgramSearchString = BuildNgramSearchString(pattern)
	return true
}

func unescapeRegex(pattern string) (string, bool) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == '\\' {
			if i+1 >= len(pattern) || isASCIIAlnum(pattern[i+1]) {
				return "", false
			}
			b.WriteByte(pattern[i+1])
			i++
			continue
		}
		if strings.IndexByte(`.*+?()[]{}|^$`, c) >= 0 {
			return "", false
		}
		b.WriteByte(c)
	}
	return b.String(), true
}

func isASCIIAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
