// Package rules holds the in-memory representation of parsed filter lists.
// It is shared by the parsers and by both ruleset compilers.
package rules

import (
	"slices"
	"strings"
)

// Decision is what a request filter rule does with a matching request.
type Decision uint8

const (
	// DecisionModify blocks (or otherwise modifies) the request.
	DecisionModify Decision = iota
	// DecisionPass lets the request through, overriding Modify rules.
	DecisionPass
	// DecisionModifyImportant is a Modify that Pass rules cannot override.
	DecisionModifyImportant
)

func (d Decision) String() string {
	switch d {
	case DecisionModify:
		return "modify"
	case DecisionPass:
		return "pass"
	case DecisionModifyImportant:
		return "modify-important"
	default:
		return "unknown"
	}
}

// PatternType tells how Pattern must be interpreted.
type PatternType uint8

const (
	PatternPlain PatternType = iota
	PatternWildcarded
	PatternRegex
)

func (p PatternType) String() string {
	switch p {
	case PatternPlain:
		return "plain"
	case PatternWildcarded:
		return "wildcarded"
	case PatternRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// Modifier is a side effect applied on top of the decision.
type Modifier uint8

const (
	NoModifier Modifier = iota
	ModifierRedirect
	ModifierCsp
	ModifierAdQueryTrigger
)

func (m Modifier) String() string {
	switch m {
	case NoModifier:
		return "none"
	case ModifierRedirect:
		return "redirect"
	case ModifierCsp:
		return "csp"
	case ModifierAdQueryTrigger:
		return "ad-query-trigger"
	default:
		return "unknown"
	}
}

// RequestFilterRule is one network request filtering directive.
type RequestFilterRule struct {
	Decision        Decision
	ResourceTypes   ResourceTypes
	ExplicitTypes   ExplicitTypes
	ActivationTypes ActivationTypes
	Party           Party
	AnchorType      AnchorType
	PatternType     PatternType

	Pattern string
	// NgramSearchString is empty when no safe substring exists.
	NgramSearchString string
	Host              string

	IsCaseSensitive bool
	IsCspRule       bool

	Modifier       Modifier
	ModifierValues StringSet

	IncludedDomains StringSet
	ExcludedDomains StringSet

	// ModifyBlock is false for rules that only alter a request (csp, redirect-rule).
	ModifyBlock bool
}

// NewRequestFilterRule returns a rule with the defaults every parser starts
// from: blocking, both parties, nothing matched yet.
func NewRequestFilterRule() RequestFilterRule {
	return RequestFilterRule{
		Decision:        DecisionModify,
		Party:           PartyAll,
		PatternType:     PatternPlain,
		ModifyBlock:     true,
		ModifierValues:  StringSet{},
		IncludedDomains: StringSet{},
		ExcludedDomains: StringSet{},
	}
}

// HasPurpose reports whether the rule matches or changes anything at all.
func (r *RequestFilterRule) HasPurpose() bool {
	return r.ResourceTypes.Any() || r.ExplicitTypes.Any() || r.ActivationTypes.Any()
}

// IsGeneric reports whether the rule applies regardless of the document domain.
func (r *RequestFilterRule) IsGeneric() bool {
	return len(r.IncludedDomains) == 0
}

// Clone returns a deep copy of the rule.
func (r *RequestFilterRule) Clone() RequestFilterRule {
	c := *r
	c.ModifierValues = r.ModifierValues.Clone()
	c.IncludedDomains = r.IncludedDomains.Clone()
	c.ExcludedDomains = r.ExcludedDomains.Clone()
	return c
}

func (r RequestFilterRule) String() string {
	var b strings.Builder
	b.WriteString(r.Decision.String())
	b.WriteString(" ")
	b.WriteString(r.AnchorType.String())
	b.WriteString(r.PatternType.String())
	b.WriteString(":")
	b.WriteString(r.Pattern)
	if r.Host != "" {
		b.WriteString(" host=")
		b.WriteString(r.Host)
	}
	if r.Modifier != NoModifier {
		b.WriteString(" ")
		b.WriteString(r.Modifier.String())
		b.WriteString("=")
		b.WriteString(strings.Join(r.ModifierValues.Sorted(), "|"))
	}
	return b.String()
}

// ContentInjectionRuleCore is shared by rules that act on the DOM.
type ContentInjectionRuleCore struct {
	IsAllowRule     bool
	IncludedDomains StringSet
	ExcludedDomains StringSet
}

// NewContentInjectionRuleCore returns a core with empty domain sets.
func NewContentInjectionRuleCore() ContentInjectionRuleCore {
	return ContentInjectionRuleCore{
		IncludedDomains: StringSet{},
		ExcludedDomains: StringSet{},
	}
}

// CosmeticRule hides the elements matched by a CSS selector.
type CosmeticRule struct {
	Core     ContentInjectionRuleCore
	Selector string
}

// ScriptletInjectionRule injects a named scriptlet with its arguments.
type ScriptletInjectionRule struct {
	Core          ContentInjectionRuleCore
	ScriptletName string
	Arguments     []string
}

// StringSet is an unordered set of strings.
type StringSet map[string]struct{}

// NewStringSet builds a set from values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s StringSet) Add(v string) {
	s[v] = struct{}{}
}

func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Sorted returns the members in lexicographic order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

func (s StringSet) Clone() StringSet {
	c := make(StringSet, len(s))
	for v := range s {
		c[v] = struct{}{}
	}
	return c
}

// Union adds every member of other to s.
func (s StringSet) Union(other StringSet) {
	for v := range other {
		s[v] = struct{}{}
	}
}
