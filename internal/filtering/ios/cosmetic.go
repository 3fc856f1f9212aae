package ios

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/blockrules/internal/filtering/rules"
)

// injectionGroup merges every rule that shares one selector or one scriptlet
// invocation, since the content blocker keys its triggers by them.
type injectionGroup struct {
	allowAll     bool
	allowDomains rules.StringSet

	generic  []*rules.ContentInjectionRuleCore
	specific []*rules.ContentInjectionRuleCore
}

func newInjectionGroup() *injectionGroup {
	return &injectionGroup{allowDomains: rules.NewStringSet()}
}

func (g *injectionGroup) add(core *rules.ContentInjectionRuleCore) {
	switch {
	case core.IsAllowRule && len(core.IncludedDomains) == 0:
		g.allowAll = true
	case core.IsAllowRule:
		g.allowDomains.Union(core.IncludedDomains)
	case len(core.IncludedDomains) == 0:
		g.generic = append(g.generic, core)
	default:
		g.specific = append(g.specific, core)
	}
}

// covers reports whether core applies on domain. The closest of domain and
// its parents listed by the rule decides, exclusion first.
func covers(core *rules.ContentInjectionRuleCore, domain string) bool {
	for d := domain; ; {
		if core.ExcludedDomains.Has(d) {
			return false
		}
		if core.IncludedDomains.Has(d) {
			return true
		}
		i := strings.IndexByte(d, '.')
		if i < 0 {
			return len(core.IncludedDomains) == 0
		}
		d = d[i+1:]
	}
}

// mergedExclusions collects the exclusions of from that no blocking rule of
// the group still covers. One rule's exclusion must not cancel another rule
// that applies on the same domain.
func (g *injectionGroup) mergedExclusions(from []*rules.ContentInjectionRuleCore) rules.StringSet {
	excluded := rules.NewStringSet()
	for _, core := range from {
		for d := range core.ExcludedDomains {
			if excluded.Has(d) || g.coveredByAny(d) {
				continue
			}
			excluded.Add(d)
		}
	}
	excluded.Union(g.allowDomains)
	return excluded
}

func (g *injectionGroup) coveredByAny(domain string) bool {
	for _, list := range [][]*rules.ContentInjectionRuleCore{g.generic, g.specific} {
		for _, core := range list {
			if covers(core, domain) {
				return true
			}
		}
	}
	return false
}

// genericTree returns nil when no generic rule was added.
func (g *injectionGroup) genericTree() *domainTree {
	if len(g.generic) == 0 {
		return nil
	}
	return buildDomainTree(nil, g.mergedExclusions(g.generic))
}

// specificTree returns nil when no domain-specific rule was added.
func (g *injectionGroup) specificTree() *domainTree {
	if len(g.specific) == 0 {
		return nil
	}
	included := rules.NewStringSet()
	for _, core := range g.specific {
		included.Union(core.IncludedDomains)
	}
	return buildDomainTree(included, g.mergedExclusions(g.specific))
}

func (c *compiler) addCosmeticRules(cosmeticRules []rules.CosmeticRule) {
	var order []string
	groups := make(map[string]*injectionGroup)
	for i := range cosmeticRules {
		rule := &cosmeticRules[i]
		g, ok := groups[rule.Selector]
		if !ok {
			g = newInjectionGroup()
			groups[rule.Selector] = g
			order = append(order, rule.Selector)
		}
		g.add(&rule.Core)
	}

	trigger := []Trigger{{URLFilter: matchAll}}
	for _, selector := range order {
		g := groups[selector]
		if g.allowAll {
			continue
		}
		action := Action{Type: ActionTypeCSSDisplayNone, Selector: selector}
		if tree := g.genericTree(); tree != nil {
			addBlockRules(&c.out.Cosmetic.RuleGroup, tree, trigger, action)
		}
		if tree := g.specificTree(); tree != nil {
			addBlockRules(&c.out.Cosmetic.RuleGroup, tree, trigger, action)
		}
	}
}

func (c *compiler) addScriptletRules(scriptletRules []rules.ScriptletInjectionRule) error {
	type key struct{ name, args string }

	var order []key
	groups := make(map[key]*injectionGroup)
	for i := range scriptletRules {
		rule := &scriptletRules[i]
		args := rule.Arguments
		if args == nil {
			args = []string{}
		}
		encoded, err := json.Marshal(args)
		if err != nil {
			return fmt.Errorf("encode scriptlet arguments: %w", err)
		}

		k := key{name: rule.ScriptletName, args: string(encoded)}
		g, ok := groups[k]
		if !ok {
			g = newInjectionGroup()
			groups[k] = g
			order = append(order, k)
		}
		g.add(&rule.Core)
	}

	for _, k := range order {
		g := groups[k]
		if g.allowAll {
			continue
		}

		levels := &ScriptletLevels{}
		if tree := g.genericTree(); tree != nil {
			levels.Generic = levelNames(tree)
			if len(levels.Generic) == 0 {
				// no exclusions: an empty exclusion level
				levels.Generic = [][]string{{}}
			}
		}
		if tree := g.specificTree(); tree != nil {
			levels.Specific = levelNames(tree)
		}
		if levels.Generic == nil && levels.Specific == nil {
			continue
		}

		if c.out.Cosmetic.Scriptlets == nil {
			c.out.Cosmetic.Scriptlets = make(map[string]map[string]*ScriptletLevels)
		}
		byArgs, ok := c.out.Cosmetic.Scriptlets[k.name]
		if !ok {
			byArgs = make(map[string]*ScriptletLevels)
			c.out.Cosmetic.Scriptlets[k.name] = byArgs
		}
		byArgs[k.args] = levels
	}
	return nil
}

func levelNames(tree *domainTree) [][]string {
	levels := tree.levels()
	if len(levels) == 0 {
		return nil
	}
	out := make([][]string, len(levels))
	for i, level := range levels {
		out[i] = level.names()
	}
	return out
}
