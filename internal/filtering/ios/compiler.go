// Package ios compiles a ParseResult into a declarative content-blocker
// ruleset in the JSON dialect understood by WebKit-based blockers.
package ios

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/blockrules/internal/filtering"
	"github.com/bnema/blockrules/internal/filtering/rules"
	"github.com/bnema/blockrules/internal/logging"
)

// unsupportedResourceTypes have no content-blocker equivalent and are dropped.
const unsupportedResourceTypes = rules.ResourceTypes(rules.ResourceWebTransport | rules.ResourceWebBundle | rules.ResourceWebRTC)

// resourceTypeNames is the emission order of resource types. SubDocument is
// handled separately.
var resourceTypeNames = []struct {
	t    rules.ResourceType
	name string
}{
	{rules.ResourceImage, ResourceTypeImage},
	{rules.ResourceStylesheet, ResourceTypeStyleSheet},
	{rules.ResourceScript, ResourceTypeScript},
	{rules.ResourceFont, ResourceTypeFont},
	{rules.ResourceMedia, ResourceTypeMedia},
	{rules.ResourcePing, ResourceTypePing},
	{rules.ResourceXMLHTTPRequest, ResourceTypeFetch},
	{rules.ResourceWebSocket, ResourceTypeWebSocket},
	{rules.ResourceObject, ResourceTypeOther},
	{rules.ResourceOther, ResourceTypeOther},
}

// CompileIosRules writes the content-blocker JSON for result to outputPath and
// returns the checksum of the written document.
func CompileIosRules(ctx context.Context, result *rules.ParseResult, outputPath string) (string, error) {
	log := logging.Component(ctx, "ios-compiler")

	data, err := compile(log, result)
	if err != nil {
		return "", err
	}
	if err := filtering.WriteArtifact(outputPath, nil, data); err != nil {
		log.Error().Err(err).Str("path", outputPath).Msg("failed to write content-blocker ruleset")
		return "", err
	}

	checksum := filtering.Checksum(data)
	log.Debug().Str("path", outputPath).Int("bytes", len(data)).Str("checksum", checksum).Msg("compiled content-blocker ruleset")
	return checksum, nil
}

// CompileIosRulesToString returns the content-blocker JSON for result.
func CompileIosRulesToString(ctx context.Context, result *rules.ParseResult) (string, error) {
	log := logging.Component(ctx, "ios-compiler")
	data, err := compile(log, result)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func compile(log zerolog.Logger, result *rules.ParseResult) ([]byte, error) {
	c := &compiler{log: log}
	c.out.Version = FormatVersion

	for i := range result.RequestFilterRules {
		c.addRequestFilterRule(&result.RequestFilterRules[i])
	}
	c.addCosmeticRules(result.CosmeticRules)
	if err := c.addScriptletRules(result.ScriptletInjectionRules); err != nil {
		return nil, err
	}

	if c.skipped > 0 {
		log.Debug().Int("skipped", c.skipped).Msg("rules not representable as content-blocker rules")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c.out); err != nil {
		return nil, fmt.Errorf("encode content-blocker ruleset: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

type compiler struct {
	log     zerolog.Logger
	out     Ruleset
	skipped int
}

func (c *compiler) skip(rule fmt.Stringer, reason string) {
	c.skipped++
	c.log.Trace().Stringer("rule", rule).Str("reason", reason).Msg("skipping rule")
}

func (c *compiler) addRequestFilterRule(rule *rules.RequestFilterRule) {
	if rule.Modifier != rules.NoModifier || rule.IsCspRule {
		c.skip(rule, "modifier")
		return
	}

	urlFilter, ok := RegexFromRule(rule)
	if !ok {
		c.skip(rule, "pattern")
		return
	}

	if rule.ActivationTypes.Any() {
		c.addActivations(rule, urlFilter)
	}

	triggers := resourceTriggers(rule, urlFilter)
	if len(triggers) == 0 {
		return
	}
	tree := buildDomainTree(rule.IncludedDomains, rule.ExcludedDomains)

	switch rule.Decision {
	case rules.DecisionPass:
		c.out.Network.Allow = append(c.out.Network.Allow,
			firstLevelRules(tree, triggers, Action{Type: ActionTypeIgnorePreviousRules})...)
	case rules.DecisionModifyImportant:
		// Important rules run last and cannot be paired either: they keep
		// matching subdomains and lose deeper exceptions instead.
		c.out.Network.BlockImportant = append(c.out.Network.BlockImportant,
			firstLevelRules(tree, triggers, Action{Type: ActionTypeBlock})...)
	default:
		addBlockRules(&c.out.Network, tree, triggers, Action{Type: ActionTypeBlock})
	}
}

// addActivations turns exception activation options into top-URL gated
// ignore-previous-rules entries.
func (c *compiler) addActivations(rule *rules.RequestFilterRule, urlFilter string) {
	ignore := Rule{
		Trigger: Trigger{
			URLFilter:                matchAll,
			URLFilterIsCaseSensitive: rule.IsCaseSensitive,
			IfTopURL:                 []string{urlFilter},
		},
		Action: Action{Type: ActionTypeIgnorePreviousRules},
	}

	if rule.ActivationTypes.Has(rules.ActivationWholeDocument) {
		c.out.Network.Allow = append(c.out.Network.Allow, ignore)
		c.out.Cosmetic.Allow = append(c.out.Cosmetic.Allow, ignore)
	}
	if rule.ActivationTypes.Has(rules.ActivationGenericBlock) {
		c.out.Network.GenericAllow = append(c.out.Network.GenericAllow, ignore)
	}
	if rule.ActivationTypes.Has(rules.ActivationGenericHide) {
		c.out.Cosmetic.GenericAllow = append(c.out.Cosmetic.GenericAllow, ignore)
	}
	if rule.ActivationTypes.Has(rules.ActivationElementHide) {
		c.out.Cosmetic.Allow = append(c.out.Cosmetic.Allow, ignore)
	}
}

// resourceTriggers returns one trigger per load context the rule needs.
func resourceTriggers(rule *rules.RequestFilterRule, urlFilter string) []Trigger {
	base := Trigger{
		URLFilter:                urlFilter,
		URLFilterIsCaseSensitive: rule.IsCaseSensitive,
		LoadType:                 loadType(rule.Party),
	}

	types := rule.ResourceTypes &^ unsupportedResourceTypes
	var triggers []Trigger

	if types.Has(rules.ResourceSubDocument) {
		t := base
		t.ResourceType = []string{ResourceTypeDocument}
		t.LoadContext = []string{LoadContextChildFrame}
		triggers = append(triggers, t)
	}

	var names []string
	for _, rt := range resourceTypeNames {
		if types.Has(rt.t) && (len(names) == 0 || names[len(names)-1] != rt.name) {
			names = append(names, rt.name)
		}
	}
	if rule.ExplicitTypes.Has(rules.ExplicitPopup) {
		names = append(names, ResourceTypePopup)
	}
	if len(names) > 0 {
		t := base
		t.ResourceType = names
		triggers = append(triggers, t)
	}

	if rule.ExplicitTypes.Has(rules.ExplicitDocument) {
		t := base
		t.ResourceType = []string{ResourceTypeDocument}
		t.LoadContext = []string{LoadContextTopFrame}
		triggers = append(triggers, t)
	}
	return triggers
}

func loadType(p rules.Party) []string {
	switch p {
	case rules.PartyFirst:
		return []string{LoadTypeFirstParty}
	case rules.PartyThird:
		return []string{LoadTypeThirdParty}
	default:
		return nil
	}
}

// addBlockRules places blocking triggers into group according to the domain
// levels of tree. More than one level needs ordered block/allow tuples.
func addBlockRules(group *RuleGroup, tree *domainTree, triggers []Trigger, block Action) {
	levels := tree.levels()
	generic := tree.generic()
	if !generic && len(levels) == 0 {
		// every included domain was also excluded
		return
	}

	switch {
	case len(levels) == 0:
		for _, t := range triggers {
			group.block().Generic = append(group.block().Generic, Rule{Trigger: t, Action: block})
		}
	case len(levels) == 1 && generic:
		for _, t := range triggers {
			t.UnlessDomain = levels[0].wildcards()
			group.block().Generic = append(group.block().Generic, Rule{Trigger: t, Action: block})
		}
	case len(levels) == 1:
		for _, t := range triggers {
			t.IfDomain = levels[0].wildcards()
			group.block().Specific = append(group.block().Specific, Rule{Trigger: t, Action: block})
		}
	default:
		for _, t := range triggers {
			tuple := make([]Rule, 0, len(levels))
			for k, level := range levels {
				lt := t
				action := block
				if k == 0 && generic {
					lt.UnlessDomain = level.wildcards()
				} else {
					lt.IfDomain = level.wildcards()
					if tree.levelState(k) == stateExcluded {
						action = Action{Type: ActionTypeIgnorePreviousRules}
					}
				}
				tuple = append(tuple, Rule{Trigger: lt, Action: action})
			}
			group.BlockAllowPairs = append(group.BlockAllowPairs, tuple)
		}
	}
}

// firstLevelRules applies only the first domain level to triggers. Rules that
// cannot be paired use it, losing deeper overrides. An allow rule matches an
// overridden domain exactly so the overriding subdomains stay blocked; any
// other action keeps the subdomain wildcard.
func firstLevelRules(tree *domainTree, triggers []Trigger, action Action) []Rule {
	levels := tree.levels()
	generic := tree.generic()
	if !generic && len(levels) == 0 {
		return nil
	}

	out := make([]Rule, 0, len(triggers))
	for _, t := range triggers {
		if len(levels) > 0 {
			switch {
			case generic:
				t.UnlessDomain = levels[0].wildcards()
			case action.Type == ActionTypeIgnorePreviousRules:
				t.IfDomain = levels[0].allowDomains()
			default:
				t.IfDomain = levels[0].wildcards()
			}
		}
		out = append(out, Rule{Trigger: t, Action: action})
	}
	return out
}

func (g *RuleGroup) block() *BlockRules {
	if g.Block == nil {
		g.Block = &BlockRules{}
	}
	return g.Block
}
