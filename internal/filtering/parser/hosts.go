package parser

import (
	"net/netip"
	"strings"

	"github.com/bnema/blockrules/internal/filtering/rules"
)

var loopbackAliases = map[string]struct{}{
	"localhost":             {},
	"localhost.localdomain": {},
	"local":                 {},
	"broadcasthost":         {},
	"ip6-localhost":         {},
	"ip6-loopback":          {},
	"0.0.0.0":               {},
}

// parseHostsLine expands "IP host1 host2..." into one host-anchored rule per host.
func (p *RuleParser) parseHostsLine(addr netip.Addr, hosts []string) Result {
	if !addr.Is4() {
		return ResultUnsupported
	}

	added := 0
	invalid := false
	for _, token := range hosts {
		if strings.HasPrefix(token, "#") {
			break
		}
		if _, skip := loopbackAliases[strings.ToLower(token)]; skip {
			continue
		}

		host, ok := NormalizeHost(token)
		if !ok {
			invalid = true
			continue
		}

		p.result.RequestFilterRules = append(p.result.RequestFilterRules, newHostRule(host))
		added++
	}

	switch {
	case added > 0:
		return ResultRequestFilterRule
	case invalid:
		return ResultError
	default:
		return ResultUnsupported
	}
}

// newHostRule blocks every request to host and its subdomains.
func newHostRule(host string) rules.RequestFilterRule {
	rule := rules.NewRequestFilterRule()
	rule.ResourceTypes = rules.AllResourceTypes
	rule.AnchorType = rules.AnchorHost
	rule.Host = host
	rule.Pattern = host + "^"
	return rule
}
