package parser

import (
	"net/netip"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"

	"github.com/bnema/blockrules/internal/filtering/rules"
)

// NormalizeHost lowercases a bare hostname, converts it to its ASCII (punycode)
// form and validates it. Schemes, ports, paths and wildcards are rejected.
func NormalizeHost(raw string) (string, bool) {
	host := strings.ToLower(strings.TrimSpace(raw))
	if host == "" {
		return "", false
	}

	ascii, err := idna.Punycode.ToASCII(host)
	if err != nil {
		return "", false
	}

	if strings.HasPrefix(ascii, ".") || strings.HasSuffix(ascii, ".") {
		return "", false
	}
	for i := 0; i < len(ascii); i++ {
		if !isHostByte(ascii[i]) {
			return "", false
		}
	}
	if _, ok := dns.IsDomainName(ascii); !ok {
		return "", false
	}
	return ascii, true
}

// normalizeHostOption accepts either a hostname or a bracketed IPv6 literal.
func normalizeHostOption(raw string) (string, bool) {
	if strings.HasPrefix(raw, "[") {
		if !strings.HasSuffix(raw, "]") {
			return "", false
		}
		addr, err := netip.ParseAddr(raw[1 : len(raw)-1])
		if err != nil || !addr.Is6() {
			return "", false
		}
		return "[" + addr.String() + "]", true
	}
	return NormalizeHost(raw)
}

func isHostByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-' || c == '.' || c == '_'
}

// isHostRune is the character set of the host part of a host-anchored pattern.
// Non-ASCII runes are accepted and punycoded later.
func isHostRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '.', r == '_':
		return true
	}
	return r > 0x7f
}

// ParseDomains splits a domain list on sep. Tokens starting with '~' are
// excluded domains, the others included. Empty tokens are skipped; any
// invalid token makes the whole list invalid.
func ParseDomains(value string, sep byte) (included, excluded rules.StringSet, ok bool) {
	included = rules.StringSet{}
	excluded = rules.StringSet{}

	for _, token := range strings.Split(value, string(sep)) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		target := included
		if strings.HasPrefix(token, "~") {
			target = excluded
			token = token[1:]
		}

		domain, valid := NormalizeHost(token)
		if !valid {
			return nil, nil, false
		}
		target.Add(domain)
	}

	return included, excluded, true
}

// isSubdomainOf reports whether sub is a strict subdomain of parent.
func isSubdomainOf(sub, parent string) bool {
	return len(sub) > len(parent) &&
		strings.HasSuffix(sub, parent) &&
		sub[len(sub)-len(parent)-1] == '.'
}
