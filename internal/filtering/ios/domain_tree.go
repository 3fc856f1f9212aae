package ios

import (
	"slices"
	"strings"

	"github.com/bnema/blockrules/internal/filtering/rules"
)

type domainState uint8

const (
	stateUnset domainState = iota
	stateIncluded
	stateExcluded
)

// domainNode is one label of a domain, children keyed by the next label
// toward the subdomain.
type domainNode struct {
	children map[string]*domainNode
	state    domainState
	// overridden is set when a deeper node flips the effective state.
	overridden bool
}

func (n *domainNode) child(label string) *domainNode {
	if n.children == nil {
		n.children = make(map[string]*domainNode)
	}
	c, ok := n.children[label]
	if !ok {
		c = &domainNode{}
		n.children[label] = c
	}
	return c
}

// domainTree reconciles included and excluded domain sets into alternating
// levels: each level carves a scope out of the previous one. The content
// blocker cannot mix if-domain and unless-domain in one trigger, so every
// level becomes its own trigger.
type domainTree struct {
	root *domainNode
}

type domainEntry struct {
	Name       string
	Overridden bool
}

type domainLevel []domainEntry

func buildDomainTree(included, excluded rules.StringSet) *domainTree {
	root := &domainNode{state: stateIncluded}
	if len(included) > 0 {
		root.state = stateExcluded
	}

	t := &domainTree{root: root}
	for d := range included {
		t.insert(d).state = stateIncluded
	}
	// exclusion wins on the same node
	for d := range excluded {
		t.insert(d).state = stateExcluded
	}
	for _, c := range root.children {
		c.mark(root.state)
	}
	return t
}

func (t *domainTree) insert(domain string) *domainNode {
	labels := strings.Split(domain, ".")
	n := t.root
	for i := len(labels) - 1; i >= 0; i-- {
		n = n.child(labels[i])
	}
	return n
}

// mark sets overridden below n and reports whether the subtree rooted at n
// differs from parent anywhere.
func (n *domainNode) mark(parent domainState) bool {
	effective := parent
	if n.state != stateUnset {
		effective = n.state
	}
	for _, c := range n.children {
		if c.mark(effective) {
			n.overridden = true
		}
	}
	return effective != parent || n.overridden
}

// generic reports whether the tree starts from "every domain", meaning its
// first level holds exclusions.
func (t *domainTree) generic() bool {
	return t.root.state == stateIncluded
}

// levelState is the state shared by every domain of level k.
func (t *domainTree) levelState(k int) domainState {
	first, second := stateIncluded, stateExcluded
	if t.generic() {
		first, second = second, first
	}
	if k%2 == 0 {
		return first
	}
	return second
}

// levels collects, depth first, every domain whose state differs from the one
// it inherits. The nth flip along a path lands in level n.
func (t *domainTree) levels() []domainLevel {
	var levels []domainLevel

	var walk func(n *domainNode, name string, inherited domainState, depth int)
	walk = func(n *domainNode, name string, inherited domainState, depth int) {
		if n.state != stateUnset && n.state != inherited {
			for len(levels) <= depth {
				levels = append(levels, nil)
			}
			levels[depth] = append(levels[depth], domainEntry{Name: name, Overridden: n.overridden})
			inherited = n.state
			depth++
		}
		for _, label := range sortedLabels(n.children) {
			walk(n.children[label], label+"."+name, inherited, depth)
		}
	}

	for _, label := range sortedLabels(t.root.children) {
		walk(t.root.children[label], label, t.root.state, 0)
	}

	for _, level := range levels {
		slices.SortFunc(level, func(a, b domainEntry) int { return strings.Compare(a.Name, b.Name) })
	}
	return levels
}

func sortedLabels(children map[string]*domainNode) []string {
	labels := make([]string, 0, len(children))
	for l := range children {
		labels = append(labels, l)
	}
	slices.Sort(labels)
	return labels
}

// wildcards renders the level for if-domain/unless-domain, matching subdomains too.
func (l domainLevel) wildcards() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = "*" + e.Name
	}
	return out
}

// allowDomains renders the level for an allow rule. Allow rules cannot be
// paired, so overridden domains only match exactly and their subdomains stay
// blocked.
func (l domainLevel) allowDomains() []string {
	out := make([]string, len(l))
	for i, e := range l {
		if e.Overridden {
			out[i] = e.Name
		} else {
			out[i] = "*" + e.Name
		}
	}
	return out
}

func (l domainLevel) names() []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.Name
	}
	return out
}
