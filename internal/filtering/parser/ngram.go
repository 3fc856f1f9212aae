package parser

import (
	"regexp/syntax"
	"strings"
)

// BuildNgramSearchString extracts the literal parts of a regex, joined by
// '*' where anything else may appear, for use as a pre-filter before the
// full regex runs. It returns "" when no literal can be trusted, which is
// always the case for a top-level alternation.
func BuildNgramSearchString(pattern string) string {
	if hasTopLevelAlternation(pattern) {
		return ""
	}

	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return ""
	}

	b := &ngramBuilder{}
	b.walk(re)
	return b.String()
}

type ngramBuilder struct {
	sb         strings.Builder
	pendingGap bool
	hasLiteral bool
}

func (b *ngramBuilder) literal(runes []rune) {
	if len(runes) == 0 {
		return
	}
	if b.pendingGap && b.hasLiteral {
		b.sb.WriteByte('*')
	}
	b.pendingGap = false
	b.hasLiteral = true
	b.sb.WriteString(string(runes))
}

func (b *ngramBuilder) gap() {
	b.pendingGap = true
}

func (b *ngramBuilder) String() string {
	return b.sb.String()
}

func (b *ngramBuilder) walk(re *syntax.Regexp) {
	switch re.Op {
	case syntax.OpLiteral:
		if re.Flags&syntax.FoldCase != 0 {
			b.gap()
			return
		}
		b.literal(re.Rune)
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			b.walk(sub)
		}
	case syntax.OpCapture:
		b.walk(re.Sub[0])
	case syntax.OpPlus:
		// x+ always contains one x, then maybe more.
		b.walk(re.Sub[0])
		b.gap()
	case syntax.OpRepeat:
		if re.Min >= 1 {
			b.walk(re.Sub[0])
		}
		b.gap()
	case syntax.OpEmptyMatch:
	default:
		b.gap()
	}
}

// hasTopLevelAlternation reports a '|' outside any group or character class.
func hasTopLevelAlternation(pattern string) bool {
	depth := 0
	inClass := false
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			// a ']' right after '[' or '[^' is literal
			if i+1 < len(pattern) && pattern[i+1] == '^' {
				i++
			}
			if i+1 < len(pattern) && pattern[i+1] == ']' {
				i++
			}
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == '|':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}
