package parse

import (
	"regexp"
	"strings"
)

// Matcher returns the length of the longest prefix of src that it accepts, or
// 0 if it doesn't accept any non-empty prefix.
type Matcher func(src string) int

// Rule is a tokenizer rule: a matcher and the kind and flags of the tokens it
// produces.
type Rule struct {
	Kind  Kind
	Match Matcher
	Flags TokenFlag
}

// Regex returns a Rule matching the given regular expression at the start of
// the input.
func Regex(kind Kind, expr string, flags ...TokenFlag) Rule {
	re := regexp.MustCompile(`^(?:` + expr + `)`)
	return Rule{kind, func(src string) int {
		if loc := re.FindStringIndex(src); loc != nil {
			return loc[1]
		}
		return 0
	}, combine(flags)}
}

// Literal returns a Rule matching the exact text w.
func Literal(kind Kind, w string, flags ...TokenFlag) Rule {
	return Rule{kind, func(src string) int {
		if strings.HasPrefix(src, w) {
			return len(w)
		}
		return 0
	}, combine(flags)}
}

// Literals returns a Rule matching the longest of the given texts.
func Literals(kind Kind, ws []string, flags ...TokenFlag) Rule {
	return Rule{kind, func(src string) int {
		best := 0
		for _, w := range ws {
			if len(w) > best && strings.HasPrefix(src, w) {
				best = len(w)
			}
		}
		return best
	}, combine(flags)}
}

func combine(flags []TokenFlag) TokenFlag {
	var f TokenFlag
	for _, flag := range flags {
		f |= flag
	}
	return f
}

// Tokenizer picks, at each position, the rule with the longest match. Ties are
// broken by registration order.
type Tokenizer struct {
	rules []Rule
}

// NewTokenizer creates a Tokenizer from an ordered list of rules.
func NewTokenizer(rules ...Rule) *Tokenizer {
	return &Tokenizer{append([]Rule(nil), rules...)}
}

// Read reads one token from the start of src. The returned token has its text
// set but not its range. It returns false if no rule accepts a non-empty
// prefix.
func (t *Tokenizer) Read(src string) (Token, bool) {
	bestLen, best := 0, -1
	for i, rule := range t.rules {
		if n := rule.Match(src); n > bestLen {
			bestLen, best = n, i
		}
	}
	if best == -1 {
		return Token{}, false
	}
	rule := t.rules[best]
	return Token{Kind: rule.Kind, Text: src[:bestLen], Flags: rule.Flags}, true
}
