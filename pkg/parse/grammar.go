package parse

import (
	"errors"
	"slices"

	"github.com/plum-lang/plum/pkg/diag"
)

// Flag is an ambient marker threaded through a parse attempt. Rules require or
// forbid flags to disambiguate productions that would otherwise overlap.
type Flag string

// Flags understood by the default grammar.
const (
	ValueFlag            Flag = "value"
	WhitebreakFlag       Flag = "whitebreak"
	IgnoreBinaryOperator Flag = "ignore_binary_operator"
	IgnoreFlow           Flag = "ignore_flow"
	IgnoreFunction       Flag = "ignore_function"
	IgnoreTuple          Flag = "ignore_tuple"
	IgnoreIndex          Flag = "ignore_index"
	IgnoreAssign         Flag = "ignore_assign"
	AllowFunction        Flag = "allow_function"
)

// Flags is an ordered set of flags. A Flags value is never modified after it
// is created; With returns a new one.
type Flags []Flag

// Has reports whether all the given flags are in the set.
func (fs Flags) Has(flags ...Flag) bool {
	for _, f := range flags {
		if !slices.Contains(fs, f) {
			return false
		}
	}
	return true
}

// With returns a new set with the given flags appended. Flags already present
// are not repeated.
func (fs Flags) With(flags ...Flag) Flags {
	res := slices.Clone(fs)
	for _, f := range flags {
		if !slices.Contains(res, f) {
			res = append(res, f)
		}
	}
	return res
}

// ErrNoMatch signals that a rule does not apply at the current position. Rules
// signal it by panicking, usually through the helpers of Parser; the grammar
// engine recovers it and rewinds the cursor. It never escapes the engine.
var ErrNoMatch = errors.New("no match")

// PrefixRule starts a node at the cursor. Returning nil means no match.
type PrefixRule struct {
	Name  string
	Parse func(p *Parser) Node
}

// PostfixRule extends an already parsed node. Returning nil means no match.
type PostfixRule struct {
	Name  string
	Parse func(p *Parser, left Node) Node
}

// GrammarBuilder collects rules in registration order.
type GrammarBuilder struct {
	prefix  []PrefixRule
	postfix []PostfixRule
}

// Prefix registers a prefix rule.
func (b *GrammarBuilder) Prefix(name string, f func(*Parser) Node) *GrammarBuilder {
	b.prefix = append(b.prefix, PrefixRule{name, f})
	return b
}

// Postfix registers a postfix rule.
func (b *GrammarBuilder) Postfix(name string, f func(*Parser, Node) Node) *GrammarBuilder {
	b.postfix = append(b.postfix, PostfixRule{name, f})
	return b
}

// Build returns an immutable Grammar with the rules registered so far.
func (b *GrammarBuilder) Build() *Grammar {
	return &Grammar{slices.Clone(b.prefix), slices.Clone(b.postfix)}
}

// Grammar is an ordered list of prefix and postfix rules. Rules are tried in
// registration order and the first match wins.
type Grammar struct {
	prefix  []PrefixRule
	postfix []PostfixRule
}

// Read parses one node from the cursor of ts. It returns nil if no prefix
// rule matches.
//
// A node produced by a prefix rule is offered to the postfix rules
// repeatedly until none of them matches. Whitebreak nodes are never
// returned: when a rule produces one, it is dropped and the attempt is
// repeated with the whitebreak flag added.
func (g *Grammar) Read(ts *TokenStream, flags Flags) Node {
	n := g.readPrefix(ts, flags)
	if n == nil {
		return nil
	}
	for {
		ext := g.readPostfix(ts, flags, n)
		if ext == nil {
			return n
		}
		n = ext
	}
}

// ReadMany calls Read until it returns nil.
func (g *Grammar) ReadMany(ts *TokenStream, flags Flags) []Node {
	var nodes []Node
	for {
		n := g.Read(ts, flags)
		if n == nil {
			return nodes
		}
		nodes = append(nodes, n)
	}
}

func (g *Grammar) readPrefix(ts *TokenStream, flags Flags) Node {
	n := g.tryPrefix(ts, flags)
	for isWhitebreak(n) {
		flags = flags.With(WhitebreakFlag)
		n = g.tryPrefix(ts, flags)
	}
	return n
}

func (g *Grammar) readPostfix(ts *TokenStream, flags Flags, left Node) Node {
	n := g.tryPostfix(ts, flags, left)
	for isWhitebreak(n) {
		flags = flags.With(WhitebreakFlag)
		n = g.tryPostfix(ts, flags, left)
	}
	return n
}

func (g *Grammar) tryPrefix(ts *TokenStream, flags Flags) Node {
	for _, rule := range g.prefix {
		start := ts.Index()
		p := &Parser{g, ts, flags, start}
		if n := attempt(func() Node { return rule.Parse(p) }); n != nil {
			return n
		}
		ts.Seek(start)
	}
	return nil
}

func (g *Grammar) tryPostfix(ts *TokenStream, flags Flags, left Node) Node {
	for _, rule := range g.postfix {
		start := ts.Index()
		p := &Parser{g, ts, flags, start}
		if n := attempt(func() Node { return rule.Parse(p, left) }); n != nil {
			return n
		}
		ts.Seek(start)
	}
	return nil
}

// Runs a rule, turning an ErrNoMatch panic into a nil node. Other panics are
// propagated.
func attempt(f func() Node) (n Node) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err, ok := r.(error); ok && errors.Is(err, ErrNoMatch) {
			n = nil
			return
		}
		panic(r)
	}()
	return f()
}

func isWhitebreak(n Node) bool {
	_, ok := n.(*WhitebreakNode)
	return ok
}

// Parser is the view of the grammar engine given to a rule during one
// attempt. Methods that assert something panic with ErrNoMatch when the
// assertion does not hold.
type Parser struct {
	g     *Grammar
	ts    *TokenStream
	flags Flags
	start int
}

// Flags returns the flags of the current attempt.
func (p *Parser) Flags() Flags { return p.flags }

// Has reports whether all the flags are active.
func (p *Parser) Has(flags ...Flag) bool { return p.flags.Has(flags...) }

// Lacks reports whether none of the flags are active.
func (p *Parser) Lacks(flags ...Flag) bool {
	for _, f := range flags {
		if p.flags.Has(f) {
			return false
		}
	}
	return true
}

// Require fails the attempt unless all the flags are active.
func (p *Parser) Require(flags ...Flag) { p.Assert(p.Has(flags...)) }

// Forbid fails the attempt if any of the flags is active.
func (p *Parser) Forbid(flags ...Flag) { p.Assert(p.Lacks(flags...)) }

// Assert fails the attempt unless cond holds.
func (p *Parser) Assert(cond bool) {
	if !cond {
		p.Fail()
	}
}

// Fail fails the attempt.
func (p *Parser) Fail() { panic(ErrNoMatch) }

// NextIs consumes the next token and returns true if it has one of the given
// kinds. Otherwise the cursor is left unchanged.
func (p *Parser) NextIs(kinds ...Kind) bool {
	tok, ok := p.ts.Next()
	if !ok {
		return false
	}
	if slices.Contains(kinds, tok.Kind) {
		return true
	}
	p.ts.StepBack()
	return false
}

// Expect consumes the next token and returns it if it has one of the given
// kinds. Otherwise it fails the attempt.
func (p *Parser) Expect(kinds ...Kind) Token {
	p.Assert(p.NextIs(kinds...))
	return p.Last()
}

// Last returns the last consumed token.
func (p *Parser) Last() Token {
	tok, ok := p.ts.Last()
	p.Assert(ok)
	return tok
}

// Read parses a node with the given flags. The flags of the current attempt
// are not inherited. It fails the attempt if no node can be parsed.
func (p *Parser) Read(flags ...Flag) Node {
	n := p.MaybeRead(flags...)
	p.Assert(n != nil)
	return n
}

// MaybeRead is like Read, but returns nil instead of failing.
func (p *Parser) MaybeRead(flags ...Flag) Node {
	return p.g.Read(p.ts, Flags(flags))
}

// ReadMany parses nodes with the given flags until no more can be parsed.
func (p *Parser) ReadMany(flags ...Flag) []Node {
	return p.g.ReadMany(p.ts, Flags(flags))
}

// Span returns the range from the first token of the attempt to the last
// consumed token.
func (p *Parser) Span() diag.Ranging {
	from := p.ts.Offset()
	if p.start < len(p.ts.tokens) {
		from = p.ts.tokens[p.start].From
	}
	return diag.Ranging{From: from, To: p.end()}
}

// SpanFrom returns the range from the start of r to the last consumed token.
func (p *Parser) SpanFrom(r diag.Ranger) diag.Ranging {
	return diag.Ranging{From: r.Range().From, To: p.end()}
}

// Returns the end of the last consumed token, ignoring trailing line breaks
// skipped during the attempt.
func (p *Parser) end() int {
	i := p.ts.Index() - 1
	for i > p.start && p.ts.tokens[i].Kind == Whitebreak {
		i--
	}
	if i < 0 {
		return 0
	}
	return p.ts.tokens[i].To
}
