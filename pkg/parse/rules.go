package parse

import (
	"slices"
	"strconv"

	"github.com/plum-lang/plum/pkg/diag"
)

// DefaultGrammar is the grammar of the language.
var DefaultGrammar = newDefaultGrammar()

func newDefaultGrammar() *Grammar {
	b := &GrammarBuilder{}
	b.Prefix("variable", parseVariable).
		Prefix("property", parseProperty).
		Prefix("whitebreak", parseWhitebreak).
		Prefix("block", parseBlock).
		Prefix("int", parseInt).
		Prefix("float", parseFloat).
		Prefix("string", parseString).
		Prefix("boolean", parseBool).
		Prefix("list", parseList).
		Prefix("wrapped", parseWrapped).
		Prefix("if", parseIf).
		Prefix("for", parseFor).
		Prefix("break", parseBreak)
	b.Postfix("whitebreak", parseWhitebreakPost).
		Postfix("property_access", parsePropertyAccess).
		Postfix("assign", parseAssign).
		Postfix("call", parseCall).
		Postfix("binary_operator", parseBinary).
		Postfix("flow", parseFlow).
		Postfix("function", parseFunction).
		Postfix("index", parseIndex).
		Postfix("tuple", parseTuple)
	return b.Build()
}

func parseVariable(p *Parser) Node {
	p.Require(ValueFlag)
	name := p.Expect(Word).Text
	return &Variable{node{p.Span()}, name}
}

func parseProperty(p *Parser) Node {
	p.Require(ValueFlag)
	p.Expect(Period)
	name := p.Expect(Word).Text
	return &Property{node{p.Span()}, name}
}

// A line break may be skipped once at any position. The engine retries with
// the whitebreak flag after dropping the node, so forbidding the flag here
// stops the retry from matching again.
func parseWhitebreak(p *Parser) Node {
	p.Forbid(WhitebreakFlag)
	p.Expect(Whitebreak)
	return &WhitebreakNode{node{p.Span()}}
}

func parseWhitebreakPost(p *Parser, _ Node) Node {
	return parseWhitebreak(p)
}

func parsePropertyAccess(p *Parser, target Node) Node {
	p.Require(ValueFlag)
	p.Expect(Period)
	name := p.Expect(Word).Text
	return &PropertyAccess{node{p.SpanFrom(target)}, target, name}
}

func parseAssign(p *Parser, location Node) Node {
	switch location.(type) {
	case *Variable, *Property, *PropertyAccess:
	default:
		p.Fail()
	}
	p.Require(ValueFlag)
	p.Forbid(IgnoreAssign)
	p.Expect(AssignOp)
	value := p.Read(ValueFlag)
	return &Assign{node{p.SpanFrom(location)}, location, value}
}

func parseCall(p *Parser, target Node) Node {
	p.Require(ValueFlag)
	open := p.Expect(BracketOpen)
	args := p.MaybeRead(ValueFlag)
	if args == nil {
		args = &Tuple{node{diag.PointRanging(open.To)}, nil}
	}
	p.Expect(BracketClose)
	return &Call{node{p.SpanFrom(target)}, target, args}
}

func parseBinary(p *Parser, left Node) Node {
	p.Require(ValueFlag)
	p.Forbid(IgnoreBinaryOperator)
	op := p.Expect(BinaryOperator).Text
	right := p.Read(ValueFlag, IgnoreBinaryOperator, IgnoreFlow)
	if chain, ok := left.(*Binary); ok {
		return &Binary{node{p.SpanFrom(left)},
			append(slices.Clip(chain.Values), right),
			append(slices.Clip(chain.Operators), op)}
	}
	return &Binary{node{p.SpanFrom(left)}, []Node{left, right}, []string{op}}
}

var flowKinds = map[Kind]FlowKind{
	PipeOp: Pipe, MapOp: Map, WriteOp: Write, ReadOp: Read, PopOp: Pop,
}

func parseFlow(p *Parser, from Node) Node {
	p.Require(ValueFlag)
	p.Forbid(IgnoreFlow)
	kind := flowKinds[p.Expect(PipeOp, MapOp, WriteOp, ReadOp, PopOp).Kind]
	var to Node
	if kind != Pop {
		to = p.Read(ValueFlag, IgnoreFlow)
	}
	return &Flow{node{p.SpanFrom(from)}, kind, from, to}
}

func parseFunction(p *Parser, left Node) Node {
	p.Require(ValueFlag)
	// A parenthesized parameter list is unambiguous, even as a tuple element.
	if _, grouped := left.(*Group); !grouped {
		p.Forbid(IgnoreFunction)
	}
	var params []Node
	switch left := left.(type) {
	case *Group:
		tuple, ok := left.Inner.(*Tuple)
		p.Assert(ok)
		params = tuple.Values
	case *Tuple:
		params = left.Values
	case *Variable, *List:
		params = []Node{left}
	default:
		p.Fail()
	}
	p.Expect(Arrow)
	patterns := make([]Pattern, len(params))
	for i, param := range params {
		patterns[i] = toPattern(p, param)
	}
	var body Node
	if p.Has(IgnoreFlow) {
		body = p.Read(ValueFlag, IgnoreFlow)
	} else {
		body = p.Read(ValueFlag)
	}
	return &Function{node{p.SpanFrom(left)}, patterns, body}
}

func toPattern(p *Parser, n Node) Pattern {
	switch n := n.(type) {
	case *Variable:
		return Pattern{Name: n.Name}
	case *List:
		elems := make([]Pattern, len(n.Values))
		for i, v := range n.Values {
			elems[i] = toPattern(p, v)
		}
		return Pattern{Elems: elems}
	default:
		p.Fail()
		return Pattern{}
	}
}

func parseIndex(p *Parser, target Node) Node {
	p.Require(ValueFlag)
	p.Forbid(IgnoreIndex)
	p.Expect(IndexOp)
	index := p.Read(ValueFlag, IgnoreIndex, IgnoreFlow, IgnoreBinaryOperator, IgnoreAssign, IgnoreTuple)
	return &Index{node{p.SpanFrom(target)}, target, index}
}

func parseTuple(p *Parser, left Node) Node {
	p.Require(ValueFlag)
	p.Forbid(IgnoreTuple)
	p.Expect(Comma)
	var next Node
	if p.Has(AllowFunction) {
		next = p.MaybeRead(ValueFlag, IgnoreTuple)
	} else {
		next = p.MaybeRead(ValueFlag, IgnoreTuple, IgnoreFunction)
	}
	var values []Node
	if tuple, ok := left.(*Tuple); ok {
		values = slices.Clip(tuple.Values)
	} else {
		values = []Node{left}
	}
	if next != nil {
		values = append(values, next)
	}
	return &Tuple{node{p.SpanFrom(left)}, values}
}

func parseBlock(p *Parser) Node {
	p.Require(ValueFlag)
	p.Expect(CurlyOpen)
	body := p.ReadMany(ValueFlag)
	p.Expect(CurlyClose)
	return &Block{node{p.Span()}, body}
}

func parseInt(p *Parser) Node {
	p.Require(ValueFlag)
	i, err := strconv.Atoi(p.Expect(Int).Text)
	p.Assert(err == nil)
	return &IntLit{node{p.Span()}, i}
}

func parseFloat(p *Parser) Node {
	p.Require(ValueFlag)
	f, err := strconv.ParseFloat(p.Expect(Float).Text, 64)
	p.Assert(err == nil)
	return &FloatLit{node{p.Span()}, f}
}

func parseString(p *Parser) Node {
	p.Require(ValueFlag)
	text := p.Expect(String).Text
	return &StringLit{node{p.Span()}, text[1 : len(text)-1]}
}

func parseBool(p *Parser) Node {
	p.Require(ValueFlag)
	tok := p.Expect(Boolean)
	return &BoolLit{node{p.Span()}, tok.Text == "true"}
}

func parseList(p *Parser) Node {
	p.Require(ValueFlag)
	p.Expect(SquareOpen)
	var values []Node
	if !p.NextIs(SquareClose) {
		value := p.Read(ValueFlag)
		p.Expect(SquareClose)
		if tuple, ok := value.(*Tuple); ok {
			values = tuple.Values
		} else {
			values = []Node{value}
		}
	}
	return &List{node{p.Span()}, values}
}

func parseWrapped(p *Parser) Node {
	p.Require(ValueFlag)
	open := p.Expect(BracketOpen)
	if p.NextIs(BracketClose) {
		// The empty tuple, also the parameter list of a function without
		// parameters.
		return &Group{node{p.Span()}, &Tuple{node{diag.PointRanging(open.To)}, nil}}
	}
	value := p.Read(ValueFlag, AllowFunction)
	p.Expect(BracketClose)
	switch value.(type) {
	case *Binary, *Tuple:
		return &Group{node{p.Span()}, value}
	}
	return value
}

func parseIf(p *Parser) Node {
	p.Require(ValueFlag)
	p.Expect(IfKey)
	n := &If{If: parseClause(p)}
	for p.NextIs(ElifKey) {
		n.Elifs = append(n.Elifs, parseClause(p))
	}
	if p.NextIs(ElseKey) {
		n.Else = p.Read(ValueFlag)
	}
	n.Ranging = p.Span()
	return n
}

func parseClause(p *Parser) Clause {
	cond := p.Read(ValueFlag)
	body := p.Read(ValueFlag)
	return Clause{cond, body}
}

func parseFor(p *Parser) Node {
	p.Require(ValueFlag)
	p.Expect(ForKey)
	variable := p.Expect(Word).Text
	p.Expect(InKey)
	iterable := p.Read(ValueFlag)
	body := p.Read(ValueFlag)
	return &For{node{p.Span()}, variable, iterable, body}
}

func parseBreak(p *Parser) Node {
	p.Require(ValueFlag)
	p.Expect(BreakKey)
	return &Break{node{p.Span()}}
}
