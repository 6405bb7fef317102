// Package parse implements the tokenizer, the grammar engine and the grammar
// of the language.
//
// The grammar engine is a backtracking parser driven by an ordered list of
// prefix and postfix rules. Each attempt carries a set of flags, which rules
// require or forbid to disambiguate productions.
package parse

import (
	"github.com/plum-lang/plum/pkg/diag"
	"github.com/plum-lang/plum/pkg/logutil"
)

var logger = logutil.GetLogger("[parse] ")

// Source is a piece of source code.
type Source struct {
	Name string
	Code string
}

// Tree is the result of parsing a Source.
type Tree struct {
	Nodes  []Node
	Source Source
}

// Error is a syntax error.
type Error = diag.Error

const syntaxErrorType = "syntax error"

// Parse parses the source with the default tokenizer and grammar.
func Parse(src Source) (Tree, error) {
	return ParseWith(src, DefaultTokenizer, DefaultGrammar)
}

// ParseWith parses the source with the given tokenizer and grammar. Top-level
// nodes are read with the value flag until no more can be read.
//
// If some input is left, the returned error is an *Error identifying the
// unparsed remainder, and the returned Tree still holds the nodes parsed
// before it.
func ParseWith(src Source, t *Tokenizer, g *Grammar) (Tree, error) {
	ts := NewTokenStream(t, src.Code)
	nodes := g.ReadMany(ts, Flags{ValueFlag})
	tree := Tree{nodes, src}
	if ts.Remainder() == "" && ts.Err() == nil {
		return tree, nil
	}
	from := ts.Offset()
	var msg string
	if err := ts.Err(); err != nil && from == ts.pos {
		msg = err.Error()
	} else {
		msg = "failed to parse: " + ts.Remainder()
	}
	logger.Debugw("syntax error", "name", src.Name, "offset", from, "parsed", len(nodes))
	return tree, &Error{
		Type:    syntaxErrorType,
		Message: msg,
		Context: *diag.NewContext(src.Name, src.Code, diag.Ranging{From: from, To: len(src.Code)}),
	}
}
