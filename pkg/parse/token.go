package parse

import (
	"fmt"

	"github.com/plum-lang/plum/pkg/diag"
)

// Kind is the kind of a token.
type Kind string

// Token kinds produced by the default lexicon.
const (
	Space      Kind = "space"
	Comment    Kind = "comment"
	Whitebreak Kind = "whitebreak"

	Word    Kind = "word"
	Int     Kind = "int"
	Float   Kind = "float"
	String  Kind = "string"
	Boolean Kind = "boolean"

	IfKey    Kind = "if"
	ElifKey  Kind = "elif"
	ElseKey  Kind = "else"
	ForKey   Kind = "for"
	InKey    Kind = "in"
	BreakKey Kind = "break"

	BracketOpen  Kind = "bracket_open"
	BracketClose Kind = "bracket_close"
	SquareOpen   Kind = "square_open"
	SquareClose  Kind = "square_close"
	CurlyOpen    Kind = "curly_open"
	CurlyClose   Kind = "curly_close"
	Comma        Kind = "comma"
	Period       Kind = "period"
	AssignOp     Kind = "assign"
	IndexOp      Kind = "index"
	Arrow        Kind = "arrow"

	PipeOp  Kind = "pipe"
	MapOp   Kind = "map"
	WriteOp Kind = "write"
	ReadOp  Kind = "read"
	PopOp   Kind = "pop"

	BinaryOperator Kind = "binary_operator"
)

// TokenFlag is a marker attached to all tokens produced by a rule.
type TokenFlag uint8

const (
	// Throwaway tokens are consumed by the token stream but never become part
	// of it.
	Throwaway TokenFlag = 1 << iota
)

// Token is a lexical token. Tokens are immutable once produced.
type Token struct {
	Kind  Kind
	Text  string
	Flags TokenFlag
	diag.Ranging
}

// Has reports whether the token carries the flag.
func (t Token) Has(f TokenFlag) bool { return t.Flags&f != 0 }

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}
