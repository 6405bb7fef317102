package parse

import "github.com/plum-lang/plum/pkg/diag"

// Node is an AST node. The set of node types is closed; all of them are
// defined in this file. Nodes are immutable after construction.
type Node interface {
	diag.Ranger
	isNode()
}

type node struct{ diag.Ranging }

func (node) isNode() {}

// Variable is a bare name, like x.
type Variable struct {
	node
	Name string
}

// Property is a name on the implicit receiver of a flow, like .x.
type Property struct {
	node
	Name string
}

// WhitebreakNode is a line break. It is produced by the grammar but never
// returned by the grammar engine.
type WhitebreakNode struct{ node }

// PropertyAccess is a property of a value, like a.b.
type PropertyAccess struct {
	node
	Target Node
	Name   string
}

// Assign is an assignment, like x = 1. Location is a *Variable, *Property or
// *PropertyAccess.
type Assign struct {
	node
	Location Node
	Value    Node
}

// Call is a function call, like f(a, b). Args is a *Tuple for zero or more
// than one argument.
type Call struct {
	node
	Target Node
	Args   Node
}

// Binary is a chain of binary operators, like a + b * c. It has one more value
// than operators; precedence is resolved during compilation.
type Binary struct {
	node
	Values    []Node
	Operators []string
}

// FlowKind is the kind of a flow operator.
type FlowKind int

// Flow kinds.
const (
	Pipe FlowKind = iota
	Map
	Write
	Read
	Pop
)

var flowKindNames = [...]string{"pipe", "map", "write", "read", "pop"}

func (k FlowKind) String() string {
	if 0 <= k && int(k) < len(flowKindNames) {
		return flowKindNames[k]
	}
	return "bad-flow"
}

// Flow is a flow operator, like xs :: f. To is nil for Pop.
type Flow struct {
	node
	Kind FlowKind
	From Node
	To   Node
}

// Pattern is a function parameter: either a name, or a list of nested
// patterns that destructures the argument.
type Pattern struct {
	Name  string
	Elems []Pattern
}

// IsList reports whether the pattern destructures its argument.
func (p Pattern) IsList() bool { return p.Elems != nil }

// Function is a function literal, like (a, b) => a + b.
type Function struct {
	node
	Params []Pattern
	Body   Node
}

// Index is an index expression, like xs @ 0.
type Index struct {
	node
	Target Node
	Index  Node
}

// Block is a sequence of values in braces.
type Block struct {
	node
	Body []Node
}

// Group is a parenthesized binary chain or tuple. It stops the enclosing
// expression from extending the chain or tuple.
type Group struct {
	node
	Inner Node
}

// IntLit is an integer literal.
type IntLit struct {
	node
	Value int
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	node
	Value float64
}

// StringLit is a string literal, with the quotes removed.
type StringLit struct {
	node
	Value string
}

// BoolLit is true or false.
type BoolLit struct {
	node
	Value bool
}

// List is a list literal.
type List struct {
	node
	Values []Node
}

// Tuple is a comma-separated sequence of values.
type Tuple struct {
	node
	Values []Node
}

// Clause is a condition with a body.
type Clause struct {
	Cond Node
	Body Node
}

// If is a conditional. Else is nil when absent.
type If struct {
	node
	If    Clause
	Elifs []Clause
	Else  Node
}

// For is a loop over the values of Iterable.
type For struct {
	node
	Variable string
	Iterable Node
	Body     Node
}

// Break is the break keyword.
type Break struct{ node }
