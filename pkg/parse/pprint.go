package parse

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PPrint returns a compact S-expression representation of a node. Two nodes
// print the same if and only if they have the same structure.
func PPrint(n Node) string {
	var sb strings.Builder
	pprint(&sb, n)
	return sb.String()
}

// PPrintTree writes the representation of each top-level node of the tree on
// its own line.
func PPrintTree(w io.Writer, t Tree) {
	for _, n := range t.Nodes {
		fmt.Fprintln(w, PPrint(n))
	}
}

func pprint(sb *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Variable:
		sb.WriteString(n.Name)
	case *Property:
		sb.WriteString("." + n.Name)
	case *WhitebreakNode:
		sb.WriteString("whitebreak")
	case *PropertyAccess:
		sb.WriteString("(property_access ")
		pprint(sb, n.Target)
		sb.WriteString(" " + n.Name + ")")
	case *Assign:
		pprintForm(sb, "assign", n.Location, n.Value)
	case *Call:
		pprintForm(sb, "call", n.Target, n.Args)
	case *Binary:
		sb.WriteString("(binary ")
		for i, v := range n.Values {
			if i > 0 {
				sb.WriteString(" " + n.Operators[i-1] + " ")
			}
			pprint(sb, v)
		}
		sb.WriteString(")")
	case *Flow:
		if n.To == nil {
			pprintForm(sb, n.Kind.String(), n.From)
		} else {
			pprintForm(sb, n.Kind.String(), n.From, n.To)
		}
	case *Function:
		sb.WriteString("(function (")
		for i, p := range n.Params {
			if i > 0 {
				sb.WriteString(" ")
			}
			pprintPattern(sb, p)
		}
		sb.WriteString(") ")
		pprint(sb, n.Body)
		sb.WriteString(")")
	case *Index:
		pprintForm(sb, "index", n.Target, n.Index)
	case *Block:
		pprintForm(sb, "block", n.Body...)
	case *Group:
		pprintForm(sb, "group", n.Inner)
	case *IntLit:
		sb.WriteString(strconv.Itoa(n.Value))
	case *FloatLit:
		s := strconv.FormatFloat(n.Value, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}
		sb.WriteString(s)
	case *StringLit:
		sb.WriteString(strconv.Quote(n.Value))
	case *BoolLit:
		sb.WriteString(strconv.FormatBool(n.Value))
	case *List:
		pprintForm(sb, "list", n.Values...)
	case *Tuple:
		pprintForm(sb, "tuple", n.Values...)
	case *If:
		sb.WriteString("(if ")
		pprint(sb, n.If.Cond)
		sb.WriteString(" ")
		pprint(sb, n.If.Body)
		for _, c := range n.Elifs {
			sb.WriteString(" ")
			pprintForm(sb, "elif", c.Cond, c.Body)
		}
		if n.Else != nil {
			sb.WriteString(" ")
			pprintForm(sb, "else", n.Else)
		}
		sb.WriteString(")")
	case *For:
		sb.WriteString("(for " + n.Variable + " ")
		pprint(sb, n.Iterable)
		sb.WriteString(" ")
		pprint(sb, n.Body)
		sb.WriteString(")")
	case *Break:
		sb.WriteString("break")
	default:
		fmt.Fprintf(sb, "<%T>", n)
	}
}

func pprintForm(sb *strings.Builder, head string, children ...Node) {
	sb.WriteString("(" + head)
	for _, child := range children {
		sb.WriteString(" ")
		pprint(sb, child)
	}
	sb.WriteString(")")
}

func pprintPattern(sb *strings.Builder, p Pattern) {
	if !p.IsList() {
		sb.WriteString(p.Name)
		return
	}
	sb.WriteString("[")
	for i, elem := range p.Elems {
		if i > 0 {
			sb.WriteString(" ")
		}
		pprintPattern(sb, elem)
	}
	sb.WriteString("]")
}
