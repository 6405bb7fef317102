package eval

import (
	"slices"

	"github.com/plum-lang/plum/pkg/diag"
	"github.com/plum-lang/plum/pkg/eval/errs"
	"github.com/plum-lang/plum/pkg/eval/vals"
	"github.com/plum-lang/plum/pkg/parse"
)

// Binary operators from the loosest to the tightest binding. A chain is split
// at every occurrence of the loosest operator it contains; the parts are
// resolved recursively and combined from left to right.
var operatorPriority = []string{">", "<", ">=", "<=", "==", "!=", "+", "-", "*", "/", "??"}

var arithmetic = map[string]func(x, y any) (any, error){
	"+": vals.Add,
	"-": vals.Sub,
	"*": vals.Mul,
	"/": vals.Div,
}

func (cp *compiler) binary(n *parse.Binary) Op {
	for _, op := range n.Operators {
		if !slices.Contains(operatorPriority, op) {
			cp.errorf(n, errs.BadOperator{Op: op})
		}
	}
	return cp.resolve(n, cp.compileAll(n.Values), n.Operators)
}

// resolve builds the op for values joined by operators. There is always one
// more value than operators.
func (cp *compiler) resolve(r diag.Ranger, values []Op, operators []string) Op {
	if len(operators) == 0 {
		return values[0]
	}
	var op string
	for _, candidate := range operatorPriority {
		if slices.Contains(operators, candidate) {
			op = candidate
			break
		}
	}
	var operands []Op
	start := 0
	for i, o := range operators {
		if o == op {
			operands = append(operands, cp.resolve(r, values[start:i+1], operators[start:i]))
			start = i + 1
		}
	}
	operands = append(operands, cp.resolve(r, values[start:], operators[start:]))
	return cp.combine(r, op, operands)
}

func (cp *compiler) combine(r diag.Ranger, op string, operands []Op) Op {
	switch op {
	case "??":
		return func(env *Env) (any, error) {
			for _, operand := range operands {
				v, err := operand(env)
				if err != nil || v != nil {
					return v, err
				}
			}
			return nil, nil
		}
	case "==", "!=":
		cp.checkComparison(r, op, operands)
		return func(env *Env) (any, error) {
			x, y, err := evalPair(env, operands)
			if err != nil {
				return nil, err
			}
			return vals.Equal(x, y) == (op == "=="), nil
		}
	case ">", "<", ">=", "<=":
		cp.checkComparison(r, op, operands)
		return func(env *Env) (any, error) {
			x, y, err := evalPair(env, operands)
			if err != nil {
				return nil, err
			}
			b, err := vals.Compare(op, x, y)
			if err != nil {
				return nil, cp.exc(r, err)
			}
			return b, nil
		}
	}
	f := arithmetic[op]
	return func(env *Env) (any, error) {
		acc, err := operands[0](env)
		if err != nil {
			return nil, err
		}
		for _, operand := range operands[1:] {
			v, err := operand(env)
			if err != nil {
				return nil, err
			}
			acc, err = f(acc, v)
			if err != nil {
				return nil, cp.exc(r, err)
			}
		}
		return acc, nil
	}
}

func (cp *compiler) checkComparison(r diag.Ranger, op string, operands []Op) {
	if len(operands) != 2 {
		cp.errorf(r, errs.ArityMismatch{What: "operands of " + op, ValidLow: 2, ValidHigh: 2, Actual: len(operands)})
	}
}

func evalPair(env *Env, operands []Op) (any, any, error) {
	x, err := operands[0](env)
	if err != nil {
		return nil, nil, err
	}
	y, err := operands[1](env)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
