package vals

import (
	"cmp"
	"slices"

	"github.com/plum-lang/plum/pkg/eval/errs"
)

// Numbers are int or float64. An operation on two ints yields an int, except
// for division, which always yields a float64; an operation involving a
// float64 yields a float64.

// Arither is implemented by values that support arithmetic operators as the
// left operand.
type Arither interface {
	Arith(op string, rhs any) (any, error)
}

// IsNum returns whether the value is a number.
func IsNum(v any) bool {
	switch v.(type) {
	case int, float64:
		return true
	}
	return false
}

// ToFloat converts a number to float64.
func ToFloat(v any) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func floats(x, y any) (float64, float64, bool) {
	a, okA := ToFloat(x)
	b, okB := ToFloat(y)
	return a, b, okA && okB
}

func equalNum(x, y any) (eq bool, ok bool) {
	if a, ok := x.(int); ok {
		if b, ok := y.(int); ok {
			return a == b, true
		}
	}
	a, b, ok := floats(x, y)
	return a == b, ok
}

// Add implements the + operator. Besides numbers, it concatenates strings,
// lists and tuples.
func Add(x, y any) (any, error) {
	switch x := x.(type) {
	case string:
		if y, ok := y.(string); ok {
			return x + y, nil
		}
	case []any:
		if y, ok := y.([]any); ok {
			return append(slices.Clip(x), y...), nil
		}
	case Tuple:
		if y, ok := y.(Tuple); ok {
			return append(slices.Clip(x), y...), nil
		}
	}
	return arith("+", x, y)
}

// Sub implements the - operator.
func Sub(x, y any) (any, error) { return arith("-", x, y) }

// Mul implements the * operator.
func Mul(x, y any) (any, error) { return arith("*", x, y) }

// Div implements the / operator. Dividing two ints yields a float64.
func Div(x, y any) (any, error) { return arith("/", x, y) }

func arith(op string, x, y any) (any, error) {
	if a, ok := x.(Arither); ok {
		return a.Arith(op, y)
	}
	if a, ok := x.(int); ok {
		if b, ok := y.(int); ok {
			switch op {
			case "+":
				return a + b, nil
			case "-":
				return a - b, nil
			case "*":
				return a * b, nil
			}
		}
	}
	a, b, ok := floats(x, y)
	if !ok {
		return nil, errs.BadOperand{Op: op, Left: Kind(x), Right: Kind(y)}
	}
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return nil, errs.BadValue{What: "divisor", Valid: "non-zero", Actual: Repr(y)}
		}
		return a / b, nil
	}
	return nil, errs.BadOperator{Op: op}
}

// Compare implements the ordering operators >, <, >= and <= on numbers and
// on strings.
func Compare(op string, x, y any) (bool, error) {
	var c int
	if xs, ok := x.(string); ok {
		ys, ok := y.(string)
		if !ok {
			return false, errs.BadOperand{Op: op, Left: Kind(x), Right: Kind(y)}
		}
		c = cmp.Compare(xs, ys)
	} else if xi, ok := x.(int); ok && isInt(y) {
		c = cmp.Compare(xi, y.(int))
	} else if a, b, ok := floats(x, y); ok {
		c = cmp.Compare(a, b)
	} else {
		return false, errs.BadOperand{Op: op, Left: Kind(x), Right: Kind(y)}
	}
	switch op {
	case ">":
		return c > 0, nil
	case "<":
		return c < 0, nil
	case ">=":
		return c >= 0, nil
	case "<=":
		return c <= 0, nil
	}
	return false, errs.BadOperator{Op: op}
}

func isInt(v any) bool {
	_, ok := v.(int)
	return ok
}

// Booler wraps the Bool method.
type Booler interface {
	Bool() bool
}

// Bool converts a value to bool. nil, false, zero numbers, and empty
// strings, lists, tuples and maps are false; other values are true unless
// they implement Booler.
func Bool(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case int:
		return v != 0
	case float64:
		return v != 0
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case Tuple:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	case Booler:
		return v.Bool()
	}
	return true
}
