// Package vector provides numeric vectors with element-wise arithmetic.
package vector

import (
	"math"
	"strings"

	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/eval/errs"
	"github.com/plum-lang/plum/pkg/eval/vals"
)

// Module is the vector module.
var Module = eval.Module{
	Name: "vector",
	Bindings: map[string]any{
		"vec": eval.NewGoFn("vec", vec),
	},
}

// Vector is an immutable sequence of numbers.
type Vector struct {
	values []any
}

var (
	_ vals.Arither        = &Vector{}
	_ vals.PropertyGetter = &Vector{}
	_ vals.Equaler        = &Vector{}
)

// New creates a Vector. All values must be numbers.
func New(values []any) (*Vector, error) {
	for _, v := range values {
		if !vals.IsNum(v) {
			return nil, errs.BadValue{What: "vector element", Valid: "number", Actual: vals.Kind(v)}
		}
	}
	return &Vector{append([]any(nil), values...)}, nil
}

func vec(args ...any) (any, error) {
	if err := eval.CheckArity("arguments of vec", args, 1, 1); err != nil {
		return nil, err
	}
	elems, ok := vals.Elems(args[0])
	if !ok {
		return nil, errs.BadValue{What: "argument of vec", Valid: "list or tuple", Actual: vals.Kind(args[0])}
	}
	return New(elems)
}

// Dimension returns the number of components.
func (v *Vector) Dimension() int { return len(v.values) }

// Kind returns "vector".
func (*Vector) Kind() string { return "vector" }

func (v *Vector) String() string {
	parts := make([]string, len(v.values))
	for i, x := range v.values {
		parts[i] = vals.Repr(x)
	}
	return "Vector(" + strings.Join(parts, ", ") + ")"
}

// Equal compares the components of two vectors.
func (v *Vector) Equal(other any) bool {
	w, ok := other.(*Vector)
	return ok && vals.Equal(v.values, w.values)
}

var axes = map[string]int{"x": 0, "y": 1, "z": 2, "w": 3}

// Property returns dimension, the components x, y, z and w, and the methods
// length, square_length and unit.
func (v *Vector) Property(name string) (any, bool) {
	if i, ok := axes[name]; ok {
		if i >= len(v.values) {
			return nil, false
		}
		return v.values[i], true
	}
	switch name {
	case "dimension":
		return len(v.values), true
	case "length":
		return method("length", func() (any, error) { return v.Length() }), true
	case "square_length":
		return method("square_length", v.SquareLength), true
	case "unit":
		return method("unit", v.Unit), true
	}
	return nil, false
}

func method(name string, f func() (any, error)) *eval.GoFn {
	return eval.NewGoFn(name, func(args ...any) (any, error) {
		if err := eval.CheckArity("arguments of "+name, args, 0, 0); err != nil {
			return nil, err
		}
		return f()
	})
}

// SquareLength returns the sum of the squares of the components.
func (v *Vector) SquareLength() (any, error) {
	var sum any = 0
	for _, x := range v.values {
		sq, err := vals.Mul(x, x)
		if err != nil {
			return nil, err
		}
		if sum, err = vals.Add(sum, sq); err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// Length returns the Euclidean length.
func (v *Vector) Length() (float64, error) {
	sq, err := v.SquareLength()
	if err != nil {
		return 0, err
	}
	f, _ := vals.ToFloat(sq)
	return math.Sqrt(f), nil
}

// Unit returns the vector scaled to length 1.
func (v *Vector) Unit() (any, error) {
	l, err := v.Length()
	if err != nil {
		return nil, err
	}
	return v.Arith("/", l)
}

var opVerbs = map[string]string{"+": "add", "-": "subtract", "*": "multiply", "/": "divide"}

// Arith applies an operator element-wise. The right operand is either a
// vector of the same dimension or a number applied to every component.
func (v *Vector) Arith(op string, rhs any) (any, error) {
	f := arithFuncs[op]
	if f == nil {
		return nil, errs.BadOperator{Op: op}
	}
	result := make([]any, len(v.values))
	if w, ok := rhs.(*Vector); ok {
		if len(w.values) != len(v.values) {
			return nil, errs.DimensionMismatch{Op: opVerbs[op], Left: len(v.values), Right: len(w.values)}
		}
		for i := range v.values {
			r, err := f(v.values[i], w.values[i])
			if err != nil {
				return nil, err
			}
			result[i] = r
		}
		return &Vector{result}, nil
	}
	if !vals.IsNum(rhs) {
		return nil, errs.BadOperand{Op: op, Left: "vector", Right: vals.Kind(rhs)}
	}
	for i, x := range v.values {
		r, err := f(x, rhs)
		if err != nil {
			return nil, err
		}
		result[i] = r
	}
	return &Vector{result}, nil
}

var arithFuncs = map[string]func(x, y any) (any, error){
	"+": vals.Add,
	"-": vals.Sub,
	"*": vals.Mul,
	"/": vals.Div,
}
