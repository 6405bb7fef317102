package eval

import (
	"errors"
	"strings"

	"github.com/plum-lang/plum/pkg/eval/errs"
	"github.com/plum-lang/plum/pkg/eval/vals"
	"github.com/plum-lang/plum/pkg/parse"
	"github.com/plum-lang/plum/pkg/stream"
)

// Callable is a value that can be called.
type Callable interface {
	Call(args []any) (any, error)
}

// GoFn is a Callable implemented in Go.
type GoFn struct {
	name string
	impl func(args ...any) (any, error)
}

var _ Callable = &GoFn{}

// NewGoFn wraps a Go function.
func NewGoFn(name string, impl func(args ...any) (any, error)) *GoFn {
	return &GoFn{name, impl}
}

// Call calls the Go function.
func (f *GoFn) Call(args []any) (any, error) { return f.impl(args...) }

// Kind returns "fn".
func (f *GoFn) Kind() string { return "fn" }

// Repr returns an opaque representation of the function.
func (f *GoFn) Repr() string { return "<builtin " + f.name + ">" }

// CheckArity returns an errs.ArityMismatch if the number of arguments is not
// within [lo, hi]. A negative hi means no upper bound.
func CheckArity(what string, args []any, lo, hi int) error {
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		return errs.ArityMismatch{What: what, ValidLow: lo, ValidHigh: hi, Actual: len(args)}
	}
	return nil
}

// Closure is a function defined in Plum code.
type Closure struct {
	Params []parse.Pattern
	body   Op
	env    *Env
}

var _ Callable = &Closure{}

// Call binds the arguments to the parameters in a new scope branched from the
// defining scope, and evaluates the body in it. Surplus arguments are
// ignored; parameters without an argument are left unbound.
func (c *Closure) Call(args []any) (any, error) {
	env := c.env.Branch(false)
	if err := bindParams(env, c.Params, args); err != nil {
		return nil, err
	}
	return c.body(env)
}

// Kind returns "fn".
func (c *Closure) Kind() string { return "fn" }

// Repr shows the parameter list.
func (c *Closure) Repr() string {
	return "<fn (" + paramsRepr(c.Params) + ")>"
}

func paramsRepr(params []parse.Pattern) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if p.IsList() {
			parts[i] = "[" + paramsRepr(p.Elems) + "]"
		} else {
			parts[i] = p.Name
		}
	}
	return strings.Join(parts, ", ")
}

func bindParams(env *Env, params []parse.Pattern, args []any) error {
	for i, p := range params {
		if i >= len(args) {
			break
		}
		if !p.IsList() {
			env.Set(p.Name, args[i])
			continue
		}
		elems, ok := vals.Elems(args[i])
		if !ok {
			return errs.BadValue{
				What: "argument for [" + paramsRepr(p.Elems) + "]", Valid: "list or tuple", Actual: vals.Kind(args[i])}
		}
		if err := bindParams(env, p.Elems, elems); err != nil {
			return err
		}
	}
	return nil
}

// Call calls a value with the given arguments. Besides Callable values, a
// stream.StepFunc can be called with a source and a state.
func Call(f any, args []any) (any, error) {
	switch f := f.(type) {
	case Callable:
		return f.Call(args)
	case stream.StepFunc:
		if err := CheckArity("arguments of step function", args, 2, 2); err != nil {
			return nil, err
		}
		src, ok := args[0].(stream.Source)
		if !ok {
			return nil, errs.BadValue{What: "source", Valid: "stream", Actual: vals.Kind(args[0])}
		}
		st, ok := args[1].(stream.State)
		if !ok {
			return nil, errs.BadValue{What: "state", Valid: "map", Actual: vals.Kind(args[1])}
		}
		return f(src, st)
	}
	return nil, errs.NotCallable{Kind: vals.Kind(f)}
}

// CallSpread calls f with arg. A tuple is spread into separate arguments.
func CallSpread(f any, arg any) (any, error) {
	if t, ok := arg.(vals.Tuple); ok {
		return Call(f, t)
	}
	return Call(f, []any{arg})
}

// stepOf converts the value of the right side of a pipe to a step function.
func stepOf(v any) (stream.StepFunc, error) {
	switch v := v.(type) {
	case stream.StepFunc:
		return v, nil
	case func(stream.Source, stream.State) (any, error):
		return v, nil
	case Callable:
		return func(src stream.Source, st stream.State) (any, error) {
			return endOnBreak(v.Call([]any{src, st}))
		}, nil
	}
	return nil, errs.BadValue{What: "pipe step", Valid: "function", Actual: vals.Kind(v)}
}

// endOnBreak turns a break out of a step into the end of the stream.
func endOnBreak(v any, err error) (any, error) {
	if errors.Is(err, errBreak) {
		return nil, stream.ErrEnd
	}
	return v, err
}
