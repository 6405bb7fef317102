// Package functional provides stream combinators and ranges.
//
// The combinators are step functions, used on the right side of a pipe:
//
//	[1, 2, 3] :: sum
//	[1, 2, 3] :: window(2)
//	range(5) :: reduce(1, (x, acc) => x * acc)
package functional

import (
	"github.com/spf13/cast"

	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/eval/errs"
	"github.com/plum-lang/plum/pkg/eval/vals"
	"github.com/plum-lang/plum/pkg/stream"
)

// Module is the functional module.
var Module = eval.Module{
	Name: "functional",
	Bindings: map[string]any{
		"reduce": eval.NewGoFn("reduce", reduce),
		"sum":    Reducer(0, vals.Add),
		"mult":   Reducer(1, vals.Mul),
		"window": eval.NewGoFn("window", window),
		"range":  eval.NewGoFn("range", rangeFn),
	},
}

func reduce(args ...any) (any, error) {
	if err := eval.CheckArity("arguments of reduce", args, 2, 2); err != nil {
		return nil, err
	}
	start, f := args[0], args[1]
	return Reducer(start, func(v, acc any) (any, error) {
		return eval.Call(f, []any{v, acc})
	}), nil
}

// Reducer returns a step function that folds all values of the source with
// f, starting from start. Its stream yields the result once, then ends.
func Reducer(start any, f func(v, acc any) (any, error)) stream.StepFunc {
	return func(src stream.Source, st stream.State) (any, error) {
		if st["done"] == true {
			return nil, stream.ErrEnd
		}
		acc := start
		err := stream.ForEach(src, func(v any) error {
			var err error
			acc, err = f(v, acc)
			return err
		})
		if err != nil {
			return nil, err
		}
		st["done"] = true
		return acc, nil
	}
}

func window(args ...any) (any, error) {
	if err := eval.CheckArity("arguments of window", args, 1, 1); err != nil {
		return nil, err
	}
	size, err := cast.ToIntE(args[0])
	if err != nil {
		return nil, errs.BadValue{What: "window size", Valid: "integer", Actual: vals.Repr(args[0])}
	}
	if size < 1 {
		return nil, errs.OutOfRange{What: "window size", ValidLow: "1", ValidHigh: "inf", Actual: vals.Repr(size)}
	}
	return stream.Window(size), nil
}

type rangeSource struct {
	next, stop, step int
}

func (r *rangeSource) Next() (any, error) {
	if (r.step > 0 && r.next >= r.stop) || (r.step < 0 && r.next <= r.stop) {
		return nil, stream.ErrEnd
	}
	v := r.next
	r.next += r.step
	return v, nil
}

// Takes (stop), (start, stop) or (start, stop, step) and returns a lazy
// stream of ints.
func rangeFn(args ...any) (any, error) {
	if err := eval.CheckArity("arguments of range", args, 1, 3); err != nil {
		return nil, err
	}
	ints := make([]int, len(args))
	for i, arg := range args {
		n, ok := arg.(int)
		if !ok {
			return nil, errs.BadValue{What: "argument of range", Valid: "int", Actual: vals.Kind(arg)}
		}
		ints[i] = n
	}
	r := &rangeSource{step: 1}
	switch len(ints) {
	case 1:
		r.stop = ints[0]
	case 2:
		r.next, r.stop = ints[0], ints[1]
	case 3:
		r.next, r.stop, r.step = ints[0], ints[1], ints[2]
	}
	if r.step == 0 {
		return nil, errs.BadValue{What: "step of range", Valid: "non-zero", Actual: "0"}
	}
	return stream.New(r, nil, nil), nil
}
