// Package bits provides conversion of bit sequences to numbers.
package bits

import (
	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/eval/errs"
	"github.com/plum-lang/plum/pkg/eval/vals"
)

// Module is the bits module.
var Module = eval.Module{
	Name: "bits",
	Bindings: map[string]any{
		"read_bits": eval.NewGoFn("read_bits", readBits),
	},
}

// Reads a list of bits, most significant first, as an unsigned integer.
func readBits(args ...any) (any, error) {
	if err := eval.CheckArity("arguments of read_bits", args, 1, 1); err != nil {
		return nil, err
	}
	elems, ok := vals.Elems(args[0])
	if !ok {
		return nil, errs.BadValue{What: "argument of read_bits", Valid: "list or tuple", Actual: vals.Kind(args[0])}
	}
	value := 0
	for _, bit := range elems {
		b, ok := bit.(int)
		if !ok {
			return nil, errs.BadValue{What: "bit", Valid: "int", Actual: vals.Kind(bit)}
		}
		value = value<<1 + b
	}
	return value, nil
}
