// Package basic provides printing and conversion functions.
package basic

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"

	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/eval/errs"
	"github.com/plum-lang/plum/pkg/eval/vals"
)

// Module returns the basic module. The print function writes to out.
func Module(out io.Writer) eval.Module {
	return eval.Module{
		Name: "basic",
		Bindings: map[string]any{
			"print": eval.NewGoFn("print", func(args ...any) (any, error) {
				return nil, printArgs(out, args)
			}),
			"int":   eval.NewGoFn("int", toInt),
			"float": eval.NewGoFn("float", toFloat),
			"str":   eval.NewGoFn("str", toStr),
		},
	}
}

// Writes the string forms of the arguments separated by spaces, followed by a
// newline.
func printArgs(out io.Writer, args []any) error {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = vals.ToString(arg)
	}
	_, err := fmt.Fprintln(out, strings.Join(parts, " "))
	return err
}

func toInt(args ...any) (any, error) {
	if err := eval.CheckArity("arguments of int", args, 1, 1); err != nil {
		return nil, err
	}
	i, err := cast.ToIntE(args[0])
	if err != nil {
		return nil, errs.BadValue{What: "argument of int", Valid: "number or numeric string", Actual: vals.Repr(args[0])}
	}
	return i, nil
}

func toFloat(args ...any) (any, error) {
	if err := eval.CheckArity("arguments of float", args, 1, 1); err != nil {
		return nil, err
	}
	f, err := cast.ToFloat64E(args[0])
	if err != nil {
		return nil, errs.BadValue{What: "argument of float", Valid: "number or numeric string", Actual: vals.Repr(args[0])}
	}
	return f, nil
}

func toStr(args ...any) (any, error) {
	if err := eval.CheckArity("arguments of str", args, 1, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case int, bool, string:
		return cast.ToStringE(v)
	}
	return vals.ToString(args[0]), nil
}
