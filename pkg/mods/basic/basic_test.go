package basic_test

import (
	"io"
	"testing"

	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/eval/errs"
	. "github.com/plum-lang/plum/pkg/eval/evaltest"
	"github.com/plum-lang/plum/pkg/mods/basic"
)

func mods(out io.Writer) []eval.Module { return []eval.Module{basic.Module(out)} }

func TestPrint(t *testing.T) {
	TestWithModules(t, mods,
		That(`print("hello")`).Prints("hello\n"),
		That(`print(1, 2.5, "x")`).Prints("1 2.5 x\n"),
		That(`print([1, "a"])`).Prints("[1, \"a\"]\n"),
		That(`print()`).Prints("\n"),
		That(`print(1)`).Evals(nil),
	)
}

func TestConversions(t *testing.T) {
	TestWithModules(t, mods,
		That(`int("12")`).Evals(12),
		That(`int(3.7)`).Evals(3),
		That(`int(true)`).Evals(1),
		That(`int("x")`).Throws(errs.BadValue{
			What: "argument of int", Valid: "number or numeric string", Actual: `"x"`}),
		That(`int(1, 2)`).Throws(errs.ArityMismatch{
			What: "arguments of int", ValidLow: 1, ValidHigh: 1, Actual: 2}),
		That(`float("1.5")`).Evals(1.5),
		That(`float(2)`).Evals(2.0),
		That(`float([])`).Throws(AnyError),
		That(`str(12)`).Evals("12"),
		That(`str(1.0)`).Evals("1.0"),
		That(`str(true)`).Evals("true"),
		That(`str([1, 2])`).Evals("[1, 2]"),
		That(`str("s")`).Evals("s"),
	)
}
