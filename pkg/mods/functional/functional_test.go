package functional_test

import (
	"io"
	"testing"

	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/eval/errs"
	. "github.com/plum-lang/plum/pkg/eval/evaltest"
	"github.com/plum-lang/plum/pkg/mods/basic"
	"github.com/plum-lang/plum/pkg/mods/functional"
)

func mods(out io.Writer) []eval.Module {
	return []eval.Module{functional.Module, basic.Module(out)}
}

func TestReduce(t *testing.T) {
	TestWithModules(t, mods,
		That("[1, 2, 3, 4] :: sum").Evals([]any{10}),
		That("[1, 2, 3, 4] :: mult").Evals([]any{24}),
		That("[] :: sum").Evals([]any{0}),
		That("[1, 2, 3] :: reduce(0, (x, t) => x + t)").Evals([]any{6}),
		That(`["a", "b"] :: reduce("", (x, t) => t + x)`).Evals([]any{"ab"}),
		That("s = [1, 2] :: sum", "s !", "s !").Throws(AnyError),
		That("[1, 2] :: reduce(0)").Throws(errs.ArityMismatch{
			What: "arguments of reduce", ValidLow: 2, ValidHigh: 2, Actual: 1}),
		That("[1, 2] :: reduce(0, 1)").Throws(errs.NotCallable{Kind: "int"}),
	)
}

func TestWindow(t *testing.T) {
	TestWithModules(t, mods,
		That("[1, 2, 3, 4] :: window(2)").Evals([]any{[]any{1, 2}, []any{2, 3}, []any{3, 4}}),
		That("[1, 2, 3] :: window(3)").Evals([]any{[]any{1, 2, 3}}),
		That("[1] :: window(2)").Evals([]any{}),
		That("[1, 2, 3] :: window(2) -> [x, y] => print(x, y)", "0").Prints(""),
		That("s = [1, 2, 3] :: window(2) -> [x, y] => print(x, y)", "for v in s { v }").
			Prints("1 2\n2 3\n"),
		That("window(0)").Throws(errs.OutOfRange{What: "window size", ValidLow: "1", ValidHigh: "inf", Actual: "0"}),
		That(`window("x")`).Throws(AnyError),
	)
}

func TestRange(t *testing.T) {
	TestWithModules(t, mods,
		That("range(3)").Evals([]any{0, 1, 2}),
		That("range(2, 5)").Evals([]any{2, 3, 4}),
		That("range(5, 0, 0 - 2)").Evals([]any{5, 3, 1}),
		That("range(0)").Evals([]any{}),
		That("range(3) -> x => x * x").Evals([]any{0, 1, 4}),
		That("range(5) :: sum").Evals([]any{10}),
		That("for i in range(3) { print(i) }").Prints("0\n1\n2\n"),
		That("range(1, 2, 0)").Throws(errs.BadValue{What: "step of range", Valid: "non-zero", Actual: "0"}),
		That("range(1.5)").Throws(AnyError),
	)
}
