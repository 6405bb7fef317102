package mods_test

import (
	"io"
	"testing"

	"github.com/plum-lang/plum/pkg/eval/errs"
	. "github.com/plum-lang/plum/pkg/eval/evaltest"
	"github.com/plum-lang/plum/pkg/mods"
)

func TestSelect(t *testing.T) {
	all, err := mods.Select(nil, io.Discard)
	if err != nil || len(all) != len(mods.Names) {
		t.Fatalf("Select(nil) = %d modules, %v", len(all), err)
	}
	for i, mod := range all {
		if mod.Name != mods.Names[i] {
			t.Errorf("module %d is %s, want %s", i, mod.Name, mods.Names[i])
		}
	}
	if _, err := mods.Select([]string{"basic", "nope"}, io.Discard); err != (errs.BadValue{
		What: "module", Valid: "one of functional, basic, io, vector, bits", Actual: "nope"}) {
		t.Errorf("Select with unknown module -> %v", err)
	}
}

// The example from the language overview: sliding windows over a list,
// destructured and printed.
func TestWindowExample(t *testing.T) {
	TestWithModules(t, mods.All,
		That("[1, 2, 3, 4] :: window(2) -> [x, y] => print(x, y) >> out").
			Prints("1 2\n2 3\n3 4\n"),
		That("[1, 2, 3] :: window(2) -> [x, y] => x + y >> out", "out").
			Evals([]any{3, 5}),
	)
}
