package io_test

import (
	"fmt"
	stdio "io"
	"os"
	"path/filepath"
	"testing"

	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/eval/errs"
	. "github.com/plum-lang/plum/pkg/eval/evaltest"
	"github.com/plum-lang/plum/pkg/mods/basic"
	"github.com/plum-lang/plum/pkg/mods/functional"
	"github.com/plum-lang/plum/pkg/mods/io"
)

func mods(out stdio.Writer) []eval.Module {
	return []eval.Module{functional.Module, basic.Module(out), io.Module}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.txt")
	if err := os.WriteFile(path, []byte("1\n2\r\n3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	open := fmt.Sprintf(`f = file("%s")`, path)

	TestWithModules(t, mods,
		That(open, "f.readlines()").Evals([]any{"1", "2", "3"}),
		That(open, "f.readlines() -> l => int(l) :: sum").Evals([]any{6}),
		That(open, "f.readlines() ~> l => print(l)", "0").Prints("1\n2\n3\n"),
		That(open, "f.path").Evals(path),
		That(open, `f.readlines() !`).Evals("1"),
		That(fmt.Sprintf(`file("%s")`, filepath.Join(dir, "missing"))).Throws(AnyError),
		That(fmt.Sprintf(`file("%s", "w")`, path)).Throws(errs.BadValue{What: "mode", Valid: `"r"`, Actual: `"w"`}),
		That("file(1)").Throws(errs.BadValue{What: "path", Valid: "string", Actual: "int"}),
	)
}

func TestFile_ClosesAtEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")
	if err := os.WriteFile(path, []byte("a\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	v, err := io.Module.Bindings["file"].(eval.Callable).Call([]any{path})
	if err != nil {
		t.Fatal(err)
	}
	s := v.(*io.File).Lines()
	for {
		if _, err := s.Next(); err != nil {
			break
		}
	}
	if !s.Closed() {
		t.Errorf("stream not closed after the end")
	}
}
