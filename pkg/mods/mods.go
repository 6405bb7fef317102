// Package mods collects the standard library modules.
package mods

import (
	"io"

	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/eval/errs"
	"github.com/plum-lang/plum/pkg/mods/basic"
	"github.com/plum-lang/plum/pkg/mods/bits"
	plumio "github.com/plum-lang/plum/pkg/mods/io"
	"github.com/plum-lang/plum/pkg/mods/functional"
	"github.com/plum-lang/plum/pkg/mods/vector"
)

// Names lists the names of the standard library modules, in the default
// installation order.
var Names = []string{"functional", "basic", "io", "vector", "bits"}

// Get returns the standard library module with the given name. The basic
// module prints to out.
func Get(name string, out io.Writer) (eval.Module, bool) {
	switch name {
	case "functional":
		return functional.Module, true
	case "basic":
		return basic.Module(out), true
	case "io":
		return plumio.Module, true
	case "vector":
		return vector.Module, true
	case "bits":
		return bits.Module, true
	}
	return eval.Module{}, false
}

// Select returns the named modules in the given order. A nil names selects
// all modules.
func Select(names []string, out io.Writer) ([]eval.Module, error) {
	if names == nil {
		names = Names
	}
	mods := make([]eval.Module, 0, len(names))
	for _, name := range names {
		mod, ok := Get(name, out)
		if !ok {
			return nil, errs.BadValue{What: "module", Valid: "one of functional, basic, io, vector, bits", Actual: name}
		}
		mods = append(mods, mod)
	}
	return mods, nil
}

// All returns all the standard library modules.
func All(out io.Writer) []eval.Module {
	mods, _ := Select(Names, out)
	return mods
}
