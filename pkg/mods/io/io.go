// Package io provides access to files.
package io

import (
	"os"

	"github.com/pkg/errors"

	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/eval/errs"
	"github.com/plum-lang/plum/pkg/eval/vals"
	"github.com/plum-lang/plum/pkg/logutil"
	"github.com/plum-lang/plum/pkg/stream"
)

var logger = logutil.GetLogger("[mods/io] ")

// Module is the io module.
var Module = eval.Module{
	Name: "io",
	Bindings: map[string]any{
		"file": eval.NewGoFn("file", openFile),
	},
}

// File is an open file. Its readlines property is a function returning a
// stream of its lines, which closes the file when it ends.
type File struct {
	path string
	f    *os.File
}

func openFile(args ...any) (any, error) {
	if err := eval.CheckArity("arguments of file", args, 1, 2); err != nil {
		return nil, err
	}
	path, ok := args[0].(string)
	if !ok {
		return nil, errs.BadValue{What: "path", Valid: "string", Actual: vals.Kind(args[0])}
	}
	if len(args) == 2 && args[1] != "r" {
		return nil, errs.BadValue{What: "mode", Valid: `"r"`, Actual: vals.Repr(args[1])}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	logger.Debugf("opened %s", path)
	return &File{path, f}, nil
}

// Kind returns "file".
func (*File) Kind() string { return "file" }

// Repr shows the path of the file.
func (f *File) Repr() string { return "<file " + vals.Repr(f.path) + ">" }

// Property returns the properties of the file: path and readlines.
func (f *File) Property(name string) (any, bool) {
	switch name {
	case "path":
		return f.path, true
	case "readlines":
		return eval.NewGoFn("readlines", func(args ...any) (any, error) {
			if err := eval.CheckArity("arguments of readlines", args, 0, 0); err != nil {
				return nil, err
			}
			return f.Lines(), nil
		}), true
	}
	return nil, false
}

// Lines returns a stream of the lines of the file, without line terminators.
// The file is closed when the stream ends.
func (f *File) Lines() *stream.Stream {
	return stream.FromReader(f.f, func() {
		logger.Debugf("closing %s", f.path)
		f.f.Close()
	})
}
