package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/plum-lang/plum/pkg/diag"
	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/parse"
	"github.com/plum-lang/plum/pkg/stream"
)

// Configuration for the script mode.
type scriptCfg struct {
	Cmd bool
	AST bool
}

// Executes a script, or code given with -c. Arguments after the first one are
// ignored.
func script(ev *eval.Evaler, fds [3]*os.File, args []string, cfg *scriptCfg) int {
	arg0 := args[0]

	var name, code string
	if cfg.Cmd {
		name = "code from -c"
		code = arg0
	} else {
		var err error
		name, err = filepath.Abs(arg0)
		if err != nil {
			fmt.Fprintf(fds[2],
				"cannot get full path of script %q: %v\n", arg0, err)
			return 2
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
	}

	src := parse.Source{Name: name, Code: code}
	if cfg.AST {
		tree, err := parse.Parse(src)
		parse.PPrintTree(fds[1], tree)
		if err != nil {
			diag.ShowError(fds[2], err)
			return 2
		}
		return 0
	}

	v, err := ev.Eval(src)
	if s, ok := v.(*stream.Stream); ok {
		// A trailing flow only has effects when pulled.
		_, drainErr := stream.Collect(s)
		if err == nil {
			err = drainErr
		}
	}
	if err != nil {
		diag.ShowError(fds[2], err)
		return 2
	}
	return 0
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}
