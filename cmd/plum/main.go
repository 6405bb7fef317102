// Plum is a small expression language built around lazy streams. It can run
// scripts, evaluate code given with -c, serve as a language server, or run an
// interactive REPL.
package main

import (
	"os"

	"github.com/plum-lang/plum/pkg/buildinfo"
	"github.com/plum-lang/plum/pkg/lsp"
	"github.com/plum-lang/plum/pkg/prog"
	"github.com/plum-lang/plum/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &lsp.Program{}, &shell.Program{})))
}
