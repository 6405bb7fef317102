// Package prog provides the entry point to Plum. Its subpackages correspond
// to subprograms of Plum.
package prog

// This package sets up the basic environment and calls the appropriate
// "subprogram", one of the language server, the script runner or the REPL.

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/plum-lang/plum/pkg/logutil"
)

// Flags keeps command-line flags.
type Flags struct {
	Log string

	Help, Version, BuildInfo, JSON bool

	CodeInArg, AST, NoRc bool
	RC                   string

	DB string

	LSP bool
}

func newFlagSet(f *Flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("plum", pflag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	// Flags after the script name are arguments of the script.
	fs.SetInterspersed(false)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")

	fs.BoolVarP(&f.Help, "help", "h", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.BuildInfo, "buildinfo", false, "show build info and quit")
	fs.BoolVar(&f.JSON, "json", false, "show output in JSON; useful with --buildinfo")

	fs.BoolVarP(&f.CodeInArg, "code", "c", false, "take first argument as code to execute")
	fs.BoolVar(&f.AST, "ast", false, "print the syntax tree instead of evaluating")
	fs.BoolVar(&f.NoRc, "norc", false, "run plum without reading the config file")
	fs.StringVar(&f.RC, "rc", "", "path to the config file")

	fs.StringVar(&f.DB, "db", "", "path to the history database")

	fs.BoolVar(&f.LSP, "lsp", false, "run the language server")

	return fs
}

func usage(out io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(out, "Usage: plum [flags] [script]")
	fmt.Fprintln(out, "Supported flags:")
	fmt.Fprint(out, fs.FlagUsages())
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		fmt.Fprintln(fds[2], err)
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = p.Run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var badUsage badUsageError
	var exit exitError
	switch {
	case errors.As(err, &badUsage):
		usage(fds[2], fs)
	case errors.As(err, &exit):
		return exit.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}
