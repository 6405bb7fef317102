// Package progtest provides a framework for testing subprograms.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T, the Program to test, and any number of test cases.
//
// Test cases are constructed using the ThatPlum function, followed by method
// calls that add additional information to it.
//
// Example:
//
//	Test(t, someProgram,
//	    ThatPlum("-c", "1 + 2").WritesStdout("3\n"))
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/plum-lang/plum/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitStatus int
	stdout     output
	stderr     output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + o.content
	}
	return o.content
}

// ThatPlum returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "plum -c hello" writes "hello\n" to
// stdout reads:
//
//	ThatPlum("-c", "print(\"hello\")").WritesStdout("hello\n")
func ThatPlum(args ...string) Case {
	return Case{args: append([]string{"plum"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin
// of the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatPlum("-c", "").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c Case) ExitsWith(code int) Case {
	c.want.exitStatus = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(t, p, c.args, c.stdin)
			if r.exitStatus != c.want.exitStatus {
				t.Errorf("got exit status %v, want %v", r.exitStatus, c.want.exitStatus)
			}
			if !matchOutput(r.stdout.content, c.want.stdout) {
				t.Errorf("got stdout %q, want %s", r.stdout.content, c.want.stdout)
			}
			if !matchOutput(r.stderr.content, c.want.stderr) {
				t.Errorf("got stderr %q, want %s", r.stderr.content, c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given arguments and stdin. It returns the exit
// status and the output written to stdout and stderr.
func Run(t *testing.T, p prog.Program, args []string, stdin string) (exit int, stdout, stderr string) {
	t.Helper()
	r := run(t, p, args, stdin)
	return r.exitStatus, r.stdout.content, r.stderr.content
}

func run(t *testing.T, p prog.Program, args []string, stdin string) result {
	t.Helper()
	r0, w0 := mustPipe(t)
	r1, w1 := mustPipe(t)
	r2, w2 := mustPipe(t)

	go func() {
		w0.WriteString(stdin)
		w0.Close()
	}()
	stdoutCh := readAllAsync(r1)
	stderrCh := readAllAsync(r2)

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	r0.Close()
	return result{exit, output{content: <-stdoutCh}, output{content: <-stderrCh}}
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}

func mustPipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	return r, w
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(r)
		r.Close()
		ch <- string(b)
	}()
	return ch
}
