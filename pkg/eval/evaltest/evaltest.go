// Package evaltest provides a framework for testing Plum code.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T and any number of test cases.
//
// Test cases are constructed using the That function, followed by method calls
// that add additional information to it.
//
// Example:
//
//	Test(t,
//	    That("1 + 2").Evals(3),
//	    That("x").Throws(errs.UnboundVariable{Name: "x"}))
//
// To make builtin modules available, use the TestWithModules function instead.
package evaltest

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/plum-lang/plum/pkg/eval"
	"github.com/plum-lang/plum/pkg/eval/vals"
	"github.com/plum-lang/plum/pkg/parse"
	"github.com/plum-lang/plum/pkg/stream"
)

// Case is a test case that can be used in Test.
type Case struct {
	codes  []string
	verify func(t *testing.T, ev *eval.Evaler)
	want   result
}

type result struct {
	value    any
	hasValue bool
	output   *string
	err      error
}

// That returns a new Case with the specified source code. Multiple arguments
// are joined with newlines. To specify multiple pieces of code that are
// evaluated separately, use the Then method to append code pieces.
func That(lines ...string) Case {
	return Case{codes: []string{strings.Join(lines, "\n")}}
}

// Then returns a new Case that evaluates the given code in addition, with the
// same Evaler. Only the outcome of the last piece of code is checked; earlier
// pieces must not fail.
func (c Case) Then(lines ...string) Case {
	c.codes = append(c.codes, strings.Join(lines, "\n"))
	return c
}

// Evals returns an altered Case that requires the code to evaluate to the
// given value. Values are compared by kind and equality; a stream is drained
// to a list before the comparison.
func (c Case) Evals(v any) Case {
	c.want.value, c.want.hasValue = v, true
	return c
}

// Prints returns an altered Case that requires the code to write exactly s to
// the output given to modules.
func (c Case) Prints(s string) Case {
	c.want.output = &s
	return c
}

// Throws returns an altered Case that requires the code to fail with an error
// that matches reason according to errors.Is. The special matchers AnyError
// and ErrorWithMessage are also supported.
func (c Case) Throws(reason error) Case {
	c.want.err = reason
	return c
}

// Passes returns an altered Case that runs an additional verification
// function after the code is evaluated.
func (c Case) Passes(f func(t *testing.T, ev *eval.Evaler)) Case {
	c.verify = f
	return c
}

// AnyError matches any error.
var AnyError error = anyError{}

type anyError struct{}

func (anyError) Error() string { return "any error" }

// ErrorWithMessage returns an error that matches any error whose reason has
// the given message.
func ErrorWithMessage(msg string) error { return errorWithMessage{msg} }

type errorWithMessage struct{ msg string }

func (e errorWithMessage) Error() string { return "error with message " + e.msg }

// Test runs test cases with Evalers that have no modules.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	TestWithModules(t, func(io.Writer) []eval.Module { return nil }, tests...)
}

// TestWithModules runs test cases. For each test case, a new Evaler is created
// with the modules returned by mods, which is passed the output buffer of the
// case.
func TestWithModules(t *testing.T, mods func(out io.Writer) []eval.Module, tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(strings.Join(tc.codes, "\n"), func(t *testing.T) {
			t.Helper()
			var out bytes.Buffer
			ev := eval.NewEvaler(mods(&out)...)
			defer ev.Close()

			var v any
			var err error
			for i, code := range tc.codes {
				v, err = ev.Eval(parse.Source{Name: "[test]", Code: code})
				if err != nil && i < len(tc.codes)-1 {
					t.Fatalf("setup code %q failed: %v", code, err)
				}
			}
			if s, ok := v.(*stream.Stream); ok && err == nil {
				v, err = stream.Collect(s)
			}

			if !matchErr(tc.want.err, err) {
				t.Errorf("got error %v, want %v", err, tc.want.err)
			}
			if tc.want.hasValue && !matchValue(tc.want.value, v) {
				t.Errorf("got value %s, want %s", vals.Repr(v), vals.Repr(tc.want.value))
			}
			if tc.want.output != nil {
				if diff := cmp.Diff(*tc.want.output, out.String()); diff != "" {
					t.Errorf("output (-want +got):\n%s", diff)
				}
			}
			if tc.verify != nil {
				tc.verify(t, ev)
			}
		})
	}
}

func matchErr(want, got error) bool {
	switch want := want.(type) {
	case nil:
		return got == nil
	case anyError:
		return got != nil
	case errorWithMessage:
		return got != nil && eval.Reason(got).Error() == want.msg
	}
	return errors.Is(got, want)
}

func matchValue(want, got any) bool {
	if w, ok := want.([]any); ok && len(w) == 0 {
		g, ok := got.([]any)
		return ok && len(g) == 0
	}
	return vals.Repr(want) == vals.Repr(got) && vals.Equal(want, got)
}
