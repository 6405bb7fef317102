// Package storedefs contains definitions of the history store API.
//
// It is a separate package so that the REPL can depend on the API without
// depending on the bbolt-backed implementation.
package storedefs

import "errors"

// ErrNoSuchLine is returned when looking up a sequence number that has no
// line.
var ErrNoSuchLine = errors.New("no such line in history")

// History is the persistent line history of the REPL. Lines are numbered from
// 1 in the order they are added; numbers are never reused.
type History interface {
	AddLine(text string) (int, error)
	Line(seq int) (string, error)
	// Lines returns the entries with from <= Seq < upto. A negative upto
	// means no upper bound.
	Lines(from, upto int) ([]Entry, error)
	// Trim deletes the oldest entries so that at most keep remain, and
	// returns the number of entries deleted.
	Trim(keep int) (int, error)
}

// Entry is a line in the history.
type Entry struct {
	Text string
	Seq  int
}
