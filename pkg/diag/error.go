package diag

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Error represents an error with context that can be showed.
type Error struct {
	Type    string
	Message string
	Context Context
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Type, e.Context.Describe(), e.Message)
}

// Range returns the range of the error.
func (e *Error) Range() Ranging {
	return e.Context.Range()
}

// Show shows the error.
func (e *Error) Show(indent string) string {
	header := fmt.Sprintf("%s: %s\n", title(e.Type), messageStyle.Sprint(e.Message))
	return header + indent + "  " + e.Context.Show(indent+"  ")
}

// Shower wraps the Show function.
type Shower interface {
	// Show takes an indentation string and shows.
	Show(indent string) string
}

// ShowError writes err to w. It uses the Show method if the error implements
// Shower, and prints the message in the error style otherwise.
func ShowError(w io.Writer, err error) {
	if shower, ok := err.(Shower); ok {
		fmt.Fprintln(w, shower.Show(""))
	} else {
		Complain(w, err.Error())
	}
}

// Complain writes msg to w in the error style, adding a trailing newline.
func Complain(w io.Writer, msg string) {
	fmt.Fprintln(w, messageStyle.Sprint(msg))
}

func title(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[n:])
}

// MessageStyle styles s as an error message.
func MessageStyle(s string) string {
	return messageStyle.Sprint(s)
}
