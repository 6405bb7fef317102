package eval

import (
	"errors"
	"fmt"

	"github.com/plum-lang/plum/pkg/diag"
)

// Exception is a failure of compilation or evaluation, with the source range
// of the node that failed.
type Exception struct {
	Reason  error
	Context *diag.Context
}

// Error returns the message of the reason.
func (exc *Exception) Error() string {
	if exc.Context == nil {
		return exc.Reason.Error()
	}
	return fmt.Sprintf("%s: %s", exc.Context.Describe(), exc.Reason.Error())
}

// Unwrap returns the reason.
func (exc *Exception) Unwrap() error { return exc.Reason }

// Show shows the exception, with the failing code when known.
func (exc *Exception) Show(indent string) string {
	header := "Exception: " + diag.MessageStyle(exc.Reason.Error())
	if exc.Context == nil {
		return header
	}
	return header + "\n" + indent + "  " + exc.Context.Show(indent+"  ")
}

// Reason returns the reason of err if it is an *Exception, and err itself
// otherwise.
func Reason(err error) error {
	var exc *Exception
	if errors.As(err, &exc) {
		return exc.Reason
	}
	return err
}
