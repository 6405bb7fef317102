// Package sys provides terminal utilities.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file is a terminal.
func IsATTY(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WinSize queries the size of the terminal referenced by the given file. It
// returns -1, -1 if the file is not a terminal.
func WinSize(file *os.File) (row, col int) { return winSize(file) }
