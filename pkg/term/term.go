// Package term provides the small amount of terminal awareness gramsh
// needs: whether output is going to a real terminal (to decide on ANSI
// highlighting) and how wide that terminal is. No help listing or
// diagnostic in this module wraps or pads to that width.
package term

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether fd refers to a terminal, honoring both native
// terminals and the Cygwin/MSYS pty emulation on Windows.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Width returns the width, in columns, of the terminal referenced by file.
// When file is not a terminal, or the ioctl fails, or the terminal reports
// a zero width (as some serial consoles do), it falls back to 80 columns,
// mirroring recli_fprintf_words's own "cols <= 0 => 80" fallback.
func Width(file *os.File) int {
	cols := width(file)
	if cols <= 0 {
		cols = 80
	}
	return cols
}
