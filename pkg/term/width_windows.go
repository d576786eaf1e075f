package term

import (
	"os"

	"golang.org/x/sys/windows"
)

func width(file *os.File) int {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(file.Fd()), &info); err != nil {
		return 0
	}
	window := info.Window
	return int(window.Right - window.Left)
}
