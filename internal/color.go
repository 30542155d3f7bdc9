package internal

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

// DisableColor turns off colored output for the rest of the process.
//
// Colors are already off when stdout is not a terminal or NO_COLOR is set.
func DisableColor() {
	color.NoColor = true
}

// Status formats a one-line status message such as "[ OK ] extracted 3 files" for the user to see.
type Status func(format string, a ...any) string

var (
	OK   = status(green, "OK")
	Warn = status(yellow, "WARN")
	Fail = status(red, "FAIL")
)

// Highlight colors a and is used for record numbers in listings.
func Highlight(a ...any) string {
	return cyan(a...)
}

func status(c func(a ...any) string, label string) Status {
	return func(format string, a ...any) string {
		return c("["+label+"]") + " " + fmt.Sprintf(format, a...)
	}
}
