// Package opener reveals a directory in the platform's file manager.
package opener

import (
	"fmt"
	"os"

	"github.com/skratchdot/open-golang/open"
)

// start launches the file manager without waiting for it.
var start = defaultStart

func defaultStart(input string) error {
	return open.Start(input)
}

// Open opens dir in the file manager (open on macOS, xdg-open on Linux and BSDs, explorer on Windows).
//
// The launcher is detached from any context so it outlives the command that started it.
func Open(dir string) error {
	switch fi, err := os.Stat(dir); {
	case err != nil:
		return fmt.Errorf(`stat "%s" error: %w`, dir, err)
	case !fi.IsDir():
		return fmt.Errorf(`"%s" is not a directory`, dir)
	}

	if err := start(dir); err != nil {
		return fmt.Errorf(`open "%s" error: %w`, dir, err)
	}

	return nil
}
