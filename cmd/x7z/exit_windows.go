//go:build windows

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

func exit(err error) {
	// keeps the console open when x7z is started by double-clicking, e.g. from a shortcut that extracts its argument.
	if term.IsTerminal(int(os.Stdin.Fd())) && os.Getenv("PROMPT") == "" {
		_, _ = fmt.Fprintf(os.Stderr, "Press any key to close console\n")
		r := bufio.NewReader(os.Stdin)
		_, _, _ = r.ReadRune()
	}

	switch {
	case err == nil, flags.WroteHelp(err):
	case errors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		os.Exit(1)
	}
}
