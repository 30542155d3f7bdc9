//go:build !windows

package main

import (
	"context"
	"errors"
	"os"

	"github.com/jessevdk/go-flags"
)

func exit(err error) {
	switch {
	case err == nil, flags.WroteHelp(err):
	case errors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		os.Exit(1)
	}
}
