package internal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNoTerminal is returned by ReadPassword if stdin is not a terminal.
var ErrNoTerminal = errors.New("stdin is not a terminal")

// CanPrompt returns true if stdin is a terminal the user can type a password into.
func CanPrompt() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ReadPassword prints prompt to stderr and reads a password from stdin without echoing it.
func ReadPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoTerminal
	}

	_, _ = fmt.Fprint(os.Stderr, prompt)
	data, err := term.ReadPassword(fd)
	_, _ = fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password error: %w", err)
	}
	if len(data) == 0 {
		return "", errors.New("empty password")
	}

	return string(data), nil
}
