package sevenzz

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrPasswordRequired is returned when 7zz fails because the archive needs a password, or the given one is wrong.
var ErrPasswordRequired = errors.New("password required")

// ErrNotFound is returned by Locate if no 7zz binary can be found.
var ErrNotFound = errors.New("7zz not found")

// ErrPasswordUnsupported is returned by Client.Add when asked to encrypt a format that cannot be encrypted.
var ErrPasswordUnsupported = errors.New("archive format does not support passwords")

// passwordMarkers are matched against the output of a failed run.
var passwordMarkers = [][]byte{
	[]byte("Enter password"),
	[]byte("Wrong password"),
	[]byte("Can not open encrypted archive"),
}

// ProcessError is returned when 7zz exits with a non-zero status for any reason other than a password.
type ProcessError struct {
	ExitCode int
	// Output is everything 7zz wrote to stdout and stderr.
	Output string
}

func (e *ProcessError) Error() string {
	if line := lastLine(e.Output); line != "" {
		return fmt.Sprintf("7zz exited with code %d (%s): %s", e.ExitCode, describe(e.ExitCode), line)
	}

	return fmt.Sprintf("7zz exited with code %d (%s)", e.ExitCode, describe(e.ExitCode))
}

// describe returns the meaning of 7zz exit codes.
func describe(code int) string {
	switch code {
	case 1:
		return "warning"
	case 2:
		return "fatal error"
	case 7:
		return "command line error"
	case 8:
		return "not enough memory"
	case 255:
		return "stopped by user"
	default:
		return "unknown error"
	}
}

// lastLine returns the first line of output that looks like an error message, else the last non-empty line.
func lastLine(output string) (line string) {
	for _, l := range strings.Split(output, "\n") {
		l = strings.TrimSpace(l)
		switch {
		case l == "":
		case strings.HasPrefix(l, "ERROR") || strings.HasPrefix(l, "Error"):
			return l
		default:
			line = l
		}
	}

	return
}

// classify turns the result of exec.Cmd.Run into one of ErrPasswordRequired, *ProcessError, or the start error.
//
// The password markers are only checked on failure since a successful listing may well contain them in file names.
func classify(err error, output []byte) error {
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("run 7zz error: %w", err)
	}

	for _, m := range passwordMarkers {
		if bytes.Contains(output, m) {
			return ErrPasswordRequired
		}
	}

	return &ProcessError{ExitCode: exitErr.ExitCode(), Output: string(output)}
}
