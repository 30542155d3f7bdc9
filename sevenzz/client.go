// Package sevenzz runs the 7-Zip command line binary (7zz) to create, list, and extract archives.
//
// Every method blocks until the 7zz process exits. A run fails with ErrPasswordRequired if 7zz asked for, or rejected,
// a password; any other non-zero exit status yields a *ProcessError carrying the captured output.
package sevenzz

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log"
	"os/exec"
	"strings"
)

// Client runs a specific 7zz binary.
//
// A Client holds no state between runs so it is safe for concurrent use, but concurrent extraction to the same
// directory is not.
type Client struct {
	// Path is the path to the 7zz binary.
	Path string
	// Logger logs the command lines being run with passwords redacted. Defaults to log.Default.
	Logger *log.Logger
}

// New returns a Client for the 7zz binary at path.
//
// Use Locate to find path.
func New(path string, optFns ...func(*Client)) *Client {
	c := &Client{Path: path, Logger: log.Default()}
	for _, fn := range optFns {
		fn(c)
	}

	return c
}

// RunOptions customises Client.Run.
type RunOptions struct {
	// Output if given will also receive everything 7zz writes to stdout and stderr as it is written.
	Output io.Writer
	// Dir is the working directory of the 7zz process.
	Dir string
}

// Run runs 7zz with the given arguments and returns its combined output.
//
// Stdin is not connected so 7zz can never block on a prompt; a password prompt fails the run with ErrPasswordRequired
// instead. If ctx is cancelled, the process is killed and ctx.Err is returned.
func (c *Client) Run(ctx context.Context, args []string, optFns ...func(*RunOptions)) ([]byte, error) {
	opts := &RunOptions{}
	for _, fn := range optFns {
		fn(opts)
	}

	var (
		buf bytes.Buffer
		w   io.Writer = &buf
	)
	if opts.Output != nil {
		w = io.MultiWriter(&buf, opts.Output)
	}

	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Dir = opts.Dir
	cmd.Stdout, cmd.Stderr = w, w

	if c.Logger != nil {
		c.Logger.Printf("running %s %s", c.Path, strings.Join(redact(args), " "))
	}

	err := cmd.Run()
	if ctxErr := ctx.Err(); err != nil && ctxErr != nil {
		return buf.Bytes(), ctxErr
	}

	return buf.Bytes(), classify(err, buf.Bytes())
}

// Version returns the banner line of the 7zz binary (e.g. "7-Zip (z) 24.08 (arm64) : Copyright (c) 1999-2024 ...").
//
// This doubles as a check that the binary can be run.
func (c *Client) Version(ctx context.Context) (string, error) {
	out, err := c.Run(ctx, nil)
	if err != nil {
		return "", err
	}

	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line, nil
		}
	}

	return "", sc.Err()
}

// redact hides the value of password switches.
func redact(args []string) []string {
	redacted := make([]string, len(args))
	for i, arg := range args {
		if len(arg) > 2 && strings.HasPrefix(arg, "-p") {
			arg = "-p***"
		}
		redacted[i] = arg
	}

	return redacted
}
