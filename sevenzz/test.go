package sevenzz

import (
	"context"
	"io"

	"github.com/nguyengg/x7z/listing"
)

// TestOptions customises Client.Test.
type TestOptions struct {
	Password string
	// Output if given receives 7zz output as it runs, with progress enabled (-bsp1).
	Output io.Writer
}

// Test verifies the integrity of the named archive with `7zz t`.
//
// A damaged archive fails with a *ProcessError, usually with exit code 2.
func (c *Client) Test(ctx context.Context, archive string, optFns ...func(*TestOptions)) error {
	opts := &TestOptions{}
	for _, fn := range optFns {
		fn(opts)
	}

	_, err := c.Run(ctx, testArgs(archive, opts), func(ro *RunOptions) {
		ro.Output = opts.Output
	})
	return err
}

func testArgs(archive string, opts *TestOptions) []string {
	args := []string{"t"}
	if opts.Password != "" {
		args = append(args, "-p"+opts.Password)
	}
	if opts.Output != nil {
		args = append(args, "-bsp1")
	}

	return append(args, "--", archive)
}

// Info returns the technical properties of the named archive itself (type, method, solid, etc.).
//
// It runs the same `7zz l -slt` as List and parses the archive block with listing.ParseInfo.
func (c *Client) Info(ctx context.Context, archive string, optFns ...func(*ListOptions)) (listing.ArchiveInfo, error) {
	opts := &ListOptions{}
	for _, fn := range optFns {
		fn(opts)
	}

	out, err := c.Run(ctx, listArgs(archive, opts))
	if err != nil {
		return listing.ArchiveInfo{}, err
	}

	return listing.ParseInfo(string(out)), nil
}

// Formats returns the output of `7zz i`: the archive formats, codecs, and hashers the binary supports.
func (c *Client) Formats(ctx context.Context) (string, error) {
	out, err := c.Run(ctx, []string{"i"})
	return string(out), err
}
