package sevenzz

import (
	"context"

	"github.com/nguyengg/x7z/listing"
)

// ListOptions customises Client.List.
type ListOptions struct {
	// Password is needed to list archives whose headers are encrypted.
	Password string
}

// List returns the entries of the named archive, using `7zz l -slt` and listing.Parse.
func (c *Client) List(ctx context.Context, archive string, optFns ...func(*ListOptions)) ([]listing.FileRecord, error) {
	opts := &ListOptions{}
	for _, fn := range optFns {
		fn(opts)
	}

	out, err := c.Run(ctx, listArgs(archive, opts))
	if err != nil {
		return nil, err
	}

	return listing.Parse(string(out), archive), nil
}

func listArgs(archive string, opts *ListOptions) []string {
	args := []string{"l", "-slt"}
	if opts.Password != "" {
		args = append(args, "-p"+opts.Password)
	}

	return append(args, "--", archive)
}
