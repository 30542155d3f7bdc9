package sevenzz

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultLevel tells Client.Add to let 7zz pick the compression level.
const DefaultLevel = -1

// AddOptions customises Client.Add.
type AddOptions struct {
	// Level is the compression level from 0 (store) to 9 (ultra). Ignored for tar archives.
	Level int
	// Volume if given splits the archive into volumes of this size, e.g. "100m" or "4g".
	Volume string
	// Password encrypts the archive. Not supported for tar archives.
	Password string
	// EncryptHeaders also encrypts file names (-mhe=on). Only applies to 7z archives with a password.
	EncryptHeaders bool
	// Excludes are recursive wildcard patterns of files to leave out, e.g. ".DS_Store".
	Excludes []string
	// Overwrite answers yes to every 7zz prompt, replacing an existing archive's matching entries.
	Overwrite bool
	// Output if given receives 7zz output as it runs, with progress enabled (-bsp1).
	Output io.Writer
}

// Add adds the given files and directories to the named archive, creating it if needed.
//
// The archive format is inferred by 7zz from the archive's extension.
func (c *Client) Add(ctx context.Context, archive string, files []string, optFns ...func(*AddOptions)) error {
	opts := &AddOptions{Level: DefaultLevel, EncryptHeaders: true}
	for _, fn := range optFns {
		fn(opts)
	}

	args, err := addArgs(archive, files, opts)
	if err != nil {
		return err
	}

	_, err = c.Run(ctx, args, func(ro *RunOptions) {
		ro.Output = opts.Output
	})
	return err
}

func addArgs(archive string, files []string, opts *AddOptions) ([]string, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to add")
	}
	if opts.Level > 9 {
		return nil, fmt.Errorf("invalid compression level: %d", opts.Level)
	}

	ext := strings.ToLower(archive)
	isTar, is7z := strings.HasSuffix(ext, ".tar"), strings.HasSuffix(ext, ".7z")
	if isTar && opts.Password != "" {
		return nil, fmt.Errorf(`"%s" error: %w`, archive, ErrPasswordUnsupported)
	}

	args := []string{"a"}
	if opts.Level >= 0 && !isTar {
		args = append(args, "-mx"+strconv.Itoa(opts.Level))
	}
	if opts.Volume != "" {
		args = append(args, "-v"+opts.Volume)
	}
	if opts.Overwrite {
		args = append(args, "-y")
	}
	if opts.Password != "" {
		args = append(args, "-p"+opts.Password)
		if is7z && opts.EncryptHeaders {
			args = append(args, "-mhe=on")
		}
	}
	for _, p := range opts.Excludes {
		if p = strings.TrimSpace(p); p != "" {
			args = append(args, "-xr!"+p)
		}
	}
	if opts.Output != nil {
		args = append(args, "-bsp1")
	}

	args = append(args, "--", archive)
	return append(args, files...), nil
}
