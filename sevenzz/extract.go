package sevenzz

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Overwrite controls what 7zz does when an extracted file already exists.
type Overwrite int

const (
	// OverwriteAll replaces existing files (-aoa). It is the default because `-y` answers yes to every prompt anyway.
	OverwriteAll Overwrite = iota
	// SkipExisting keeps existing files (-aos), effectively resuming an interrupted extraction.
	SkipExisting
	// RenameExtracted keeps existing files and renames the extracted ones (-aou).
	RenameExtracted
)

func (o Overwrite) switchArg() string {
	switch o {
	case SkipExisting:
		return "-aos"
	case RenameExtracted:
		return "-aou"
	default:
		return "-aoa"
	}
}

// ParseOverwrite parses "overwrite", "skip", or "rename".
func ParseOverwrite(s string) (Overwrite, error) {
	switch s {
	case "overwrite", "":
		return OverwriteAll, nil
	case "skip":
		return SkipExisting, nil
	case "rename":
		return RenameExtracted, nil
	default:
		return 0, fmt.Errorf("unknown overwrite mode: %s", s)
	}
}

// DefaultListFileThreshold is the number of files beyond which ExtractOptions.Files is passed as a list file.
const DefaultListFileThreshold = 64

// ExtractOptions customises Client.Extract.
type ExtractOptions struct {
	Password  string
	Overwrite Overwrite
	// Files restricts extraction to these archive paths. A directory path extracts its whole content. Empty means
	// everything.
	Files []string
	// ListFileThreshold is the number of files beyond which they are written to a temporary list file instead of
	// being passed on the command line. Defaults to DefaultListFileThreshold.
	ListFileThreshold int
	// Output if given receives 7zz output as it runs, with progress enabled (-bsp1).
	Output io.Writer
}

// Extract extracts the named archive into dir, creating dir if necessary.
func (c *Client) Extract(ctx context.Context, archive, dir string, optFns ...func(*ExtractOptions)) error {
	opts := &ExtractOptions{ListFileThreshold: DefaultListFileThreshold}
	for _, fn := range optFns {
		fn(opts)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf(`create output directory "%s" error: %w`, dir, err)
	}

	listFile := ""
	if len(opts.Files) > opts.ListFileThreshold {
		f, err := os.CreateTemp("", "x7z-*.txt")
		if err != nil {
			return fmt.Errorf("create list file error: %w", err)
		}
		defer os.Remove(f.Name())

		_, err = io.WriteString(f, strings.Join(opts.Files, "\n")+"\n")
		if err2 := f.Close(); err == nil {
			err = err2
		}
		if err != nil {
			return fmt.Errorf(`write list file "%s" error: %w`, f.Name(), err)
		}

		listFile = f.Name()
	}

	_, err := c.Run(ctx, extractArgs(archive, dir, listFile, opts), func(ro *RunOptions) {
		ro.Output = opts.Output
	})
	return err
}

func extractArgs(archive, dir, listFile string, opts *ExtractOptions) []string {
	args := []string{"x", "-o" + dir, "-y", opts.Overwrite.switchArg()}
	if opts.Password != "" {
		args = append(args, "-p"+opts.Password)
	}
	if opts.Output != nil {
		args = append(args, "-bsp1")
	}
	if listFile != "" {
		args = append(args, "-scsUTF-8", "-i@"+listFile)
	}

	args = append(args, "--", archive)
	if listFile == "" {
		args = append(args, opts.Files...)
	}

	return args
}
