package listing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/mholt/archives"
)

// ErrUnsupported is returned by FromArchive if the file is not an archive that can be read natively.
var ErrUnsupported = errors.New("unsupported archive format")

// Identify returns the name of the format of the named archive (e.g. ".7z", ".zip", ".tar.gz").
func Identify(ctx context.Context, name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", fmt.Errorf(`open file "%s" error: %w`, name, err)
	}
	defer f.Close()

	format, _, err := archives.Identify(ctx, name, f)
	if err != nil {
		if errors.Is(err, archives.NoMatch) {
			return "", ErrUnsupported
		}

		return "", fmt.Errorf(`identify "%s" error: %w`, name, err)
	}

	return format.Extension(), nil
}

// FromArchive lists the named archive without the external 7zz binary.
//
// This is the fallback when 7zz cannot be found. Records are produced in archive order with the same conventions as
// Parse: `/` separators, no trailing slash on directories, and size 0 for directories. Encrypted archives are not
// supported.
func FromArchive(ctx context.Context, name string) ([]FileRecord, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf(`open file "%s" error: %w`, name, err)
	}
	defer f.Close()

	format, input, err := archives.Identify(ctx, name, f)
	if err != nil {
		if errors.Is(err, archives.NoMatch) {
			return nil, ErrUnsupported
		}

		return nil, fmt.Errorf(`identify "%s" error: %w`, name, err)
	}

	ex, ok := format.(archives.Extractor)
	if !ok {
		return nil, fmt.Errorf(`"%s" (%s) error: %w`, name, format.Extension(), ErrUnsupported)
	}

	records := make([]FileRecord, 0)
	if err = ex.Extract(ctx, input, func(ctx context.Context, fi archives.FileInfo) error {
		p := strings.TrimSuffix(path.Clean(strings.ReplaceAll(fi.NameInArchive, `\`, "/")), "/")
		if p == "" || p == "." {
			return nil
		}

		rec := FileRecord{Path: p, IsDir: fi.IsDir()}
		if !rec.IsDir {
			rec.Size = fi.Size()
		}
		if t := fi.ModTime(); !t.IsZero() {
			rec.Modified = &t
		}

		records = append(records, rec)
		return nil
	}); err != nil {
		return nil, fmt.Errorf(`list "%s" error: %w`, name, err)
	}

	return records, nil
}
