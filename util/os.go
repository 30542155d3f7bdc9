package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FindUnusedName returns a path to a file that does not exist yet.
//
// The first argument is the parent directory of the file. The second argument is the stem of the file, the third the
// extension. For example, the stem of "hello-world.tar.gz" is "hello-world", its ext ".tar.gz". If
// "hello-world.tar.gz" exists, "hello-world-1.tar.gz" is tried next, then "hello-world-2.tar.gz", and so on. See
// StemAndExt to split a name this way.
//
// Unlike os.CreateTemp, the file is not created so there is a race between this call and whoever creates the file
// (7zz in our case). That is acceptable for an interactive tool.
func FindUnusedName(parent, stem, ext string) (string, error) {
	name := filepath.Join(parent, stem+ext)
	for i := 0; ; {
		switch _, err := os.Lstat(name); {
		case errors.Is(err, fs.ErrNotExist):
			return name, nil
		case err != nil:
			return "", fmt.Errorf(`stat "%s" error: %w`, name, err)
		default:
			i++
			name = filepath.Join(parent, fmt.Sprintf("%s-%d%s", stem, i, ext))
		}
	}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !(len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)) {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
