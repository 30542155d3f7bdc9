package sevenzz

import (
	"os"
	"os/exec"
	"path/filepath"
)

// Binary names in order of preference. 7z is the legacy p7zip name, still installed by some package managers.
const (
	Name       = "7zz"
	LegacyName = "7z"
)

// DefaultCandidates are the well-known install locations checked by Locate.
var DefaultCandidates = []string{
	"/usr/local/bin/7zz",
	"/opt/homebrew/bin/7zz",
	"/usr/local/bin/7z",
	"/opt/homebrew/bin/7z",
}

// Locate returns the path to the 7zz binary.
//
// The given candidates (usually from configuration) are checked first, then a 7zz bundled next to the running
// executable, then DefaultCandidates, and finally PATH for 7zz and 7z in that order. Empty candidates are skipped.
func Locate(candidates ...string) (string, error) {
	bundled := ""
	if exe, err := os.Executable(); err == nil {
		bundled = filepath.Join(filepath.Dir(exe), Name)
	}

	return locate(candidates, bundled, DefaultCandidates, exec.LookPath)
}

func locate(candidates []string, bundled string, defaults []string, lookPath func(string) (string, error)) (string, error) {
	paths := make([]string, 0, len(candidates)+len(defaults)+1)
	paths = append(paths, candidates...)
	paths = append(paths, bundled)
	paths = append(paths, defaults...)

	for _, p := range paths {
		if p == "" {
			continue
		}

		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p, nil
		}
	}

	for _, name := range []string{Name, LegacyName} {
		if p, err := lookPath(name); err == nil {
			return p, nil
		}
	}

	return "", ErrNotFound
}
