package util

import "path/filepath"

// StemAndExt is a variant of filepath.Ext that allows extended extension to be detected while also returning the stem.
//
// For example, `filepath.Ext("backup.7z.001")` would return ".001", but StemAndExt returns ".7z.001" for the extension
// and "backup" for the stem. This keeps generated names natural: "backup-1.7z" rather than "backup.7z-1".
//
// Each dot-separated part must be 5 characters or less, so longer extensions such as ".jfif-tbnl" are treated as part
// of the stem.
func StemAndExt(path string) (stem, ext string) {
	n := len(path) - 1
	for i, j := n, max(0, n-6); i >= j; i-- {
		switch path[i] {
		case '\\', '/':
			stem = path[i+1:]
			return
		case '.':
			ext = path[i:] + ext
			path = path[:i]
			n = len(path)
			i, j = n, max(0, n-6)
			continue
		}
	}

	stem = filepath.Base(path)
	return
}
