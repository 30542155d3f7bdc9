// Package naming suggests names for new archives.
package naming

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyengg/x7z/util"
)

// Ext is the default archive extension.
const Ext = ".7z"

// knownExts are the archive extensions EnsureExt accepts as-is.
var knownExts = []string{".7z", ".zip", ".tar", ".gz"}

// category is checked in order against the base names of the sources; the first match names the archive.
type category struct {
	name       string
	substrings []string
	exts       []string
}

var categories = []category{
	{name: "Photos", substrings: []string{"photo", "img"}, exts: []string{".jpg", ".png", ".gif", ".heic"}},
	{name: "Documents", substrings: []string{"doc"}, exts: []string{".pdf", ".txt", ".docx", ".pages"}},
	{name: "Videos", substrings: []string{"video", "movie"}, exts: []string{".mp4", ".mov", ".avi"}},
	{name: "Audio", substrings: []string{"music", "audio"}, exts: []string{".mp3", ".m4a", ".wav"}},
	{name: "Project", substrings: []string{"project", "src", "code"}},
}

func (c category) matches(name string) bool {
	name = strings.ToLower(name)
	for _, s := range c.substrings {
		if strings.Contains(name, s) {
			return true
		}
	}
	for _, ext := range c.exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

// Suggest returns the file name (not path) for an archive of the given sources.
//
// A single directory gives "<name>.7z" and a single file "<stem>_archive.7z". Many sources are named after the first
// category any of them matches (e.g. "Photos"), else their common parent directory, else "Mixed_Files", with the date
// appended: "Photos_2024-05-01.7z".
func Suggest(sources []string, isDir func(string) bool, now time.Time) string {
	switch len(sources) {
	case 0:
		return "archive" + Ext
	case 1:
		src := strings.TrimRight(sources[0], `/\`)
		base := filepath.Base(src)
		if isDir(sources[0]) {
			return base + Ext
		}

		stem := strings.TrimSuffix(base, filepath.Ext(base))
		return stem + "_archive" + Ext
	}

	names := make([]string, len(sources))
	for i, src := range sources {
		names[i] = filepath.Base(strings.TrimRight(src, `/\`))
	}

	base := ""
	for _, c := range categories {
		for _, name := range names {
			if c.matches(name) {
				base = c.name
				break
			}
		}
		if base != "" {
			break
		}
	}

	if base == "" {
		base = "Mixed_Files"
		if parent := commonParent(sources); parent != "" {
			if b := filepath.Base(parent); b != "." && b != string(filepath.Separator) {
				base = b
			} else {
				base = "Files"
			}
		}
	}

	return base + "_" + now.Format("2006-01-02") + Ext
}

// commonParent returns the parent directory of the first source if every source shares it.
func commonParent(sources []string) string {
	parent := filepath.Dir(filepath.Clean(sources[0]))
	for _, src := range sources[1:] {
		if filepath.Dir(filepath.Clean(src)) != parent {
			return ""
		}
	}

	return parent
}

// EnsureExt appends Ext to path unless it already ends with a known archive extension.
func EnsureExt(path string) string {
	lower := strings.ToLower(path)
	for _, ext := range knownExts {
		if strings.HasSuffix(lower, ext) {
			return path
		}
	}

	return path + Ext
}

// Unused returns a path in dir for the given archive name that does not exist yet, adding "-1", "-2", etc. to the stem
// as needed.
func Unused(dir, name string) (string, error) {
	stem, ext := util.StemAndExt(name)
	return util.FindUnusedName(dir, stem, ext)
}
