// Package listing turns the technical listing printed by `7zz l -slt` into FileRecord values.
package listing

import (
	"bufio"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ModifiedLayout is the layout of the "Modified" property in a technical listing.
//
// 7zz 22 and later append fractional seconds ("2024-05-01 10:11:12.1234567"); time.Parse accepts those even though
// the layout does not mention them.
const ModifiedLayout = "2006-01-02 15:04:05"

// FileRecord is one entry of an archive listing.
type FileRecord struct {
	// Path is the archive-relative path as listed by 7zz, which uses `/` as separator except on Windows.
	Path string `json:"path"`
	// Size is the uncompressed size in bytes. Always 0 for directories.
	Size int64 `json:"size"`
	// IsDir is true if the listing marks the entry with "Folder = +".
	IsDir bool `json:"isDir"`
	// Modified is nil if the listing omits the timestamp or it cannot be parsed.
	Modified *time.Time `json:"modified,omitempty"`
}

// Parse parses the technical listing of the archive at archivePath.
//
// The text is made up of blocks separated by blank lines, each block being `key = value` lines describing one entry.
// Blocks without a non-empty "Path" are dropped. The result then excludes entries that refer to the archive itself:
// paths ending in ".7z", or paths containing the base name of archivePath. Parse never fails; malformed lines are
// simply ignored.
func Parse(text, archivePath string) []FileRecord {
	records, _ := parse(strings.NewReader(text), archivePath, len(text)+1)
	return records
}

// parse reads blocks from r, allowing lines of up to maxLine bytes.
//
// The only error returned is that of reading from r, in which case the records parsed so far are also returned.
func parse(r io.Reader, archivePath string, maxLine int) ([]FileRecord, error) {
	var (
		sc      = bufio.NewScanner(r)
		records = make([]FileRecord, 0)
		block   = make(map[string]string)
		keep    = selfReferenceFilter(archivePath)
	)
	sc.Buffer(make([]byte, 0, 64*1024), max(maxLine, 64*1024))

	flush := func() {
		if len(block) == 0 {
			return
		}

		if rec, ok := fromBlock(block); ok && keep(rec.Path) {
			records = append(records, rec)
		}

		clear(block)
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			flush()
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		block[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	flush()

	return records, sc.Err()
}

func fromBlock(block map[string]string) (rec FileRecord, ok bool) {
	if rec.Path, ok = block["path"]; !ok || rec.Path == "" {
		return rec, false
	}

	if v, err := strconv.ParseInt(block["size"], 10, 64); err == nil && v >= 0 {
		rec.Size = v
	}

	rec.IsDir = block["folder"] == "+"

	if v, ok := block["modified"]; ok {
		if t, err := time.ParseInLocation(ModifiedLayout, v, time.Local); err == nil {
			rec.Modified = &t
		}
	}

	return rec, true
}

// selfReferenceFilter returns the predicate deciding which paths are kept.
//
// The substring check on the archive's base name can also drop legitimate entries that happen to contain that name.
func selfReferenceFilter(archivePath string) func(path string) bool {
	base := ""
	if archivePath != "" {
		if base = filepath.Base(archivePath); base == "." || base == string(filepath.Separator) {
			base = ""
		}
	}

	return func(path string) bool {
		switch {
		case path == "":
			return false
		case strings.HasSuffix(path, ".7z"):
			return false
		case base != "" && strings.Contains(path, base):
			return false
		default:
			return true
		}
	}
}
