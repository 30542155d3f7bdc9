package listing

import (
	"bufio"
	"strconv"
	"strings"
)

// Property is one `key = value` line describing the archive itself.
type Property struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ArchiveInfo describes the archive itself, from the block that precedes the entries of a technical listing.
type ArchiveInfo struct {
	Path         string `json:"path"`
	Type         string `json:"type"`
	PhysicalSize int64  `json:"physicalSize"`
	Method       string `json:"method,omitempty"`
	Solid        bool   `json:"solid"`
	Blocks       int    `json:"blocks"`
	// Properties has every line of the block in listing order, including the ones above.
	Properties []Property `json:"properties"`
}

// ParseInfo parses the archive block of the technical listing printed by `7zz l -slt`.
//
// The block starts after the "--" line and ends at the first blank or "----------" line. Only the first block is
// parsed; nested archives such as .tar.gz print one block per layer, outermost first. A listing without such a block
// yields the zero value.
func ParseInfo(text string) (info ArchiveInfo) {
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), max(len(text)+1, 64*1024))

	started := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case !started:
			started = line == "--"
			continue
		case line == "" && len(info.Properties) == 0:
			continue
		case line == "" || strings.HasPrefix(line, "----"):
			return
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		info.Properties = append(info.Properties, Property{Key: key, Value: value})

		switch strings.ToLower(key) {
		case "path":
			info.Path = value
		case "type":
			info.Type = value
		case "physical size":
			info.PhysicalSize, _ = strconv.ParseInt(value, 10, 64)
		case "method":
			info.Method = value
		case "solid":
			info.Solid = value == "+"
		case "blocks":
			info.Blocks, _ = strconv.Atoi(value)
		}
	}

	return
}
