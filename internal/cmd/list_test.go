package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nguyengg/x7z/internal"
	"github.com/nguyengg/x7z/listing"
	"github.com/nguyengg/x7z/tree"
	"github.com/stretchr/testify/assert"
)

func sampleRecords() []listing.FileRecord {
	modified := time.Date(2024, 5, 1, 10, 11, 12, 0, time.Local)
	return []listing.FileRecord{
		{Path: "docs", IsDir: true},
		{Path: "docs/a.txt", Size: 1024, Modified: &modified},
		{Path: "docs/sub/b.txt", Size: 10},
		{Path: "readme.md"},
	}
}

func TestWriteFlat(t *testing.T) {
	internal.DisableColor()

	var buf bytes.Buffer
	writeFlat(&buf, sampleRecords())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if assert.Len(t, lines, 5) {
		assert.Equal(t, []string{"1", "-", "<DIR>", "docs"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"2", "2024-05-01", "10:11", "1.0", "KiB", "docs/a.txt"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"3", "-", "10", "B", "docs/sub/b.txt"}, strings.Fields(lines[2]))
		assert.Equal(t, []string{"4", "-", "0", "B", "readme.md"}, strings.Fields(lines[3]))
		assert.Equal(t, "3 files, 1 folders, 1.0 KiB", lines[4])
	}
}

func TestWriteTree(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		want  string
	}{
		{
			name:  "expand all",
			depth: -1,
			want: "- docs/\n" +
				"    a.txt (1.0 KiB)\n" +
				"  - sub/\n" +
				"      b.txt (10 B)\n" +
				"  readme.md (0 B)\n",
		},
		{
			name:  "roots only",
			depth: 0,
			want: "+ docs/ (3)\n" +
				"  readme.md (0 B)\n",
		},
		{
			name:  "one level",
			depth: 1,
			want: "- docs/\n" +
				"    a.txt (1.0 KiB)\n" +
				"  + sub/ (1)\n" +
				"  readme.md (0 B)\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeTree(&buf, tree.Build(sampleRecords()), tt.depth)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, writeJSON(&buf, "empty.7z", nil))
	assert.JSONEq(t, `{"archive": "empty.7z", "files": []}`, buf.String())

	buf.Reset()
	assert.NoError(t, writeJSON(&buf, "a.7z", []listing.FileRecord{{Path: "a/b.txt", Size: 3}, {Path: "a", IsDir: true}}))
	assert.JSONEq(t, `{"archive": "a.7z", "files": [
		{"path": "a/b.txt", "size": 3, "isDir": false},
		{"path": "a", "size": 0, "isDir": true}
	]}`, buf.String())
}

func TestList_Render(t *testing.T) {
	internal.DisableColor()

	var buf bytes.Buffer
	c := &List{Tree: true, Depth: 0}
	c.render(&buf, "a.7z", "a.7z (.7z)", sampleRecords())
	assert.Equal(t, "a.7z (.7z)\n+ docs/ (3)\n  readme.md (0 B)\n", buf.String())

	buf.Reset()
	c = &List{JSON: true}
	c.render(&buf, "a.7z", "a.7z (.7z)", nil)
	assert.JSONEq(t, `{"archive": "a.7z", "files": []}`, buf.String())
}
