package sevenzz

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddArgs(t *testing.T) {
	tests := []struct {
		name    string
		archive string
		files   []string
		opts    AddOptions
		want    []string
		wantErr bool
	}{
		{
			name:    "defaults",
			archive: "out.7z",
			files:   []string{"a", "b"},
			opts:    AddOptions{Level: DefaultLevel},
			want:    []string{"a", "--", "out.7z", "a", "b"},
		},
		{
			name:    "everything for 7z",
			archive: "out.7z",
			files:   []string{"dir"},
			opts: AddOptions{
				Level:          9,
				Volume:         "100m",
				Password:       "secret",
				EncryptHeaders: true,
				Excludes:       []string{".DS_Store", " ", "Thumbs.db"},
				Overwrite:      true,
			},
			want: []string{"a", "-mx9", "-v100m", "-y", "-psecret", "-mhe=on", "-xr!.DS_Store", "-xr!Thumbs.db", "--", "out.7z", "dir"},
		},
		{
			name:    "no header encryption for zip",
			archive: "out.ZIP",
			files:   []string{"dir"},
			opts:    AddOptions{Level: 0, Password: "secret", EncryptHeaders: true},
			want:    []string{"a", "-mx0", "-psecret", "--", "out.ZIP", "dir"},
		},
		{
			name:    "no level for tar",
			archive: "out.tar",
			files:   []string{"dir"},
			opts:    AddOptions{Level: 5},
			want:    []string{"a", "--", "out.tar", "dir"},
		},
		{
			name:    "progress",
			archive: "out.7z",
			files:   []string{"dir"},
			opts:    AddOptions{Level: DefaultLevel, Output: &bytes.Buffer{}},
			want:    []string{"a", "-bsp1", "--", "out.7z", "dir"},
		},
		{
			name:    "password for tar",
			archive: "out.tar",
			files:   []string{"dir"},
			opts:    AddOptions{Level: DefaultLevel, Password: "secret"},
			wantErr: true,
		},
		{
			name:    "level too high",
			archive: "out.7z",
			files:   []string{"dir"},
			opts:    AddOptions{Level: 10},
			wantErr: true,
		},
		{
			name:    "no files",
			archive: "out.7z",
			opts:    AddOptions{Level: DefaultLevel},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := addArgs(tt.archive, tt.files, &tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractArgs(t *testing.T) {
	tests := []struct {
		name     string
		listFile string
		opts     ExtractOptions
		want     []string
	}{
		{
			name: "everything",
			opts: ExtractOptions{},
			want: []string{"x", "-oout", "-y", "-aoa", "--", "in.7z"},
		},
		{
			name: "selected files with password",
			opts: ExtractOptions{Password: "pw", Overwrite: RenameExtracted, Files: []string{"a", "b/c"}},
			want: []string{"x", "-oout", "-y", "-aou", "-ppw", "--", "in.7z", "a", "b/c"},
		},
		{
			name:     "list file",
			listFile: "/tmp/list.txt",
			opts:     ExtractOptions{Files: []string{"a", "b/c"}},
			want:     []string{"x", "-oout", "-y", "-aoa", "-scsUTF-8", "-i@/tmp/list.txt", "--", "in.7z"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractArgs("in.7z", "out", tt.listFile, &tt.opts))
		})
	}
}

func TestListArgs(t *testing.T) {
	assert.Equal(t, []string{"l", "-slt", "--", "-weird.7z"}, listArgs("-weird.7z", &ListOptions{}))
}

func TestParseOverwrite(t *testing.T) {
	for s, want := range map[string]Overwrite{"": OverwriteAll, "overwrite": OverwriteAll, "skip": SkipExisting, "rename": RenameExtracted} {
		got, err := ParseOverwrite(s)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseOverwrite("ask")
	assert.Error(t, err)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, []string{"a", "-p***", "-p", "--"}, redact([]string{"a", "-psecret", "-p", "--"}))
}
