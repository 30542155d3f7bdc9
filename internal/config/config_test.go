package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func load(t *testing.T, content string) *Loader {
	name := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	l := NewLoader()
	got, err := l.Load(context.Background(), name)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, name, got)

	return l
}

func TestLoader_Defaults(t *testing.T) {
	l := NewLoader()

	c := l.Compression()
	assert.Equal(t, PresetBalanced, c.Preset)
	assert.Equal(t, DefaultExcludes, c.Excludes)
	level, err := c.EffectiveLevel()
	assert.NoError(t, err)
	assert.Equal(t, 5, level)

	o := l.Output()
	assert.True(t, o.RememberLast)
	assert.Equal(t, "", o.Last)
	assert.Equal(t, o.Dir, o.DefaultDir())

	assert.False(t, l.Extract().AutoOpen)
	assert.Equal(t, "", l.SevenZZ())
}

func TestLoader_Load(t *testing.T) {
	l := load(t, `
[7zz]
path = /opt/homebrew/bin/7zz

[compress]
preset = custom
level = 3
exclude = .git, node_modules

[output]
dir = /tmp/archives
remember-last = false
last = /tmp/last

[extract]
auto-open = true
`)

	c := l.Compression()
	assert.Equal(t, PresetCustom, c.Preset)
	assert.Equal(t, []string{".git", "node_modules"}, c.Excludes)
	level, err := c.EffectiveLevel()
	assert.NoError(t, err)
	assert.Equal(t, 3, level)

	o := l.Output()
	assert.Equal(t, "/tmp/archives", o.DefaultDir())

	assert.True(t, l.Extract().AutoOpen)
	assert.Equal(t, "/opt/homebrew/bin/7zz", l.SevenZZ())
}

func TestLoader_EmptyExclude(t *testing.T) {
	l := load(t, "[compress]\nexclude =\n")
	assert.Empty(t, l.Compression().Excludes)
}

func TestLoader_MissingFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), FileName)

	l := NewLoader()
	got, err := l.Load(context.Background(), name)
	assert.NoError(t, err)
	assert.Equal(t, name, got)
	assert.Equal(t, PresetBalanced, l.Compression().Preset)
}

func TestLoader_RememberOutputDir(t *testing.T) {
	l := load(t, "[output]\ndir = /tmp/archives\n")

	assert.NoError(t, l.RememberOutputDir("/tmp/elsewhere"))
	assert.Equal(t, "/tmp/elsewhere", l.Output().DefaultDir())

	// reload from disk to see that it was saved.
	reloaded := NewLoader()
	_, err := reloaded.Load(context.Background(), l.Path())
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere", reloaded.Output().Last)
}

func TestLoader_RememberOutputDir_Disabled(t *testing.T) {
	l := load(t, "[output]\nremember-last = false\n")

	assert.NoError(t, l.RememberOutputDir("/tmp/elsewhere"))
	assert.Equal(t, "", l.Output().Last)
}

func TestPresetLevel(t *testing.T) {
	tests := []struct {
		preset  string
		level   int
		want    int
		wantErr bool
	}{
		{preset: "fast", want: 1},
		{preset: "Balanced", want: 5},
		{preset: "", want: 5},
		{preset: "maximum", want: 9},
		{preset: "custom", level: 0, want: 0},
		{preset: "custom", level: 10, wantErr: true},
		{preset: "turbo", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			got, err := PresetLevel(tt.preset, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
