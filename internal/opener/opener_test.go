package opener

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOpen(t *testing.T) {
	var got []string
	start = func(input string) error {
		got = append(got, input)
		return nil
	}
	t.Cleanup(func() {
		start = defaultStart
	})

	dir := t.TempDir()
	assert.NoError(t, Open(dir))
	assert.Equal(t, []string{dir}, got)

	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	assert.Error(t, Open(file))
	assert.Error(t, Open(filepath.Join(dir, "missing")))
	assert.Len(t, got, 1)
}

func TestOpen_OutlivesCaller(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("fake xdg-open is a shell script")
	}

	bin := t.TempDir()
	marker := filepath.Join(bin, "opened")
	script := fmt.Sprintf("#!/bin/sh\nsleep 0.3\nprintf '%%s' \"$1\" > '%s'\n", marker)
	if err := os.WriteFile(filepath.Join(bin, "xdg-open"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	dir := t.TempDir()
	assert.NoError(t, Open(dir))

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(marker)
		return err == nil && string(data) == dir
	}, 5*time.Second, 50*time.Millisecond)
}
