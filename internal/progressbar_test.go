package internal

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestProgressLogger(t *testing.T) {
	var buf bytes.Buffer
	p := &ProgressLogger{logger: log.New(&buf, "", 0), sometimes: rate.Sometimes{Every: 1}}

	_, _ = p.Write([]byte("Extracting archive: a.7z\n"))
	_, _ = p.Write([]byte("  5% 3 - a.txt\b\b\b\b\b\b\b\b\b\b\b\b\b"))
	_, _ = p.Write([]byte(" 42% 7 - b.t"))
	assert.Equal(t, "Extracting archive: a.7z\n5% 3 - a.txt\n", buf.String())

	_, _ = p.Write([]byte("xt\r\n"))
	assert.Equal(t, "Extracting archive: a.7z\n5% 3 - a.txt\n42% 7 - b.txt\n", buf.String())

	// nothing new to log.
	p.Flush()
	assert.Equal(t, "Extracting archive: a.7z\n5% 3 - a.txt\n42% 7 - b.txt\n", buf.String())
}

func TestProgressLogger_Interval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressLogger(log.New(&buf, "", 0), time.Hour)

	_, _ = p.Write([]byte("Extracting archive: a.7z\n"))
	_, _ = p.Write([]byte("  5% 3 - a.txt\b\b\b 42% 7 - b.txt\r"))
	_, _ = p.Write([]byte(" 99% 9 - c.t"))
	assert.Equal(t, "Extracting archive: a.7z\n", buf.String())

	// only the latest complete line is logged once 7zz exits.
	p.Flush()
	assert.Equal(t, "Extracting archive: a.7z\n42% 7 - b.txt\n", buf.String())
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, `[1/3] "a.7z" - `, Prefix(0, 3, "/path/to/a.7z"))
	assert.Equal(t, `[2/2] "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa..." - `, Prefix(1, 2, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa.7z"))
}
