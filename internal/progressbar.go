package internal

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
	"golang.org/x/time/rate"
)

// DefaultSpinner returns a spinner that moves as bytes are written to it.
//
// Feed it the output of 7zz to show that work is happening without knowing how much is left.
func DefaultSpinner(description string, options ...progressbar.Option) *progressbar.ProgressBar {
	return progressbar.NewOptions64(-1,
		append([]progressbar.Option{
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(10),
			progressbar.OptionThrottle(1 * time.Second),
			progressbar.OptionOnCompletion(func() {
				_, _ = fmt.Fprint(os.Stderr, "\n")
			}),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionFullWidth(),
			progressbar.OptionSetRenderBlankState(true)},
			options...)...)
}

// ProgressLogger is an io.Writer that logs the progress lines 7zz writes (with -bsp1) at most every Interval.
//
// 7zz redraws its progress in place with backspaces and carriage returns, so those are treated as line breaks. Lines
// completed within the same interval are collapsed into the latest one, which is logged once the interval has passed or
// Flush is called.
type ProgressLogger struct {
	logger    *log.Logger
	sometimes rate.Sometimes

	mu      sync.Mutex
	last    []byte
	cur     []byte
	pending bool
}

// NewProgressLogger returns a ProgressLogger that logs at most once every interval.
func NewProgressLogger(logger *log.Logger, interval time.Duration) *ProgressLogger {
	return &ProgressLogger{logger: logger, sometimes: rate.Sometimes{Interval: interval}}
}

func (p *ProgressLogger) Write(data []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, b := range data {
		switch b {
		case '\n', '\r', '\b':
			if line := bytes.TrimSpace(p.cur); len(line) != 0 {
				p.last = append(p.last[:0], line...)
				p.pending = true
			}
			p.cur = p.cur[:0]
		default:
			p.cur = append(p.cur, b)
		}
	}

	if p.pending {
		p.sometimes.Do(p.flush)
	}

	return len(data), nil
}

// Flush logs the latest complete line if it has not been logged yet.
func (p *ProgressLogger) Flush() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending {
		p.flush()
	}
}

// flush must be called with mu held.
func (p *ProgressLogger) flush() {
	p.logger.Printf("%s", p.last)
	p.pending = false
}

// ProgressInterval is how often ProgressLogger logs when stderr is not a terminal.
const ProgressInterval = 5 * time.Second

// NewProgressWriter returns the writer to receive 7zz output while it runs.
//
// When stderr is a terminal the output drives a spinner, otherwise the latest progress line is logged every
// ProgressInterval. The returned function must be called after 7zz exits.
func NewProgressWriter(logger *log.Logger, description string) (io.Writer, func()) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		p := NewProgressLogger(logger, ProgressInterval)
		return p, p.Flush
	}

	bar := DefaultSpinner(description)
	return bar, func() {
		_ = bar.Finish()
	}
}
