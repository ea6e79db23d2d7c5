package repl

import (
	"fmt"
	"sync"

	"golang.org/x/term"
)

// RawMode is a scoped hold on the terminal's raw input mode. Restore must run
// on every exit path so a crash mid-capture cannot leave the terminal raw;
// callers defer it immediately after acquisition.
type RawMode struct {
	fd   int
	prev *term.State
	once sync.Once
}

// EnableRawMode switches the terminal into raw mode and remembers the
// previous state. Failure here is fatal to the run: without raw mode the
// abort key could not be seen until a line boundary.
func EnableRawMode(fd int) (*RawMode, error) {
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	return &RawMode{fd: fd, prev: prev}, nil
}

// Restore puts the terminal back into its prior mode. Idempotent, so it can
// be both deferred and called eagerly before printing results.
func (m *RawMode) Restore() {
	m.once.Do(func() {
		_ = term.Restore(m.fd, m.prev)
	})
}
