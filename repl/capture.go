/*
 * Implements the raw-mode multiline prompt capture. This is the only part of
 * the program with any state: it sits in Reading until the submit or abort
 * key arrives, appending and erasing runes as the user types.
 */
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Default key bindings. Raw mode disables flow control and signal generation,
// so both arrive as plain input bytes.
const (
	KeySubmit byte = 0x13 // Ctrl-S
	KeyAbort  byte = 0x03 // Ctrl-C
)

const (
	keyBackspace byte = 0x08
	keyDelete    byte = 0x7f
)

// ErrAborted is returned by Run when the abort key is pressed. The buffer
// contents are discarded and must never reach the network.
var ErrAborted = errors.New("prompt aborted")

// Capturer reads one keystroke at a time from In, echoing to Out, until the
// submit or abort key terminates the capture. It assumes the terminal backing
// In is already in raw mode; see EnableRawMode.
type Capturer struct {
	In  io.Reader
	Out io.Writer

	SubmitKey byte
	AbortKey  byte
}

func NewCapturer(in io.Reader, out io.Writer) *Capturer {
	return &Capturer{
		In:        in,
		Out:       out,
		SubmitKey: KeySubmit,
		AbortKey:  KeyAbort,
	}
}

// Run blocks until a terminating key or a read error. On submit it returns
// the buffer contents with embedded line breaks and backspace edits applied.
// On abort it returns ErrAborted, and on a read failure the wrapped error;
// in both cases the typed text is discarded.
func (c *Capturer) Run() (string, error) {
	var (
		buf     []rune
		b       [1]byte
		pending []byte // partial UTF-8 sequence
	)

	for {
		n, err := c.In.Read(b[:])
		if err != nil {
			return "", fmt.Errorf("read keystroke: %w", err)
		}
		if n == 0 {
			continue
		}
		ch := b[0]

		// Continuation bytes of a multi-byte rune are >= 0x80 and can never
		// collide with the key bindings, so assemble those first.
		if len(pending) > 0 || ch >= utf8.RuneSelf {
			pending = append(pending, ch)
			if !utf8.FullRune(pending) {
				if len(pending) >= utf8.UTFMax {
					pending = pending[:0] // malformed, drop it
				}
				continue
			}
			r, _ := utf8.DecodeRune(pending)
			if r != utf8.RuneError {
				buf = append(buf, r)
				c.echo(string(pending))
			}
			pending = pending[:0]
			continue
		}

		switch ch {
		case c.AbortKey:
			return "", ErrAborted
		case c.SubmitKey:
			return string(buf), nil
		case '\r', '\n':
			buf = append(buf, '\n')
			c.echo("\r\n")
		case keyBackspace, keyDelete:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				c.echo("\b \b")
			}
		default:
			if ch >= 0x20 { // drop unhandled control bytes
				buf = append(buf, rune(ch))
				c.echo(string(rune(ch)))
			}
		}
	}
}

func (c *Capturer) echo(s string) {
	io.WriteString(c.Out, s)
}

// ParseKey resolves a "ctrl+<letter>" binding from the config file into the
// control byte the capture loop compares against.
func ParseKey(name string) (byte, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	after, ok := strings.CutPrefix(s, "ctrl+")
	if !ok || len(after) != 1 || after[0] < 'a' || after[0] > 'z' {
		return 0, fmt.Errorf("invalid key binding '%s': expected ctrl+<letter>", name)
	}
	return after[0] - 'a' + 1, nil
}
