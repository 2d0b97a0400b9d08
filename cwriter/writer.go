package cwriter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// https://github.com/dylanaraps/pure-sh-bible#cursor-movement
const crAndEl = "\r\x1b[K"

// ErrNotTTY not a TeleTYpewriter error.
var ErrNotTTY = errors.New("not a terminal")

// Writer is a cursor aware writer that owns one terminal line. A frame
// written with RenderFrame stays on the current line without a trailing
// newline, so the next RenderFrame overwrites it in place instead of
// scrolling. Writeln commits ordinary text to scrollback without leaving
// remnants of a live frame on the line.
//
// Writer does not attempt to detect whether out is a real terminal before
// emitting control sequences; piped consumers will see them raw.
type Writer struct {
	out      io.Writer
	buf      bytes.Buffer
	lineLive bool
	fd       int
	terminal bool
	termSize func(int) (int, int, error)
}

// New returns a new Writer with defaults.
func New(out io.Writer) *Writer {
	w := &Writer{
		out: out,
		termSize: func(_ int) (int, int, error) {
			return -1, -1, ErrNotTTY
		},
	}
	if f, ok := out.(*os.File); ok {
		w.fd = int(f.Fd())
		if isatty.IsTerminal(f.Fd()) {
			w.terminal = true
			w.termSize = func(fd int) (int, int, error) {
				return term.GetSize(fd)
			}
		}
	}
	return w
}

// GetTermSize returns WxH of underlying terminal.
func (w *Writer) GetTermSize() (width, height int, err error) {
	return w.termSize(w.fd)
}

// IsTerminal reports whether underlying out is a terminal.
func (w *Writer) IsTerminal() bool {
	return w.terminal
}

// LineLive reports whether the current line holds a previously rendered
// frame.
func (w *Writer) LineLive() bool {
	return w.lineLive
}

// RenderFrame erases the current line and rewrites it with frame, leaving
// the cursor at the end of the line.
func (w *Writer) RenderFrame(frame []byte) error {
	w.buf.Reset()
	w.buf.WriteString(crAndEl)
	w.buf.Write(frame)
	if _, err := w.out.Write(w.buf.Bytes()); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	w.lineLive = true
	return nil
}

// Writeln erases the live frame if any, then writes text terminated by a
// newline so it becomes permanent scrollback. The frame owner is expected
// to redraw on the fresh line after. With no live frame it degrades to a
// plain line write.
func (w *Writer) Writeln(text string) error {
	w.buf.Reset()
	if w.lineLive {
		w.buf.WriteString(crAndEl)
	}
	w.buf.WriteString(text)
	w.buf.WriteByte('\n')
	if _, err := w.out.Write(w.buf.Bytes()); err != nil {
		return fmt.Errorf("writeln: %w", err)
	}
	w.lineLive = false
	return nil
}

// Finish moves the cursor past the live frame so it stays in scrollback.
// Subsequent writes to out start on a fresh line.
func (w *Writer) Finish() error {
	if !w.lineLive {
		return nil
	}
	w.lineLive = false
	if _, err := io.WriteString(w.out, "\n"); err != nil {
		return fmt.Errorf("finish: %w", err)
	}
	return nil
}
