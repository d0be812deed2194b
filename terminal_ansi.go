package tuikit

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/grindlemire/go-tuikit/internal/debug"
)

// ANSIBackend implements Backend for a real terminal using ANSI escape
// sequences. Output is buffered until Flush.
type ANSIBackend struct {
	out      io.Writer     // Output destination (usually os.Stdout)
	reader   *keyReader    // Decodes input bytes into events
	inFd     int           // Input file descriptor, -1 when in is not a file
	esc      *escBuilder   // Pending output
	rawState *rawModeState // Platform-specific raw mode state
}

var _ Backend = (*ANSIBackend)(nil)

// NewANSIBackend creates a backend reading keys from in and drawing to out.
// Raw mode is only available when in is an *os.File connected to a terminal.
func NewANSIBackend(in io.Reader, out io.Writer) *ANSIBackend {
	t := &ANSIBackend{
		out:    out,
		reader: newKeyReader(in),
		inFd:   -1,
		esc:    newEscBuilder(4096),
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}
	return t
}

// EnterRawMode switches the input terminal to raw mode and hides the cursor.
// Calling it again while already raw is a no-op.
func (t *ANSIBackend) EnterRawMode() error {
	if t.rawState != nil {
		return nil
	}
	if t.inFd < 0 || !term.IsTerminal(t.inFd) {
		return ErrNotTerminal
	}
	state, err := enableRawMode(t.inFd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.esc.HideCursor()
	if err := t.Flush(); err != nil {
		// The caller treats a failed enter as never entered, so undo it here.
		if restoreErr := disableRawMode(state); restoreErr != nil {
			debug.Log("ANSIBackend.EnterRawMode: restore after %v: %v", err, restoreErr)
		}
		return err
	}
	t.rawState = state
	return nil
}

// ExitRawMode shows the cursor again and restores the saved terminal mode.
// The mode is restored even if writing the cursor sequence fails.
func (t *ANSIBackend) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	t.esc.ResetStyle()
	t.esc.ShowCursor()
	flushErr := t.Flush()

	err := disableRawMode(t.rawState)
	t.rawState = nil
	if err != nil {
		return fmt.Errorf("restore terminal mode: %w", err)
	}
	return flushErr
}

// InRawMode reports whether EnterRawMode succeeded and ExitRawMode has not
// been called since.
func (t *ANSIBackend) InRawMode() bool {
	return t.rawState != nil
}

// ReadEvent blocks until the next key (or other input event) is decoded.
func (t *ANSIBackend) ReadEvent() (Event, error) {
	return t.reader.Next()
}

// Clear erases the screen and moves the cursor home.
func (t *ANSIBackend) Clear() error {
	t.esc.ResetStyle()
	t.esc.Home()
	t.esc.ClearScreen()
	t.esc.Home()
	return nil
}

// WriteLine queues one line of output.
func (t *ANSIBackend) WriteLine(text string) error {
	t.esc.Line(text)
	return nil
}

// Flush writes all queued output.
func (t *ANSIBackend) Flush() error {
	if len(t.esc.Bytes()) == 0 {
		return nil
	}
	_, err := t.out.Write(t.esc.Bytes())
	t.esc.Reset()
	return err
}
