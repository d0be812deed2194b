package tuikit

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestANSIBackend_Output(t *testing.T) {
	var out bytes.Buffer
	b := NewANSIBackend(strings.NewReader(""), &out)

	require.NoError(t, b.Clear())
	require.NoError(t, b.WriteLine("=== r ==="))
	require.NoError(t, b.WriteLine("  >[x] A"))
	assert.Zero(t, out.Len(), "nothing is written before Flush")

	require.NoError(t, b.Flush())
	assert.Equal(t, "\x1b[0m\x1b[H\x1b[2J\x1b[H=== r ===\r\n  >[x] A\r\n", out.String())

	out.Reset()
	require.NoError(t, b.Flush())
	assert.Zero(t, out.Len(), "empty flush writes nothing")
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestANSIBackend_FlushError(t *testing.T) {
	boom := errors.New("closed")
	b := NewANSIBackend(strings.NewReader(""), failingWriter{err: boom})

	require.NoError(t, b.WriteLine("x"))
	assert.ErrorIs(t, b.Flush(), boom)
}

func TestANSIBackend_ReadEvent(t *testing.T) {
	b := NewANSIBackend(strings.NewReader("\t\x1b[Z "), io.Discard)

	for _, want := range []Event{Press(KeyTab), Press(KeyTab, ModShift), PressRune(' ')} {
		ev, err := b.ReadEvent()
		require.NoError(t, err)
		assert.Equal(t, want, ev)
	}

	_, err := b.ReadEvent()
	assert.ErrorIs(t, err, io.EOF)
}

func TestANSIBackend_RawModeRequiresTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})

	type tc struct {
		in io.Reader
	}

	tests := map[string]tc{
		"plain reader": {in: strings.NewReader("")},
		"pipe":         {in: r},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			b := NewANSIBackend(tt.in, &out)

			assert.ErrorIs(t, b.EnterRawMode(), ErrNotTerminal)
			assert.False(t, b.InRawMode())
			assert.NoError(t, b.ExitRawMode(), "exit without enter is a no-op")
			assert.Zero(t, out.Len())
		})
	}
}

func TestRun_ANSIBackendWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(NewContainer("r").Add(NewCheckbox("A")), NewANSIBackend(strings.NewReader(" \x1b"), &out))

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "enter raw mode", ioErr.Op)
	assert.ErrorIs(t, err, ErrNotTerminal)
	assert.Equal(t, "tuikit: enter raw mode: input is not a terminal", err.Error())
}

func TestWrapIO(t *testing.T) {
	assert.NoError(t, wrapIO("x", nil))

	inner := &IOError{Op: "flush", Err: io.ErrShortWrite}
	assert.Same(t, inner, wrapIO("redraw", inner))

	wrapped := wrapIO("clear", io.ErrClosedPipe)
	assert.Equal(t, "tuikit: clear: io: read/write on closed pipe", wrapped.Error())
	assert.ErrorIs(t, wrapped, io.ErrClosedPipe)
}
