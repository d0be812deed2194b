package tuikit

import (
	"errors"
	"io"
)

// keyReader turns a blocking byte stream into input events.
type keyReader struct {
	in         io.Reader
	buf        []byte  // Read buffer for escape sequences
	partialBuf []byte  // Incomplete UTF-8 or CSI bytes from the previous read
	pending    []Event // Parsed events waiting to be returned
}

func newKeyReader(in io.Reader) *keyReader {
	return &keyReader{
		in:  in,
		buf: make([]byte, 256),
	}
}

// Next blocks until at least one event is available. Bytes that do not form
// an event (invalid UTF-8, unknown sequences) are consumed silently.
func (r *keyReader) Next() (Event, error) {
	for len(r.pending) == 0 {
		if r.in == nil {
			return nil, errors.New("no input source")
		}
		n, err := r.in.Read(r.buf)
		if n > 0 {
			data := r.buf[:n]
			if len(r.partialBuf) > 0 {
				data = append(r.partialBuf, data...)
				r.partialBuf = nil
			}

			events, remaining := parseInputWithRemainder(data)
			if len(remaining) > 0 {
				r.partialBuf = make([]byte, len(remaining))
				copy(r.partialBuf, remaining)
			}
			r.pending = append(r.pending, events...)
		}
		if err == nil {
			continue
		}
		if len(r.pending) > 0 {
			break
		}
		if errors.Is(err, io.EOF) && len(r.partialBuf) > 0 {
			r.pending = append(r.pending, flushPartial(r.partialBuf)...)
			r.partialBuf = nil
			if len(r.pending) > 0 {
				break
			}
		}
		return nil, err
	}

	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev, nil
}

// flushPartial resolves leftover bytes once no more input will arrive: an
// escape prefix becomes a lone Escape, a truncated UTF-8 sequence is dropped.
func flushPartial(data []byte) []Event {
	if len(data) == 0 || data[0] != 0x1b {
		return nil
	}
	return append([]Event{KeyEvent{Key: KeyEscape}}, parseInput(data[1:])...)
}
