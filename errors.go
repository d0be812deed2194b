package tuikit

import (
	"errors"
	"fmt"
)

// IOError is the only error the run loop returns. It wraps the backend
// failure that aborted the interaction.
type IOError struct {
	// Op names the backend operation that failed, e.g. "read event".
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("tuikit: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// wrapIO wraps err as an IOError unless it already is one.
func wrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &IOError{Op: op, Err: err}
}

// ErrNotTerminal is returned by ANSIBackend.EnterRawMode when its input is
// not connected to a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")
