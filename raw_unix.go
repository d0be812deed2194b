//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package tuikit

import (
	"golang.org/x/sys/unix"
)

// rawModeState stores the original terminal state for restoration.
type rawModeState struct {
	fd      int
	termios unix.Termios
}

// enableRawMode puts the terminal into raw mode and returns the previous state.
func enableRawMode(fd int) (*rawModeState, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	state := &rawModeState{fd: fd, termios: *termios}

	// Turn off:
	// - ECHO: don't echo input characters
	// - ICANON: disable canonical mode (read byte-by-byte instead of line-by-line)
	// - ISIG: disable signals (Ctrl+C, Ctrl+Z, etc.)
	// - IEXTEN: disable extended input processing
	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN

	// Turn off:
	// - IXON: disable software flow control (Ctrl+S, Ctrl+Q)
	// - ICRNL: don't translate CR to NL
	// - BRKINT: don't send SIGINT on break
	// - INPCK: disable parity checking
	// - ISTRIP: don't strip 8th bit
	termios.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP

	// Output processing off; WriteLine emits CRLF itself.
	termios.Oflag &^= unix.OPOST

	termios.Cflag |= unix.CS8

	// VMIN = 1, VTIME = 0: a read blocks until at least one byte arrives.
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, err
	}

	return state, nil
}

// disableRawMode restores the terminal to its previous state.
func disableRawMode(state *rawModeState) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(state.fd, ioctlSetTermios, &state.termios)
}
