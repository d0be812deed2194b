//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package tuikit

import "golang.org/x/term"

// rawModeState stores the original terminal state for restoration.
type rawModeState struct {
	fd    int
	state *term.State
}

// enableRawMode puts the terminal into raw mode and returns the previous state.
func enableRawMode(fd int) (*rawModeState, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &rawModeState{fd: fd, state: state}, nil
}

// disableRawMode restores the terminal to its previous state.
func disableRawMode(state *rawModeState) error {
	if state == nil {
		return nil
	}
	return term.Restore(state.fd, state.state)
}
