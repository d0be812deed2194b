package tuikit

// Backend is the terminal the run loop draws to and reads keys from.
// ANSIBackend drives a real terminal; MockBackend replays scripted input for
// tests.
type Backend interface {
	// EnterRawMode puts the terminal into character-at-a-time input mode.
	EnterRawMode() error

	// ExitRawMode restores the mode saved by EnterRawMode.
	ExitRawMode() error

	// ReadEvent blocks until the next input event arrives.
	ReadEvent() (Event, error)

	// Clear erases the display and homes the cursor.
	Clear() error

	// WriteLine writes one line of text followed by a line break.
	WriteLine(text string) error

	// Flush pushes any buffered output to the terminal.
	Flush() error
}
