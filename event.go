package tuikit

import (
	"fmt"
	"strings"
)

// Event is the base interface for all terminal input events.
// Use type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Key is the key pressed. For printable characters, this is KeyRune.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier

	// Kind is KeyPress unless the backend reports repeats or releases.
	Kind KeyKind
}

func (KeyEvent) isEvent() {}

// Press builds a press event for a special key.
func Press(key Key, mods ...Modifier) KeyEvent {
	ev := KeyEvent{Key: key}
	for _, m := range mods {
		ev.Mod |= m
	}
	return ev
}

// PressRune builds a press event for a printable character.
func PressRune(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// Release builds a release event for a special key.
func Release(key Key) KeyEvent {
	return KeyEvent{Key: key, Kind: KeyRelease}
}

// IsRune returns true if this is a printable character event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune
}

// IsPress reports whether the event is a key press.
func (e KeyEvent) IsPress() bool {
	return e.Kind == KeyPress
}

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyTab, ModShift)
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// Char returns the rune if this is a KeyRune event, or 0 otherwise.
func (e KeyEvent) Char() rune {
	if e.Key == KeyRune {
		return e.Rune
	}
	return 0
}

// String renders the event in binding notation, e.g. "shift+tab" or "a".
func (e KeyEvent) String() string {
	return bindingOf(e).String()
}

// ResizeEvent is emitted when the terminal is resized. The run loop ignores
// it since nothing is laid out against the terminal size.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// describeEvent is used by debug logging.
func describeEvent(ev Event) string {
	switch e := ev.(type) {
	case KeyEvent:
		var b strings.Builder
		b.WriteString(e.String())
		if e.Kind != KeyPress {
			b.WriteString(" (")
			b.WriteString(strings.ToLower(e.Kind.String()))
			b.WriteString(")")
		}
		return b.String()
	case ResizeEvent:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	case nil:
		return "<nil>"
	}
	return "unknown event"
}
