package tuikit

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// textFieldMinWidth is the minimum number of columns drawn between brackets.
const textFieldMinWidth = 10

// cursorMarker is drawn at the cursor position of a focused TextField.
const cursorMarker = '|'

// TextField is a single-line text input. The cursor is a rune offset and
// always satisfies 0 <= cursor <= len(buffer).
type TextField struct {
	label       string
	placeholder string
	buffer      []rune
	cursor      int
}

// NewTextField creates an empty text field. The placeholder is shown while
// the buffer is empty.
func NewTextField(label, placeholder string) *TextField {
	return &TextField{label: label, placeholder: placeholder}
}

func (t *TextField) Label() string {
	return t.label
}

func (t *TextField) Placeholder() string {
	return t.placeholder
}

// Text returns the current buffer contents.
func (t *TextField) Text() string {
	return string(t.buffer)
}

// Cursor returns the cursor offset in runes.
func (t *TextField) Cursor() int {
	return t.cursor
}

// SetText replaces the buffer and moves the cursor to the end.
func (t *TextField) SetText(text string) {
	t.buffer = []rune(text)
	t.cursor = len(t.buffer)
}

// Insert types r at the cursor and advances the cursor past it. Control
// characters are rejected.
func (t *TextField) Insert(r rune) bool {
	if unicode.IsControl(r) {
		return false
	}
	t.buffer = append(t.buffer, 0)
	copy(t.buffer[t.cursor+1:], t.buffer[t.cursor:])
	t.buffer[t.cursor] = r
	t.cursor++
	return true
}

// Backspace removes the rune before the cursor. No-op at offset 0.
func (t *TextField) Backspace() bool {
	if t.cursor == 0 {
		return false
	}
	t.buffer = append(t.buffer[:t.cursor-1], t.buffer[t.cursor:]...)
	t.cursor--
	return true
}

// Delete removes the rune under the cursor. No-op at the end of the buffer.
func (t *TextField) Delete() bool {
	if t.cursor >= len(t.buffer) {
		return false
	}
	t.buffer = append(t.buffer[:t.cursor], t.buffer[t.cursor+1:]...)
	return true
}

func (t *TextField) CursorLeft() bool {
	if t.cursor == 0 {
		return false
	}
	t.cursor--
	return true
}

func (t *TextField) CursorRight() bool {
	if t.cursor >= len(t.buffer) {
		return false
	}
	t.cursor++
	return true
}

func (t *TextField) CursorHome() bool {
	moved := t.cursor != 0
	t.cursor = 0
	return moved
}

func (t *TextField) CursorEnd() bool {
	moved := t.cursor != len(t.buffer)
	t.cursor = len(t.buffer)
	return moved
}

// apply reports whether the action is a text editing action. Edits that hit
// a boundary (backspace at 0) are understood but change nothing.
func (t *TextField) apply(a Action) bool {
	switch a.Kind {
	case ActionInsertChar:
		return t.Insert(a.Rune)
	case ActionDeleteBack:
		t.Backspace()
	case ActionDeleteForward:
		t.Delete()
	case ActionCursorLeft:
		t.CursorLeft()
	case ActionCursorRight:
		t.CursorRight()
	case ActionCursorHome:
		t.CursorHome()
	case ActionCursorEnd:
		t.CursorEnd()
	default:
		return false
	}
	return true
}

// Render draws "label: [text]". An empty buffer shows the placeholder. When
// focused, the cursor marker goes at the cursor offset, bounded by the length
// of whatever text is displayed.
func (t *TextField) Render(focused bool) string {
	display := t.buffer
	if len(display) == 0 {
		display = []rune(t.placeholder)
	}

	var field string
	if focused {
		at := min(t.cursor, len(display))
		marked := make([]rune, 0, len(display)+1)
		marked = append(marked, display[:at]...)
		marked = append(marked, cursorMarker)
		marked = append(marked, display[at:]...)
		field = string(marked)
	} else {
		field = string(display)
	}

	pad := max(textFieldMinWidth-uniseg.StringWidth(field), 0)

	var b strings.Builder
	if t.label != "" {
		b.WriteString(t.label)
		b.WriteString(": ")
	}
	b.WriteByte('[')
	b.WriteString(field)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteByte(']')
	return b.String()
}
