package tuikit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// typeInto applies a sequence of actions and returns the field.
func typeInto(tf *TextField, actions ...Action) *TextField {
	for _, a := range actions {
		tf.apply(a)
	}
	return tf
}

func typed(s string) []Action {
	var out []Action
	for _, r := range s {
		out = append(out, InsertChar(r))
	}
	return out
}

func TestTextField_Editing(t *testing.T) {
	type tc struct {
		actions    []Action
		wantText   string
		wantCursor int
	}

	tests := map[string]tc{
		"typing appends": {
			actions:  typed("abc"),
			wantText: "abc", wantCursor: 3,
		},
		"backspace at start is a no-op": {
			actions:  []Action{Act(ActionDeleteBack)},
			wantText: "", wantCursor: 0,
		},
		"left at start is a no-op": {
			actions:  []Action{Act(ActionCursorLeft)},
			wantText: "", wantCursor: 0,
		},
		"right at end is a no-op": {
			actions:  append(typed("ab"), Act(ActionCursorRight)),
			wantText: "ab", wantCursor: 2,
		},
		"insert in the middle": {
			actions:  append(typed("ac"), Act(ActionCursorLeft), InsertChar('b')),
			wantText: "abc", wantCursor: 2,
		},
		"backspace in the middle": {
			actions:  append(typed("abc"), Act(ActionCursorLeft), Act(ActionDeleteBack)),
			wantText: "ac", wantCursor: 1,
		},
		"forward delete": {
			actions:  append(typed("abc"), Act(ActionCursorHome), Act(ActionDeleteForward)),
			wantText: "bc", wantCursor: 0,
		},
		"forward delete at end is a no-op": {
			actions:  append(typed("abc"), Act(ActionDeleteForward)),
			wantText: "abc", wantCursor: 3,
		},
		"home then end": {
			actions:  append(typed("abc"), Act(ActionCursorHome), Act(ActionCursorEnd)),
			wantText: "abc", wantCursor: 3,
		},
		"multibyte runes": {
			actions:  append(typed("日本"), Act(ActionDeleteBack)),
			wantText: "日", wantCursor: 1,
		},
		"control characters rejected": {
			actions:  []Action{InsertChar('\n'), InsertChar('\x1b')},
			wantText: "", wantCursor: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tf := typeInto(NewTextField("Name", ""), tt.actions...)
			assert.Equal(t, tt.wantText, tf.Text())
			assert.Equal(t, tt.wantCursor, tf.Cursor())
			assert.GreaterOrEqual(t, tf.Cursor(), 0)
			assert.LessOrEqual(t, tf.Cursor(), len([]rune(tf.Text())))
		})
	}
}

func TestTextField_ApplyReportsUnderstoodActions(t *testing.T) {
	tf := NewTextField("Name", "")

	assert.True(t, tf.apply(InsertChar('x')))
	assert.True(t, tf.apply(Act(ActionCursorRight)), "boundary edits are still understood")
	assert.False(t, tf.apply(InsertChar('\t')))
	assert.False(t, tf.apply(Act(ActionToggle)))
}

func TestTextField_Render(t *testing.T) {
	type tc struct {
		label       string
		placeholder string
		text        string
		moveHome    bool
		focused     bool
		expected    string
	}

	tests := map[string]tc{
		"empty shows placeholder": {
			label: "Email", placeholder: "you@example.com",
			expected: "Email: [you@example.com]",
		},
		"empty focused marks start of placeholder": {
			label: "Email", placeholder: "you@example.com", focused: true,
			expected: "Email: [|you@example.com]",
		},
		"text padded to minimum width": {
			label: "Name", text: "ada",
			expected: "Name: [ada       ]",
		},
		"focused cursor at end": {
			label: "Name", text: "ada", focused: true,
			expected: "Name: [ada|      ]",
		},
		"focused cursor at home": {
			label: "Name", text: "ada", moveHome: true, focused: true,
			expected: "Name: [|ada      ]",
		},
		"no label": {
			text:     "x",
			expected: "[x         ]",
		},
		"wide runes count two columns": {
			label: "Name", text: "日本",
			expected: "Name: [日本      ]",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tf := NewTextField(tt.label, tt.placeholder)
			tf.SetText(tt.text)
			if tt.moveHome {
				tf.CursorHome()
			}
			assert.Equal(t, tt.expected, tf.Render(tt.focused))
		})
	}
}

func TestTextField_CursorBeyondPlaceholder(t *testing.T) {
	tf := NewTextField("Code", "ab")
	tf.SetText("abcdef")
	for i := 0; i < 6; i++ {
		tf.Backspace()
	}
	// Buffer is empty again; the marker must land inside the placeholder.
	assert.Equal(t, "Code: [|ab       ]", tf.Render(true))
}
