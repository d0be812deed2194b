package tuikit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_String(t *testing.T) {
	type tc struct {
		key      Key
		expected string
	}

	tests := map[string]tc{
		"none":       {key: KeyNone, expected: "None"},
		"escape":     {key: KeyEscape, expected: "Escape"},
		"tab":        {key: KeyTab, expected: "Tab"},
		"f1":         {key: KeyF1, expected: "F1"},
		"f12":        {key: KeyF12, expected: "F12"},
		"ctrl+a":     {key: KeyCtrlA, expected: "Ctrl+A"},
		"ctrl+z":     {key: KeyCtrlZ, expected: "Ctrl+Z"},
		"ctrl+space": {key: KeyCtrlSpace, expected: "Ctrl+Space"},
		"unknown":    {key: Key(999), expected: "Unknown"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.key.String())
		})
	}
}

func TestCtrlKey(t *testing.T) {
	type tc struct {
		letter   rune
		expected Key
	}

	tests := map[string]tc{
		"lower a":   {letter: 'a', expected: KeyCtrlA},
		"lower c":   {letter: 'c', expected: KeyCtrlC},
		"upper Z":   {letter: 'Z', expected: KeyCtrlZ},
		"digit":     {letter: '1', expected: KeyNone},
		"non-ascii": {letter: 'é', expected: KeyNone},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ctrlKey(tt.letter))
		})
	}
}

func TestModifier_String(t *testing.T) {
	type tc struct {
		mod      Modifier
		expected string
	}

	tests := map[string]tc{
		"none":      {mod: ModNone, expected: "None"},
		"ctrl":      {mod: ModCtrl, expected: "Ctrl"},
		"alt+shift": {mod: ModAlt | ModShift, expected: "Alt+Shift"},
		"all":       {mod: ModCtrl | ModAlt | ModShift, expected: "Ctrl+Alt+Shift"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mod.String())
		})
	}
}

func TestKeyEvent_Is(t *testing.T) {
	type tc struct {
		event    KeyEvent
		key      Key
		mods     []Modifier
		expected bool
	}

	tests := map[string]tc{
		"matching key, no mods requested": {event: Press(KeyTab, ModShift), key: KeyTab, expected: true},
		"matching key and mods":           {event: Press(KeyTab, ModShift), key: KeyTab, mods: []Modifier{ModShift}, expected: true},
		"mods differ":                     {event: Press(KeyTab), key: KeyTab, mods: []Modifier{ModShift}, expected: false},
		"key differs":                     {event: Press(KeyEnter), key: KeyTab, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Is(tt.key, tt.mods...))
		})
	}
}

func TestKeyEvent_Accessors(t *testing.T) {
	ev := PressRune('q')
	assert.True(t, ev.IsRune())
	assert.True(t, ev.IsPress())
	assert.Equal(t, 'q', ev.Char())
	assert.Equal(t, "q", ev.String())

	rel := Release(KeyEnter)
	assert.False(t, rel.IsPress())
	assert.Equal(t, rune(0), rel.Char())
	assert.Equal(t, "enter (release)", describeEvent(rel))

	assert.Equal(t, "shift+tab", Press(KeyTab, ModShift).String())
	assert.Equal(t, "resize 80x24", describeEvent(ResizeEvent{Width: 80, Height: 24}))
}
