package tuikit

import (
	"fmt"
	"strings"
)

// ActionKind is a semantic input event, independent of the key that
// produced it.
type ActionKind uint8

const (
	// ActionNone means the key had no meaning in the current context.
	ActionNone ActionKind = iota
	ActionToggle
	ActionIncrement
	ActionDecrement
	ActionInsertChar
	ActionDeleteBack
	ActionDeleteForward
	ActionCursorLeft
	ActionCursorRight
	ActionCursorHome
	ActionCursorEnd
	ActionAdvanceFocus
	ActionRetreatFocus
	ActionTerminate
)

var actionNames = [...]string{
	ActionNone:          "none",
	ActionToggle:        "toggle",
	ActionIncrement:     "increment",
	ActionDecrement:     "decrement",
	ActionInsertChar:    "insert_char",
	ActionDeleteBack:    "delete_back",
	ActionDeleteForward: "delete_forward",
	ActionCursorLeft:    "cursor_left",
	ActionCursorRight:   "cursor_right",
	ActionCursorHome:    "cursor_home",
	ActionCursorEnd:     "cursor_end",
	ActionAdvanceFocus:  "advance_focus",
	ActionRetreatFocus:  "retreat_focus",
	ActionTerminate:     "terminate",
}

func (k ActionKind) String() string {
	if int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("action(%d)", uint8(k))
}

// ParseActionKind resolves a name such as "advance_focus" (or
// "advance-focus") to its ActionKind.
func ParseActionKind(name string) (ActionKind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, n := range actionNames {
		if n == normalized {
			return ActionKind(i), nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// Action is a semantic event delivered to the focus manager or to the
// focused leaf. Rune is only meaningful for ActionInsertChar.
type Action struct {
	Kind ActionKind
	Rune rune
}

// Act builds an action of the given kind.
func Act(kind ActionKind) Action {
	return Action{Kind: kind}
}

// InsertChar builds the action that types r into a TextField.
func InsertChar(r rune) Action {
	return Action{Kind: ActionInsertChar, Rune: r}
}

func (a Action) String() string {
	if a.Kind == ActionInsertChar {
		return fmt.Sprintf("insert_char(%q)", a.Rune)
	}
	return a.Kind.String()
}
