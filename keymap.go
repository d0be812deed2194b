package tuikit

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Binding identifies a key combination in the form the parser produces.
// Printable characters use Key == KeyRune and carry the rune; Ctrl+letter
// combinations use the dedicated KeyCtrlA..KeyCtrlZ keys.
type Binding struct {
	Key  Key
	Rune rune
	Mod  Modifier
}

// bindingOf normalizes an event into a map key.
func bindingOf(ev KeyEvent) Binding {
	b := Binding{Key: ev.Key, Mod: ev.Mod}
	if ev.Key == KeyRune {
		b.Rune = ev.Rune
	}
	return b
}

var bindingKeyNames = map[string]Key{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"insert":    KeyInsert,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pgup":      KeyPageUp,
	"pageup":    KeyPageUp,
	"pgdown":    KeyPageDown,
	"pagedown":  KeyPageDown,
}

// ParseBinding parses strings such as "tab", "shift+tab", "ctrl+c", "space",
// "+" or "alt+x". Names are case-insensitive except for single characters.
func ParseBinding(s string) (Binding, error) {
	if s == "" {
		return Binding{}, fmt.Errorf("empty key binding")
	}

	var mods []string
	key := s
	// A trailing "+" is the plus key itself, as in "+" or "alt++".
	if strings.HasSuffix(s, "+") {
		key = "+"
		if prefix := strings.TrimSuffix(s, "+"); prefix != "" {
			mods = strings.Split(strings.TrimSuffix(prefix, "+"), "+")
		}
	} else if parts := strings.Split(s, "+"); len(parts) > 1 {
		mods, key = parts[:len(parts)-1], parts[len(parts)-1]
	}

	var b Binding
	for _, m := range mods {
		switch strings.ToLower(m) {
		case "ctrl", "control":
			b.Mod |= ModCtrl
		case "alt", "meta":
			b.Mod |= ModAlt
		case "shift":
			b.Mod |= ModShift
		default:
			return Binding{}, fmt.Errorf("unknown modifier %q in %q", m, s)
		}
	}

	lower := strings.ToLower(key)
	switch {
	case lower == "space":
		b.Key, b.Rune = KeyRune, ' '
	case bindingKeyNames[lower] != KeyNone:
		b.Key = bindingKeyNames[lower]
	case len(lower) >= 2 && lower[0] == 'f' && parseFunctionKey(lower[1:]) != KeyNone:
		b.Key = parseFunctionKey(lower[1:])
	case utf8.RuneCountInString(key) == 1:
		r, _ := utf8.DecodeRuneInString(key)
		b.Key, b.Rune = KeyRune, r
	default:
		return Binding{}, fmt.Errorf("unknown key %q in %q", key, s)
	}

	// The parser reports Ctrl+letter as its own key without a modifier.
	if b.Mod.Has(ModCtrl) && b.Key == KeyRune {
		if b.Rune == ' ' {
			return Binding{Key: KeyCtrlSpace, Mod: b.Mod &^ ModCtrl}, nil
		}
		if ck := ctrlKey(b.Rune); ck != KeyNone {
			b.Key, b.Rune = ck, 0
			b.Mod &^= ModCtrl
		}
	}
	return b, nil
}

func parseFunctionKey(digits string) Key {
	n := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			return KeyNone
		}
		n = n*10 + int(r-'0')
	}
	return functionKey(n)
}

// String renders the binding in the notation ParseBinding accepts.
func (b Binding) String() string {
	var parts []string
	if b.Mod.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if b.Mod.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if b.Mod.Has(ModShift) {
		parts = append(parts, "shift")
	}

	switch {
	case b.Key == KeyRune && b.Rune == ' ':
		parts = append(parts, "space")
	case b.Key == KeyRune:
		parts = append(parts, string(b.Rune))
	case b.Key >= KeyCtrlA && b.Key <= KeyCtrlZ:
		parts = append(parts, "ctrl", string(rune('a'+int(b.Key-KeyCtrlA))))
	case b.Key == KeyEscape:
		parts = append(parts, "esc")
	default:
		parts = append(parts, strings.ToLower(b.Key.String()))
	}
	return strings.Join(parts, "+")
}

// Keymap translates key events into semantic actions.
type Keymap struct {
	bindings map[Binding]ActionKind
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[Binding]ActionKind)}
}

// DefaultKeymap returns the standard bindings: tab / shift+tab move focus,
// space toggles, + and - step sliders, esc and ctrl+c exit.
func DefaultKeymap() *Keymap {
	k := NewKeymap()
	k.Bind(Binding{Key: KeyTab}, ActionAdvanceFocus)
	k.Bind(Binding{Key: KeyTab, Mod: ModShift}, ActionRetreatFocus)
	k.Bind(Binding{Key: KeyRune, Rune: ' '}, ActionToggle)
	k.Bind(Binding{Key: KeyRune, Rune: '+'}, ActionIncrement)
	k.Bind(Binding{Key: KeyRune, Rune: '-'}, ActionDecrement)
	k.Bind(Binding{Key: KeyEscape}, ActionTerminate)
	k.Bind(Binding{Key: KeyCtrlC}, ActionTerminate)
	return k
}

// Bind maps b to kind, replacing any earlier mapping. Binding ActionNone
// removes the mapping.
func (k *Keymap) Bind(b Binding, kind ActionKind) {
	if kind == ActionNone {
		delete(k.bindings, b)
		return
	}
	k.bindings[b] = kind
}

// Lookup returns the action bound to b.
func (k *Keymap) Lookup(b Binding) (ActionKind, bool) {
	kind, ok := k.bindings[b]
	return kind, ok
}

// Merge applies a table of binding string -> action name, as loaded from a
// configuration file. Every entry is validated before any is applied.
func (k *Keymap) Merge(table map[string]string) error {
	parsed := make(map[Binding]ActionKind, len(table))
	for key, name := range table {
		b, err := ParseBinding(key)
		if err != nil {
			return err
		}
		kind, err := ParseActionKind(name)
		if err != nil {
			return fmt.Errorf("binding %q: %w", key, err)
		}
		parsed[b] = kind
	}
	for b, kind := range parsed {
		k.Bind(b, kind)
	}
	return nil
}

// Bindings lists the bindings in a stable order, for help output.
func (k *Keymap) Bindings() []string {
	out := make([]string, 0, len(k.bindings))
	for b, kind := range k.bindings {
		out = append(out, b.String()+" = "+kind.String())
	}
	sort.Strings(out)
	return out
}

// textEditKeys are the special keys a focused TextField consumes.
var textEditKeys = map[Key]ActionKind{
	KeyBackspace: ActionDeleteBack,
	KeyDelete:    ActionDeleteForward,
	KeyLeft:      ActionCursorLeft,
	KeyRight:     ActionCursorRight,
	KeyHome:      ActionCursorHome,
	KeyEnd:       ActionCursorEnd,
}

// Translate maps a key event to an action. Only presses translate. When a
// TextField has focus, unmodified printable characters become InsertChar and
// editing keys become cursor actions before the keymap is consulted, so
// space, + and - type into the field instead of toggling or stepping.
func (k *Keymap) Translate(ev KeyEvent, textFocused bool) Action {
	if ev.Kind != KeyPress {
		return Action{}
	}

	if textFocused && ev.Mod&(ModCtrl|ModAlt) == 0 {
		if ev.Key == KeyRune {
			return InsertChar(ev.Rune)
		}
		if kind, ok := textEditKeys[ev.Key]; ok {
			return Action{Kind: kind}
		}
	}

	if kind, ok := k.bindings[bindingOf(ev)]; ok {
		return Action{Kind: kind}
	}
	return Action{}
}
