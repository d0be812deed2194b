package tuikit

import "unicode/utf8"

// parseInput parses buffered bytes into events.
// Handles:
// - Single printable characters -> KeyEvent{Key: KeyRune, Rune: r}
// - Control characters (0x00-0x1F) -> appropriate KeyEvent
// - CSI sequences (\x1b[...) -> Arrow keys, function keys with modifiers
// - SS3 sequences (\x1bO...) -> Some function keys
// - Alt+key: \x1b + printable -> KeyRune with ModAlt
func parseInput(data []byte) []Event {
	events, _ := parseInputWithRemainder(data)
	return events
}

// parseInputWithRemainder parses input and returns any incomplete trailing
// bytes: a cut-off UTF-8 sequence or an unterminated CSI sequence. The caller
// prepends them to the next read.
func parseInputWithRemainder(data []byte) ([]Event, []byte) {
	var events []Event
	i := 0

	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				// Lone escape at end - treat as escape key
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}

			next := data[i+1]
			switch next {
			case '[':
				key, mod, consumed := parseCSISequence(data[i:])
				if consumed > 0 {
					if key != KeyNone {
						events = append(events, KeyEvent{Key: key, Mod: mod})
					}
					i += consumed
					continue
				}
				if consumed < 0 {
					return events, data[i:]
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue

			case 'O':
				if i+2 >= len(data) {
					return events, data[i:]
				}
				if key := parseSS3(data[i+2]); key != KeyNone {
					events = append(events, KeyEvent{Key: key})
					i += 3
					continue
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue

			default:
				// Alt+key combination
				if next >= 0x20 && next < 0x7f {
					events = append(events, KeyEvent{Key: KeyRune, Rune: rune(next), Mod: ModAlt})
					i += 2
					continue
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}
		}

		if b < 0x20 {
			events = append(events, KeyEvent{Key: controlToKey(b)})
			i++
			continue
		}

		// DEL character (0x7F) is backspace on most terminals
		if b == 0x7f {
			events = append(events, KeyEvent{Key: KeyBackspace})
			i++
			continue
		}

		if !utf8.FullRune(data[i:]) {
			return events, data[i:]
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8, skip byte
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	return events, nil
}

// controlToKey converts a control character (0x00-0x1F) to a Key.
func controlToKey(b byte) Key {
	switch b {
	case 0x00:
		return KeyCtrlSpace
	case 0x08: // Ctrl+H (backspace on some terminals)
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0d:
		return KeyEnter
	case 0x1b:
		return KeyEscape
	}
	if b >= 0x01 && b <= 0x1a {
		return ctrlKey(rune('a' + b - 1))
	}
	return KeyNone
}

// parseCSISequence parses a CSI escape sequence starting at data[0].
// Returns the key, modifier, and number of bytes consumed. consumed is 0 for
// a malformed sequence and -1 when data ends before the final byte.
func parseCSISequence(data []byte) (Key, Modifier, int) {
	if len(data) < 2 || data[0] != 0x1b || data[1] != '[' {
		return KeyNone, ModNone, 0
	}

	var params []int
	currentParam := 0
	hasParam := false

	for i := 2; i < len(data); i++ {
		b := data[i]

		switch {
		case b >= '0' && b <= '9':
			currentParam = currentParam*10 + int(b-'0')
			hasParam = true
		case b == ';':
			params = append(params, currentParam)
			currentParam = 0
			hasParam = false
		case b >= 0x40 && b <= 0x7e:
			if hasParam {
				params = append(params, currentParam)
			}
			key, mod := parseCSI(params, b)
			return key, mod, i + 1
		default:
			return KeyNone, ModNone, 0
		}
	}

	return KeyNone, ModNone, -1
}

// parseCSI parses a complete CSI sequence given parameters and final byte.
func parseCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone

	// xterm-style: CSI 1;mod X
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case 'A':
		return KeyUp, mod
	case 'B':
		return KeyDown, mod
	case 'C':
		return KeyRight, mod
	case 'D':
		return KeyLeft, mod
	case 'H':
		return KeyHome, mod
	case 'F':
		return KeyEnd, mod
	case 'P', 'Q', 'R', 'S':
		return functionKey(int(final-'P') + 1), mod
	case 'Z':
		// Backtab (Shift+Tab)
		return KeyTab, ModShift
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		return tildeKey(params[0]), mod
	}

	return KeyNone, ModNone
}

// tildeKey maps the first parameter of a CSI n ~ sequence.
func tildeKey(n int) Key {
	switch n {
	case 1, 7:
		return KeyHome
	case 2:
		return KeyInsert
	case 3:
		return KeyDelete
	case 4, 8:
		return KeyEnd
	case 5:
		return KeyPageUp
	case 6:
		return KeyPageDown
	case 11, 12, 13, 14, 15:
		return functionKey(n - 10)
	case 17, 18, 19, 20, 21:
		return functionKey(n - 11)
	case 23, 24:
		return functionKey(n - 12)
	}
	return KeyNone
}

// parseSS3 parses an SS3 function key sequence.
func parseSS3(b byte) Key {
	switch b {
	case 'P', 'Q', 'R', 'S':
		return functionKey(int(b-'P') + 1)
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyNone
}

// decodeModifier decodes the xterm modifier parameter.
// The parameter is encoded as: 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0)
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}

	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}
