package tuikit

import "strconv"

// ValueKind identifies which field of a Value is set.
type ValueKind uint8

const (
	ValueBool ValueKind = iota
	ValueInt
	ValueText
)

// Value is what a leaf reports when the interaction ends: a Checkbox's state,
// a Slider's position, or a TextField's text.
type Value struct {
	Label string
	Kind  ValueKind
	Bool  bool
	Int   int
	Text  string
}

func (v Value) String() string {
	switch v.Kind {
	case ValueBool:
		return v.Label + "=" + strconv.FormatBool(v.Bool)
	case ValueInt:
		return v.Label + "=" + strconv.Itoa(v.Int)
	}
	return v.Label + "=" + strconv.Quote(v.Text)
}

// selected filters values down to the run loop's output: labels of checked
// checkboxes and, when present, the non-empty text of text fields. Slider
// values never appear.
func selected(values []Value) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		switch {
		case v.Kind == ValueBool && v.Bool:
			out = append(out, v.Label)
		case v.Kind == ValueText && v.Text != "":
			out = append(out, v.Text)
		}
	}
	return out
}
