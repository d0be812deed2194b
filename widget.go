package tuikit

// Node is one element of a widget tree: *Label, *Button, *Checkbox, *Slider,
// *TextField or *Container. The set is closed; code that needs per-kind
// behaviour switches over these types.
type Node interface {
	isNode()
}

func (*Label) isNode()     {}
func (*Button) isNode()    {}
func (*Checkbox) isNode()  {}
func (*Slider) isNode()    {}
func (*TextField) isNode() {}
func (*Container) isNode() {}

// IsFocusable reports whether n can take keyboard focus. A Container is
// focusable when at least one of its descendants is.
func IsFocusable(n Node) bool {
	switch n := n.(type) {
	case *Button, *Checkbox, *Slider, *TextField:
		return true
	case *Container:
		return n.IsFocusable()
	}
	return false
}

// renderLeaf renders a leaf to a single line without focus marker or indent.
func renderLeaf(n Node, focused bool) string {
	switch n := n.(type) {
	case *Label:
		return n.Render()
	case *Button:
		return n.Render()
	case *Checkbox:
		return n.Render()
	case *Slider:
		return n.Render()
	case *TextField:
		return n.Render(focused)
	}
	return ""
}

// applyAction delivers a to leaf n. It reports whether the leaf understood
// the action; anything else is a silent no-op.
func applyAction(n Node, a Action) bool {
	switch n := n.(type) {
	case *Checkbox:
		if a.Kind == ActionToggle {
			n.Toggle()
			return true
		}
	case *Slider:
		switch a.Kind {
		case ActionIncrement:
			n.Increment()
			return true
		case ActionDecrement:
			n.Decrement()
			return true
		}
	case *TextField:
		return n.apply(a)
	}
	return false
}

// collectedValue returns the value a leaf contributes to the output.
// TextFields only contribute when withText is set.
func collectedValue(n Node, withText bool) (Value, bool) {
	switch n := n.(type) {
	case *Checkbox:
		return Value{Label: n.Label(), Kind: ValueBool, Bool: n.Checked()}, true
	case *Slider:
		return Value{Label: "Slider(" + n.Label() + ")", Kind: ValueInt, Int: n.Value()}, true
	case *TextField:
		if withText {
			return Value{Label: n.Label(), Kind: ValueText, Text: n.Text()}, true
		}
	}
	return Value{}, false
}
