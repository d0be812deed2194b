package tuikit

import (
	"strings"

	"github.com/grindlemire/go-tuikit/internal/debug"
)

// IndentStep is the number of columns each nesting level is indented by.
const IndentStep = 2

// Container is an ordered group of child nodes, leaves or other Containers.
// A Container owns its children: a node must be added to at most one
// Container, and once the tree is handed to an App its structure is frozen.
type Container struct {
	label    string
	children []Node
	frozen   bool
}

// NewContainer creates an empty container with a header label.
func NewContainer(label string) *Container {
	return &Container{label: label}
}

func (c *Container) Label() string {
	return c.label
}

// Children returns a copy of the child list.
func (c *Container) Children() []Node {
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

// Add appends nodes in order and returns c for chaining. Nil nodes, nodes
// that would create a cycle, and additions to a frozen tree are ignored.
func (c *Container) Add(nodes ...Node) *Container {
	for _, n := range nodes {
		if isNilNode(n) {
			continue
		}
		if c.frozen {
			debug.Log("Container.Add: %q is frozen, ignoring %T", c.label, n)
			continue
		}
		if sub, ok := n.(*Container); ok && sub.contains(c) {
			debug.Log("Container.Add: adding %q to %q would create a cycle", sub.label, c.label)
			continue
		}
		c.children = append(c.children, n)
	}
	return c
}

// isNilNode catches typed nil pointers stored in the interface.
func isNilNode(n Node) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Label:
		return n == nil
	case *Button:
		return n == nil
	case *Checkbox:
		return n == nil
	case *Slider:
		return n == nil
	case *TextField:
		return n == nil
	case *Container:
		return n == nil
	}
	return false
}

// contains reports whether target is c or one of its descendants.
func (c *Container) contains(target *Container) bool {
	if c == target {
		return true
	}
	for _, child := range c.children {
		if sub, ok := child.(*Container); ok && sub.contains(target) {
			return true
		}
	}
	return false
}

// freeze marks the whole subtree immutable.
func (c *Container) freeze() {
	c.frozen = true
	for _, child := range c.children {
		if sub, ok := child.(*Container); ok {
			sub.freeze()
		}
	}
}

// FlattenFocusable returns the focusable leaves of the tree in document
// order: depth-first, left to right. Nested containers are transparent and
// contribute their leaves, never themselves.
func (c *Container) FlattenFocusable() []Node {
	return c.appendFocusable(nil)
}

func (c *Container) appendFocusable(out []Node) []Node {
	for _, child := range c.children {
		switch n := child.(type) {
		case *Container:
			out = n.appendFocusable(out)
		default:
			if IsFocusable(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// FocusableCount returns len(FlattenFocusable()) without allocating.
func (c *Container) FocusableCount() int {
	count := 0
	for _, child := range c.children {
		switch n := child.(type) {
		case *Container:
			count += n.FocusableCount()
		default:
			if IsFocusable(n) {
				count++
			}
		}
	}
	return count
}

// IsFocusable reports whether any descendant can take focus.
func (c *Container) IsFocusable() bool {
	for _, child := range c.children {
		if IsFocusable(child) {
			return true
		}
	}
	return false
}

// Render emits the container header at indent and every child at
// indent+IndentStep. counter is the running index of focusable leaves seen so
// far across the whole tree; the leaf whose index equals focusIndex is drawn
// with the focus marker. Passing a nil counter starts from zero.
func (c *Container) Render(indent, focusIndex int, counter *int) []string {
	if counter == nil {
		counter = new(int)
	}

	lines := []string{strings.Repeat(" ", indent) + "=== " + c.label + " ==="}
	childIndent := indent + IndentStep
	pad := strings.Repeat(" ", childIndent)

	for _, child := range c.children {
		if sub, ok := child.(*Container); ok {
			lines = append(lines, sub.Render(childIndent, focusIndex, counter)...)
			continue
		}

		marker := " "
		focused := false
		if IsFocusable(child) {
			focused = *counter == focusIndex
			*counter++
		}
		if focused {
			marker = ">"
		}
		lines = append(lines, pad+marker+renderLeaf(child, focused))
	}
	return lines
}

// Values collects every leaf's value in document order, descending into
// nested containers the same way FlattenFocusable does.
func (c *Container) Values(withText bool) []Value {
	return c.appendValues(nil, withText)
}

func (c *Container) appendValues(out []Value, withText bool) []Value {
	for _, child := range c.children {
		if sub, ok := child.(*Container); ok {
			out = sub.appendValues(out, withText)
			continue
		}
		if v, ok := collectedValue(child, withText); ok {
			out = append(out, v)
		}
	}
	return out
}
