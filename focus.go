package tuikit

import "github.com/grindlemire/go-tuikit/internal/debug"

// FocusManager tracks which focusable leaf of a tree has keyboard focus.
// The index is a position in root.FlattenFocusable(); it is not stored on any
// node. The total is recomputed on every move, which is exact because the
// tree is frozen while an App runs.
type FocusManager struct {
	root    *Container
	current int
}

// NewFocusManager focuses the first focusable leaf of root, if any.
func NewFocusManager(root *Container) *FocusManager {
	return &FocusManager{root: root}
}

// Index returns the focus position. It is only meaningful when Total() > 0.
func (f *FocusManager) Index() int {
	return f.current
}

// Total returns the number of focusable leaves in the tree.
func (f *FocusManager) Total() int {
	if f.root == nil {
		return 0
	}
	return f.root.FocusableCount()
}

// Focused returns the focused leaf, or nil if the tree has no focusable
// leaves.
func (f *FocusManager) Focused() Node {
	if f.root == nil {
		return nil
	}
	leaves := f.root.FlattenFocusable()
	if f.current < 0 || f.current >= len(leaves) {
		return nil
	}
	return leaves[f.current]
}

// Next moves focus to the following leaf, wrapping to the first.
// Returns false (and does nothing) when nothing is focusable.
func (f *FocusManager) Next() bool {
	total := f.Total()
	if total == 0 {
		return false
	}
	f.current = (f.current + 1) % total
	debug.Log("FocusManager.Next: index=%d total=%d", f.current, total)
	return true
}

// Prev moves focus to the preceding leaf, wrapping to the last.
// Returns false (and does nothing) when nothing is focusable.
func (f *FocusManager) Prev() bool {
	total := f.Total()
	if total == 0 {
		return false
	}
	f.current = (f.current + total - 1) % total
	debug.Log("FocusManager.Prev: index=%d total=%d", f.current, total)
	return true
}
