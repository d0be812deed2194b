package tuikit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusManager_NoFocusableLeaves(t *testing.T) {
	type tc struct {
		root *Container
	}

	tests := map[string]tc{
		"nil root":    {root: nil},
		"empty root":  {root: NewContainer("r")},
		"labels only": {root: NewContainer("r").Add(NewLabel("a"), NewContainer("s").Add(NewLabel("b")))},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := NewFocusManager(tt.root)
			assert.False(t, f.Next())
			assert.False(t, f.Prev())
			assert.Equal(t, 0, f.Index())
			assert.Equal(t, 0, f.Total())
			assert.Nil(t, f.Focused())
		})
	}
}

func TestFocusManager_Cycles(t *testing.T) {
	leaves := []Node{NewCheckbox("a"), NewButton("b"), NewSlider("c", 0, 1, 0)}
	root := NewContainer("r").Add(leaves[0], NewLabel("skip"), NewContainer("s").Add(leaves[1], leaves[2]))

	type tc struct {
		moves    func(f *FocusManager)
		expected int
	}

	tests := map[string]tc{
		"starts at first leaf": {
			moves:    func(f *FocusManager) {},
			expected: 0,
		},
		"next": {
			moves:    func(f *FocusManager) { f.Next() },
			expected: 1,
		},
		"next wraps": {
			moves:    func(f *FocusManager) { f.Next(); f.Next(); f.Next() },
			expected: 0,
		},
		"prev wraps to last": {
			moves:    func(f *FocusManager) { f.Prev() },
			expected: 2,
		},
		"next then prev": {
			moves:    func(f *FocusManager) { f.Next(); f.Prev() },
			expected: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := NewFocusManager(root)
			tt.moves(f)
			assert.Equal(t, tt.expected, f.Index())
			assert.Same(t, leaves[tt.expected], f.Focused())
		})
	}
}

func TestFocusManager_FullCycleReturnsHome(t *testing.T) {
	root := NewContainer("r")
	for i := 0; i < 7; i++ {
		root.Add(NewCheckbox("x"))
	}

	for start := 0; start < 7; start++ {
		f := NewFocusManager(root)
		for i := 0; i < start; i++ {
			f.Next()
		}
		for i := 0; i < 7; i++ {
			assert.True(t, f.Next())
		}
		assert.Equal(t, start, f.Index())
		for i := 0; i < 7; i++ {
			assert.True(t, f.Prev())
		}
		assert.Equal(t, start, f.Index())
	}
}

func TestFocusManager_SingleLeaf(t *testing.T) {
	root := NewContainer("r").Add(NewLabel("x"), NewButton("only"))
	f := NewFocusManager(root)

	assert.True(t, f.Next())
	assert.Equal(t, 0, f.Index())
	assert.True(t, f.Prev())
	assert.Equal(t, 0, f.Index())
}
