// Package tuikit is a small terminal widget toolkit.
//
// An embedder builds a tree of widgets (Label, Button, Checkbox, Slider,
// TextField) grouped by nested Containers, hands the root to Run together
// with a Backend, and gets back the collected selections once the user
// presses the exit key:
//
//	root := tuikit.NewContainer("Flavours").Add(
//		tuikit.NewCheckbox("Vanilla"),
//		tuikit.NewCheckbox("Chocolate"),
//	)
//	backend := tuikit.NewANSIBackend(os.Stdin, os.Stdout)
//	selected, err := tuikit.Run(root, backend)
//
// The whole tree is re-rendered to text on every change. Focus moves through
// the focusable leaves of the tree in document order regardless of nesting.
package tuikit
