package tuikit

// RenderLines renders the whole tree with the focus marker on the leaf at
// focusIndex. Lines are not wrapped or truncated.
func RenderLines(root *Container, focusIndex int) []string {
	if root == nil {
		return nil
	}
	counter := 0
	return root.Render(0, focusIndex, &counter)
}
