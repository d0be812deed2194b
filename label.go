package tuikit

// Label is static text. It never takes focus and never contributes a value.
type Label struct {
	text string
}

// NewLabel creates a label. Empty text is allowed and renders an empty line.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// Render returns the label text unchanged.
func (l *Label) Render() string {
	return l.text
}
