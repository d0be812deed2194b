package tuikit

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// buttonMinWidth is the minimum number of columns between the brackets.
const buttonMinWidth = 4

// Button is a focusable caption. Pressing it has no effect beyond focus.
type Button struct {
	caption string
}

func NewButton(caption string) *Button {
	return &Button{caption: caption}
}

// Caption returns the button text.
func (b *Button) Caption() string {
	return b.caption
}

// Render draws the caption between angle brackets, centred in at least
// buttonMinWidth columns.
func (b *Button) Render() string {
	w := runewidth.StringWidth(b.caption)
	pad := max(buttonMinWidth-w, 0)
	left := pad / 2
	return "< " + strings.Repeat(" ", left) + b.caption + strings.Repeat(" ", pad-left) + " >"
}
