package tuikit

// Checkbox is a labelled on/off switch. Space toggles it.
type Checkbox struct {
	label   string
	checked bool
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{label: label}
}

// NewCheckboxChecked creates a checkbox that starts checked.
func NewCheckboxChecked(label string) *Checkbox {
	return &Checkbox{label: label, checked: true}
}

func (c *Checkbox) Label() string {
	return c.label
}

func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetChecked sets the state directly. Only valid before the tree is run.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// Toggle flips the checked state.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
}

func (c *Checkbox) Render() string {
	if c.checked {
		return "[x] " + c.label
	}
	return "[ ] " + c.label
}
