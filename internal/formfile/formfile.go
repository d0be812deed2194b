package formfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-tuikit"
)

// Form is the top-level document.
type Form struct {
	Title       string            `yaml:"title"`
	CollectText bool              `yaml:"collect_text"`
	Keys        map[string]string `yaml:"keys"`
	Children    []Node            `yaml:"children"`
}

// Node describes one widget. Exactly one of the kind fields must be set.
type Node struct {
	Container *string `yaml:"container"`
	Label     *string `yaml:"label"`
	Button    *string `yaml:"button"`
	Checkbox  *string `yaml:"checkbox"`
	Slider    *string `yaml:"slider"`
	TextField *string `yaml:"textfield"`

	Checked     bool   `yaml:"checked"`
	Min         int    `yaml:"min"`
	Max         int    `yaml:"max"`
	Value       *int   `yaml:"value"`
	Placeholder string `yaml:"placeholder"`
	Text        string `yaml:"text"`
	Children    []Node `yaml:"children"`
}

// Load reads and parses a form file.
func Load(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form: %w", err)
	}
	form, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return form, nil
}

// Parse decodes a form document. Unknown fields are rejected.
func Parse(data []byte) (*Form, error) {
	var form Form
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&form); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty form document")
		}
		return nil, fmt.Errorf("invalid form: %w", err)
	}
	return &form, nil
}

// LoadKeys reads a standalone key binding file: a YAML mapping of binding to
// action name, the same shape as a form's keys section.
func LoadKeys(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keymap: %w", err)
	}
	keys := map[string]string{}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("invalid keymap %s: %w", path, err)
	}
	return keys, nil
}

// Build constructs the widget tree. The form title becomes the root header.
func (f *Form) Build() (*tuikit.Container, error) {
	root := tuikit.NewContainer(f.Title)
	for i, n := range f.Children {
		node, err := n.build()
		if err != nil {
			return nil, fmt.Errorf("children[%d]: %w", i, err)
		}
		root.Add(node)
	}
	return root, nil
}

// Keymap returns the default keymap with the form's overrides applied.
func (f *Form) Keymap() (*tuikit.Keymap, error) {
	k := tuikit.DefaultKeymap()
	if err := k.Merge(f.Keys); err != nil {
		return nil, fmt.Errorf("invalid keys: %w", err)
	}
	return k, nil
}

// Options converts the form settings into App options.
func (f *Form) Options() ([]tuikit.AppOption, error) {
	k, err := f.Keymap()
	if err != nil {
		return nil, err
	}
	return []tuikit.AppOption{
		tuikit.WithKeymap(k),
		tuikit.WithCollectText(f.CollectText),
	}, nil
}

func (n Node) kinds() int {
	count := 0
	for _, p := range []*string{n.Container, n.Label, n.Button, n.Checkbox, n.Slider, n.TextField} {
		if p != nil {
			count++
		}
	}
	return count
}

func (n Node) build() (tuikit.Node, error) {
	switch n.kinds() {
	case 0:
		return nil, errors.New("node has no kind (container, label, button, checkbox, slider, textfield)")
	case 1:
	default:
		return nil, errors.New("node has more than one kind")
	}
	if n.Container == nil && len(n.Children) > 0 {
		return nil, errors.New("only containers may have children")
	}

	switch {
	case n.Container != nil:
		c := tuikit.NewContainer(*n.Container)
		for i, child := range n.Children {
			node, err := child.build()
			if err != nil {
				return nil, fmt.Errorf("%s.children[%d]: %w", *n.Container, i, err)
			}
			c.Add(node)
		}
		return c, nil
	case n.Label != nil:
		return tuikit.NewLabel(*n.Label), nil
	case n.Button != nil:
		return tuikit.NewButton(*n.Button), nil
	case n.Checkbox != nil:
		cb := tuikit.NewCheckbox(*n.Checkbox)
		cb.SetChecked(n.Checked)
		return cb, nil
	case n.Slider != nil:
		if n.Min > n.Max {
			return nil, fmt.Errorf("slider %q: min %d is greater than max %d", *n.Slider, n.Min, n.Max)
		}
		value := n.Min
		if n.Value != nil {
			value = *n.Value
		}
		if value < n.Min || value > n.Max {
			return nil, fmt.Errorf("slider %q: value %d outside [%d, %d]", *n.Slider, value, n.Min, n.Max)
		}
		return tuikit.NewSlider(*n.Slider, n.Min, n.Max, value), nil
	default:
		tf := tuikit.NewTextField(*n.TextField, n.Placeholder)
		if n.Text != "" {
			tf.SetText(n.Text)
		}
		return tf, nil
	}
}
