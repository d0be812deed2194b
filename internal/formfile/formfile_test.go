package formfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-tuikit"
)

const sampleForm = `
title: Preferences
collect_text: true
keys:
  j: advance_focus
  enter: toggle
children:
  - label: Pick some options
  - checkbox: Dark mode
    checked: true
  - container: Audio
    children:
      - slider: Volume
        min: 0
        max: 10
        value: 7
      - checkbox: Mute
  - textfield: Nickname
    placeholder: optional
  - button: Save
`

func TestParseAndBuild(t *testing.T) {
	form, err := Parse([]byte(sampleForm))
	require.NoError(t, err)
	assert.Equal(t, "Preferences", form.Title)
	assert.True(t, form.CollectText)
	assert.Equal(t, map[string]string{"j": "advance_focus", "enter": "toggle"}, form.Keys)

	root, err := form.Build()
	require.NoError(t, err)
	assert.Equal(t, "Preferences", root.Label())
	assert.Equal(t, 5, root.FocusableCount())

	assert.Equal(t, []string{
		"=== Preferences ===",
		"   Pick some options",
		"  >[x] Dark mode",
		"  === Audio ===",
		"     Volume [0 ────┼─── 10]: 7",
		"     [ ] Mute",
		"   Nickname: [optional  ]",
		"   < Save >",
	}, tuikit.RenderLines(root, 0))
}

func TestForm_Options(t *testing.T) {
	form, err := Parse([]byte(sampleForm))
	require.NoError(t, err)
	root, err := form.Build()
	require.NoError(t, err)
	opts, err := form.Options()
	require.NoError(t, err)

	backend := tuikit.NewMockBackend(
		tuikit.PressRune('j'),
		tuikit.PressRune('j'),
		tuikit.Press(tuikit.KeyEnter),
		tuikit.Press(tuikit.KeyEscape),
	)
	out, err := tuikit.Run(root, backend, opts...)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dark mode", "Mute"}, out)
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		doc string
	}

	tests := map[string]tc{
		"empty document": {doc: ""},
		"unknown field":  {doc: "title: x\ncolour: red\n"},
		"malformed yaml": {doc: "children: [\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	type tc struct {
		doc     string
		wantErr string
	}

	tests := map[string]tc{
		"node without kind": {
			doc:     "children:\n  - checked: true\n",
			wantErr: "node has no kind",
		},
		"node with two kinds": {
			doc:     "children:\n  - label: a\n    button: b\n",
			wantErr: "more than one kind",
		},
		"children on a leaf": {
			doc:     "children:\n  - checkbox: a\n    children:\n      - label: b\n",
			wantErr: "only containers may have children",
		},
		"inverted slider": {
			doc:     "children:\n  - slider: s\n    min: 5\n    max: 1\n",
			wantErr: "min 5 is greater than max 1",
		},
		"slider value out of range": {
			doc:     "children:\n  - slider: s\n    min: 0\n    max: 3\n    value: 9\n",
			wantErr: "value 9 outside [0, 3]",
		},
		"nested error carries path": {
			doc:     "children:\n  - container: outer\n    children:\n      - {}\n",
			wantErr: "children[0]: outer.children[0]: node has no kind",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			form, err := Parse([]byte(tt.doc))
			require.NoError(t, err)
			_, err = form.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestForm_InvalidKeys(t *testing.T) {
	form, err := Parse([]byte("keys:\n  hyper+j: toggle\n"))
	require.NoError(t, err)

	_, err = form.Options()
	assert.ErrorContains(t, err, "invalid keys")
}

func TestLoadAndLoadKeys(t *testing.T) {
	dir := t.TempDir()
	formPath := filepath.Join(dir, "form.yaml")
	keysPath := filepath.Join(dir, "keys.yaml")
	require.NoError(t, os.WriteFile(formPath, []byte(sampleForm), 0o644))
	require.NoError(t, os.WriteFile(keysPath, []byte("q: terminate\nshift+tab: retreat_focus\n"), 0o644))

	form, err := Load(formPath)
	require.NoError(t, err)
	assert.Len(t, form.Children, 5)

	keys, err := LoadKeys(keysPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"q": "terminate", "shift+tab": "retreat_focus"}, keys)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read form")

	_, err = LoadKeys(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read keymap")
}
