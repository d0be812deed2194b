package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tuikit"
)

// demos build the trees for the demo subcommand.
var demos = map[string]func() *tuikit.Container{
	"basic":   basicDemo,
	"options": optionsDemo,
	"views":   viewsDemo,
	"input":   inputDemo,
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newDemoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "demo [" + strings.Join(demoNames(), "|") + "]",
		Short:     "Run a built-in demo form",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: demoNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "views"
			if len(args) == 1 {
				name = args[0]
			}
			build, ok := demos[name]
			if !ok {
				return fmt.Errorf("unknown demo %q (available: %s)", name, strings.Join(demoNames(), ", "))
			}
			if name == "input" {
				flags.collectText = true
			}
			return interact(cmd.OutOrStdout(), flags, build(), nil)
		},
	}
}

func basicDemo() *tuikit.Container {
	return tuikit.NewContainer("Basic").Add(
		tuikit.NewLabel("Text Label"),
		tuikit.NewSlider("Slider", 0, 100, 50),
		tuikit.NewLabel("Checkboxes"),
		tuikit.NewCheckbox("Checkbox 1"),
		tuikit.NewCheckbox("Checkbox 2"),
		tuikit.NewCheckbox("Checkbox 3"),
		tuikit.NewButton("Submit"),
		tuikit.NewLabel("Press TAB to switch, SPACE to toggle, ESC to exit"),
	)
}

func optionsDemo() *tuikit.Container {
	return tuikit.NewContainer("Ice cream").Add(
		tuikit.NewLabel("Choose your ice cream flavours:"),
		tuikit.NewCheckbox("Vanilla"),
		tuikit.NewCheckbox("Chocolate"),
		tuikit.NewCheckbox("Strawberry"),
		tuikit.NewCheckbox("Mint"),
		tuikit.NewCheckbox("Cookie Dough"),
		tuikit.NewLabel("Press TAB to switch, SPACE to toggle, ESC to finish"),
	)
}

func viewsDemo() *tuikit.Container {
	level2 := tuikit.NewContainer("Level 2").Add(
		tuikit.NewCheckbox("Option 2"),
		tuikit.NewCheckbox("Action 2"),
		tuikit.NewSlider("Slider", 0, 100, 50),
	)
	level3 := tuikit.NewContainer("Level 3").Add(
		tuikit.NewLabel("Label"),
		tuikit.NewCheckbox("Option 3"),
		tuikit.NewSlider("Slider", 0, 100, 50),
		tuikit.NewCheckbox("Action 3"),
	)
	return tuikit.NewContainer("Level 1").Add(
		tuikit.NewCheckbox("Option 1"),
		tuikit.NewCheckbox("Action 1"),
		level2,
		level3,
	)
}

func inputDemo() *tuikit.Container {
	return tuikit.NewContainer("User Information").Add(
		tuikit.NewTextField("Username", "Enter your name"),
		tuikit.NewTextField("Email", "you@example.com"),
	)
}
