// Package main provides the tuikit command: it runs widget forms described
// in YAML, or one of the built-in demos, and prints what the user selected.
//
// Usage:
//
//	tuikit run form.yaml        Run a form file
//	tuikit demo [name]          Run a built-in demo (basic, options, views, input)
//	tuikit keys                 Print the default key bindings
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	collectText bool
	keymapPath  string
	debugLog    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "tuikit",
		Short: "Interactive terminal forms",
		Long: `tuikit renders a tree of checkboxes, sliders, text fields and buttons in the
terminal and prints the selections when you press ESC.

Keys:
  TAB / Shift+TAB   move focus
  SPACE             toggle a checkbox
  + / -             step a slider
  typing            edit the focused text field
  ESC               finish`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&flags.collectText, "collect-text", false, "include text field contents in the output")
	root.PersistentFlags().StringVar(&flags.keymapPath, "keymap", "", "YAML file of key binding overrides")
	root.PersistentFlags().StringVar(&flags.debugLog, "debug-log", "", "append debug logs to this file")

	root.AddCommand(newRunCmd(flags), newDemoCmd(flags), newKeysCmd(flags))
	return root
}
