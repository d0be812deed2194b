package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-tuikit"
	"github.com/grindlemire/go-tuikit/internal/debug"
	"github.com/grindlemire/go-tuikit/internal/formfile"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run <form.yaml>",
		Short: "Run a form described in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := formfile.Load(args[0])
			if err != nil {
				return err
			}
			root, err := form.Build()
			if err != nil {
				return err
			}
			k, err := form.Keymap()
			if err != nil {
				return err
			}
			if form.CollectText {
				flags.collectText = true
			}
			return interact(cmd.OutOrStdout(), flags, root, k)
		},
	}
}

// appOptions layers the --keymap file over base (the defaults when nil) and
// returns the options for a single App.
func appOptions(flags *rootFlags, base *tuikit.Keymap) ([]tuikit.AppOption, error) {
	k, err := loadKeymap(base, flags.keymapPath)
	if err != nil {
		return nil, err
	}
	return []tuikit.AppOption{
		tuikit.WithKeymap(k),
		tuikit.WithCollectText(flags.collectText),
	}, nil
}

// loadKeymap merges the bindings in path into base. An empty path returns
// base unchanged.
func loadKeymap(base *tuikit.Keymap, path string) (*tuikit.Keymap, error) {
	if base == nil {
		base = tuikit.DefaultKeymap()
	}
	if path == "" {
		return base, nil
	}
	keys, err := formfile.LoadKeys(path)
	if err != nil {
		return nil, err
	}
	if err := base.Merge(keys); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return base, nil
}

// interact runs root on the process terminal and prints the result once the
// terminal has been restored.
func interact(out io.Writer, flags *rootFlags, root *tuikit.Container, base *tuikit.Keymap) error {
	opts, err := appOptions(flags, base)
	if err != nil {
		return err
	}

	if flags.debugLog != "" {
		if err := debug.Init(flags.debugLog); err != nil {
			return err
		}
		defer debug.Close()
	}

	backend := tuikit.NewANSIBackend(os.Stdin, os.Stdout)
	selected, err := tuikit.Run(root, backend, opts...)
	if err != nil {
		return err
	}

	// The screen still shows the last frame.
	_ = backend.Clear()
	_ = backend.Flush()

	printSelected(out, selected)
	return nil
}

func printSelected(out io.Writer, selected []string) {
	if len(selected) == 0 {
		fmt.Fprintln(out, "Nothing selected.")
		return
	}
	fmt.Fprintln(out, "Selected:")
	for _, s := range selected {
		fmt.Fprintf(out, "- %s\n", s)
	}
}
