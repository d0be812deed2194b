package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newKeysCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the active key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := loadKeymap(nil, flags.keymapPath)
			if err != nil {
				return err
			}
			for _, line := range k.Bindings() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
