package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the cached legendary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		if err := a.Selector.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset cache: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Legendary cache cleared.")
		return nil
	},
}
