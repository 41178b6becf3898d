package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/sdui/pkg/registry"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the registered component kinds",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, kind := range registry.Default().Kinds() {
			fmt.Fprintln(cmd.OutOrStdout(), kind)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
