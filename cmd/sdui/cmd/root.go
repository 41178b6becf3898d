// Package cmd implements the sdui CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (render, validate, kinds, diff). Every
// command operates on YAML UI documents and emits the JSON wire format
// consumed by the rendering client.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/sdui/pkg/errors"
	_ "github.com/go-drift/sdui/pkg/widgets" // install the widget catalog
)

// Version is set at build time.
var Version = "0.1.0-dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "sdui",
	Short:   "Build and ship server-driven UI documents",
	Version: Version,
	Long: `sdui turns declarative YAML UI documents into the flat JSON wire
format consumed by a remote rendering client.

Use "sdui <command> --help" for more information about a command.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			errors.SetHandler(&errors.LogHandler{Verbose: true})
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print detailed error output")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
