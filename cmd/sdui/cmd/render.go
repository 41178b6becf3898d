package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/sdui/cmd/sdui/internal/document"
	"github.com/go-drift/sdui/pkg/registry"
)

var (
	renderCompact bool
	renderOut     string
)

var renderCmd = &cobra.Command{
	Use:   "render <document.yaml>",
	Short: "Render a YAML UI document to the JSON wire format",
	Long: `Render loads a YAML UI document, builds and validates its component
tree, and prints the JSON wire format the rendering client consumes.

Examples:
  # Render to stdout, indented
  sdui render screen.yaml

  # Compact output into a file
  sdui render screen.yaml --compact -o screen.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document.Load(args[0])
		if err != nil {
			return err
		}
		b, err := doc.Build(registry.Default())
		if err != nil {
			return err
		}
		var out string
		if renderCompact {
			out, err = b.ToJSON()
		} else {
			out, err = b.ToJSONIndent()
		}
		if err != nil {
			return err
		}
		if renderOut != "" {
			return os.WriteFile(renderOut, []byte(out+"\n"), 0o644)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderCompact, "compact", false, "emit compact JSON")
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "", "write output to file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}
