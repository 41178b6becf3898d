package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/sdui/cmd/sdui/internal/document"
	"github.com/go-drift/sdui/pkg/builder"
	"github.com/go-drift/sdui/pkg/registry"
)

var diffCmd = &cobra.Command{
	Use:   "diff <old.yaml> <new.yaml>",
	Short: "Compute the merge patch between two UI documents",
	Long: `Diff renders both documents and prints the RFC 7386 merge patch that
transforms the old wire output into the new one. A client holding the old
tree can apply the patch instead of re-receiving the whole document.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		prev, err := loadBuilder(args[0])
		if err != nil {
			return err
		}
		next, err := loadBuilder(args[1])
		if err != nil {
			return err
		}
		patch, err := builder.Diff(prev, next)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(patch))
		return nil
	},
}

func loadBuilder(path string) (*builder.Builder, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Build(registry.Default())
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
