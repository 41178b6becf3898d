package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-drift/sdui/cmd/sdui/internal/document"
	"github.com/go-drift/sdui/pkg/errors"
	"github.com/go-drift/sdui/pkg/registry"
)

var validateCmd = &cobra.Command{
	Use:   "validate <document.yaml>",
	Short: "Validate a YAML UI document",
	Long: `Validate loads a YAML UI document, builds its component tree, and
reports every validation error. The exit status is non-zero when the
document is invalid.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document.Load(args[0])
		if err != nil {
			color.Red("%v", err)
			return err
		}
		b, buildErr := doc.Build(registry.Default())
		if buildErr != nil {
			var verr *errors.ValidationError
			if stderrors.As(buildErr, &verr) {
				printValidationErrors(verr.Errors)
				return buildErr
			}
			color.Red("%v", buildErr)
			return buildErr
		}
		if errs := b.Validate(); len(errs) > 0 {
			printValidationErrors(errs)
			return &errors.ValidationError{Op: "cmd.validate", Errors: errs}
		}
		color.Green("%s is valid", args[0])
		return nil
	},
}

func printValidationErrors(errs []string) {
	color.Red("%d validation error(s):", len(errs))
	for _, msg := range errs {
		fmt.Printf("  - %s\n", msg)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
