package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"learnhub-content/internal/app"
	"learnhub-content/internal/content"
)

// NewValidateCmd lints the built-in dataset without touching a database.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Lint the content dataset offline",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundles := content.Bundles()
			findings := app.ValidateBundles(bundles)
			for _, f := range findings {
				fmt.Println(f)
			}
			if len(findings) > 0 {
				return fmt.Errorf("%w: %d finding(s)", app.ErrValidationFailed, len(findings))
			}
			fmt.Printf("%d bundles ok\n", len(bundles))
			return nil
		},
	}
}
