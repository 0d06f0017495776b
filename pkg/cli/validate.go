package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/formflow/pkg/form"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate <form>",
		Short: "Validate a form definition",
		Long: `Validate a form definition file for correctness.

This checks:
- YAML structure and required keys
- Field identifiers (unique, valid characters)
- Field types
- Skip conditions compile
- Schema conformance

Examples:
  formflow validate signup
  formflow validate ./forms/signup.yaml --verbose`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveFormPath(args[0])
			if err != nil {
				return err
			}

			def, err := form.LoadFile(path)
			if err != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "✗ Form definition failed to load")
				if verbose {
					_, _ = fmt.Fprintf(cmd.OutOrStderr(), "  Error: %v\n", err)
				}
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✓ Form YAML parsed successfully")
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✓ Schema conformance verified")

			// Compiling the chain exercises every skip condition.
			if _, _, err := form.Build(def); err != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "✗ Skip conditions failed to compile")
				if verbose {
					_, _ = fmt.Fprintf(cmd.OutOrStderr(), "  Error: %v\n", err)
				}
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✓ Skip conditions compile")

			secretCount := 0
			for _, f := range def.Fields {
				if f.Secret() {
					secretCount++
				}
			}
			if verbose {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  Fields: %d (%d secret)\n", len(def.Fields), secretCount)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Form '%s' is valid and ready to run\n", def.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed validation information")

	return cmd
}
