package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dshills/formflow/pkg/storage"
)

// NewDraftsCommand creates the drafts list command
func NewDraftsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "drafts <form-id>",
		Short: "List saved drafts for a form",
		Long:  `List saved drafts for a form, newest first.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := storage.NewSQLiteDraftRepositoryWithPath(GetDatabasePath())
			if err != nil {
				return fmt.Errorf("failed to open drafts database: %w", err)
			}
			defer func() { _ = repo.Close() }()

			drafts, err := repo.ListByForm(args[0])
			if err != nil {
				return fmt.Errorf("failed to list drafts: %w", err)
			}
			if len(drafts) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No drafts for form '%s'\n", args[0])
				return nil
			}
			if limit > 0 && len(drafts) > limit {
				drafts = drafts[:limit]
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-36s  %-20s  %s\n", "ID", "SUBMITTED", "FIELDS")
			for _, d := range drafts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-36s  %-20s  %d\n",
					d.ID, d.SubmittedAt.Format("2006-01-02 15:04:05"), len(d.Values))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of drafts to display")

	return cmd
}

// NewDraftCommand creates the draft detail command
func NewDraftCommand() *cobra.Command {
	var asJSON bool
	var reveal bool

	cmd := &cobra.Command{
		Use:   "draft <id>",
		Short: "Display a saved draft",
		Long: `Display a saved draft.

Secret fields are stored as keyring references; --reveal resolves them
against the system keyring.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := storage.NewSQLiteDraftRepositoryWithPath(GetDatabasePath())
			if err != nil {
				return fmt.Errorf("failed to open drafts database: %w", err)
			}
			defer func() { _ = repo.Close() }()

			draft, err := repo.Get(args[0])
			if err != nil {
				return fmt.Errorf("draft not found: %s", args[0])
			}

			values := draft.Values
			if reveal {
				values = revealSecrets(values)
			}

			if asJSON {
				out := map[string]interface{}{
					"id":           draft.ID,
					"form_id":      draft.FormID,
					"submitted_at": draft.SubmittedAt,
					"values":       values,
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode draft: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Draft:     %s\n", draft.ID)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Form:      %s\n", draft.FormID)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Submitted: %s\n\n", draft.SubmittedAt.Format("2006-01-02 15:04:05"))

			fields := make([]string, 0, len(values))
			for id := range values {
				fields = append(fields, id)
			}
			sort.Strings(fields)
			for _, id := range fields {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", id, values[id])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the draft as JSON")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Resolve keyring references to secret values")

	cmd.AddCommand(newDraftDeleteCommand())

	return cmd
}

// newDraftDeleteCommand creates the draft delete subcommand
func newDraftDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved draft",
		Long:  `Delete a saved draft and any keyring secrets it references.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := storage.NewSQLiteDraftRepositoryWithPath(GetDatabasePath())
			if err != nil {
				return fmt.Errorf("failed to open drafts database: %w", err)
			}
			defer func() { _ = repo.Close() }()

			draft, err := repo.Get(args[0])
			if err != nil {
				return fmt.Errorf("draft not found: %s", args[0])
			}

			// Remove referenced secrets before the row that points at them.
			secrets := storage.NewKeyringSecretStore()
			for _, v := range draft.Values {
				if key, ok := storage.ParseSecretRef(v); ok {
					if err := secrets.Delete(key); err != nil {
						_, _ = fmt.Fprintf(cmd.OutOrStderr(), "Warning: could not delete secret %s: %v\n", key, err)
					}
				}
			}

			if err := repo.Delete(draft.ID); err != nil {
				return fmt.Errorf("failed to delete draft: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Draft deleted: %s\n", draft.ID)
			return nil
		},
	}
}

// revealSecrets replaces keyring references with the stored values.
// Unresolvable references are left in place.
func revealSecrets(values map[string]string) map[string]string {
	secrets := storage.NewKeyringSecretStore()
	out := make(map[string]string, len(values))
	for id, v := range values {
		if key, ok := storage.ParseSecretRef(v); ok {
			if stored, err := secrets.Get(key); err == nil {
				out[id] = stored
				continue
			}
		}
		out[id] = v
	}
	return out
}
