package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/formflow/pkg/form"
	"github.com/dshills/formflow/pkg/storage"
	"github.com/dshills/formflow/pkg/tui"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var prefillPath string
	var noSave bool
	var noKeyring bool

	cmd := &cobra.Command{
		Use:   "run <form>",
		Short: "Run a form in the terminal",
		Long: `Run a form in the terminal.

The form is either a name looked up in the forms directory or a path to
a YAML definition file. Completed forms are saved as drafts; secret
fields are stored in the system keyring.

Examples:
  formflow run signup
  formflow run ./forms/signup.yaml --prefill profile.json
  formflow run signup --no-save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveFormPath(args[0])
			if err != nil {
				return err
			}

			def, err := form.LoadFile(path)
			if err != nil {
				return fmt.Errorf("failed to load form: %w", err)
			}

			app, err := tui.NewApp(def)
			if err != nil {
				return fmt.Errorf("failed to start form: %w", err)
			}
			defer func() { _ = app.Close() }()

			if prefillPath != "" {
				doc, err := os.ReadFile(prefillPath)
				if err != nil {
					return fmt.Errorf("failed to read prefill file: %w", err)
				}
				if _, err := form.Prefill(def, app.Chain(), doc); err != nil {
					return fmt.Errorf("failed to prefill form: %w", err)
				}
			}

			var saved string
			var saveErr error
			app.OnComplete(func() {
				if noSave {
					return
				}
				saved, saveErr = saveDraft(def, app)
			})

			if err := app.Run(); err != nil {
				return err
			}
			if saveErr != nil {
				return fmt.Errorf("failed to save draft: %w", saveErr)
			}
			if saved != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Draft saved: %s\n", saved)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&prefillPath, "prefill", "", "JSON document to prefill bound fields from")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Discard the completed form instead of saving a draft")
	cmd.Flags().BoolVar(&noKeyring, "no-keyring", false, "Do not store secret fields (they are dropped, never saved in clear)")

	// The keyring flag is read inside saveDraft via the closure below.
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		useKeyring = !noKeyring
		return nil
	}

	return cmd
}

// useKeyring controls whether secret fields reach the system keyring.
var useKeyring = true

// saveDraft persists the completed form and returns the draft ID.
func saveDraft(def *form.Definition, app *tui.App) (string, error) {
	var secrets storage.SecretStore
	if useKeyring {
		secrets = storage.NewKeyringSecretStore()
	}

	draft, err := storage.BuildDraft(def, app.Inputs(), secrets)
	if err != nil {
		return "", err
	}

	repo, err := storage.NewSQLiteDraftRepositoryWithPath(GetDatabasePath())
	if err != nil {
		return "", err
	}
	defer func() { _ = repo.Close() }()

	if err := repo.Save(draft); err != nil {
		return "", err
	}
	return draft.ID, nil
}
