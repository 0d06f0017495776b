package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const (
	// Version is the current version of formflow
	Version = "1.0.0"
)

// Config holds the global configuration for the formflow CLI
type Config struct {
	ConfigDir string
	Debug     bool
}

// GlobalConfig is the shared configuration instance
var GlobalConfig = &Config{}

// NewRootCommand creates the root cobra command for formflow
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formflow",
		Short: "formflow - Terminal forms with chained focus",
		Long: `formflow runs YAML-defined forms in the terminal. Fields are
visited along a focus chain with per-field skip conditions, submitted
drafts are kept in a local database, and secret fields go to the system
keyring instead of the draft row.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			if GlobalConfig.Debug {
				log.SetOutput(os.Stderr)
				log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
			} else {
				log.SetOutput(io.Discard)
			}

			return nil
		},
	}

	// Persistent flags (available to all subcommands)
	cmd.PersistentFlags().BoolVar(&GlobalConfig.Debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&GlobalConfig.ConfigDir, "config-dir", "", "Configuration directory (default: ~/.formflow)")

	// Add subcommands
	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewDraftsCommand())
	cmd.AddCommand(NewDraftCommand())

	return cmd
}

// initConfig initializes the formflow configuration directory
func initConfig() error {
	// Environment variable always takes priority (for testing)
	if envDir := os.Getenv("FORMFLOW_CONFIG_DIR"); envDir != "" {
		GlobalConfig.ConfigDir = envDir
	} else if GlobalConfig.ConfigDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}
		GlobalConfig.ConfigDir = filepath.Join(homeDir, ".formflow")
	}

	if err := os.MkdirAll(GlobalConfig.ConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	formsDir := filepath.Join(GlobalConfig.ConfigDir, "forms")
	if err := os.MkdirAll(formsDir, 0755); err != nil {
		return fmt.Errorf("failed to create forms directory: %w", err)
	}

	return nil
}

// GetConfigDir returns the configuration directory path
// Priority order: 1) FORMFLOW_CONFIG_DIR env var (for testing), 2) GlobalConfig.ConfigDir, 3) ~/.formflow
func GetConfigDir() string {
	if envDir := os.Getenv("FORMFLOW_CONFIG_DIR"); envDir != "" {
		return envDir
	}
	if GlobalConfig.ConfigDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".formflow"
		}
		return filepath.Join(homeDir, ".formflow")
	}
	return GlobalConfig.ConfigDir
}

// GetFormsDir returns the forms directory path
func GetFormsDir() string {
	return filepath.Join(GetConfigDir(), "forms")
}

// GetDatabasePath returns the path to the drafts database
func GetDatabasePath() string {
	return filepath.Join(GetConfigDir(), "formflow.db")
}

// resolveFormPath turns a form argument into a definition file path.
// A bare name is looked up in the forms directory; anything with a
// path separator or a YAML extension is used as-is.
func resolveFormPath(arg string) (string, error) {
	if filepath.Ext(arg) == ".yaml" || filepath.Ext(arg) == ".yml" || filepath.Dir(arg) != "." {
		if _, err := os.Stat(arg); err != nil {
			return "", fmt.Errorf("form file not found: %s", arg)
		}
		return arg, nil
	}

	path := filepath.Join(GetFormsDir(), arg+".yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("form not found: %s\n\nLooked in: %s", arg, path)
	}
	return path, nil
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}
