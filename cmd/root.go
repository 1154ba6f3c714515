package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/focusclock/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "focusclock",
	Short: "Terminal study timer",
	Long:  "focusclock tracks focused study time per subject. Rest time is never counted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to JSON config file (overrides FOCUSCLOCK_CONFIG env var)")
	pf.String("journal", "", "SQLite DSN for the transition journal (\":memory:\" keeps it in memory)")
	pf.String("subject", "", "Subject restored when leaving rest before any subject was chosen")
	pf.Bool("debug", false, "Write debug logs")
	pf.String("log-file", "", "Log file path (defaults to the XDG state directory)")

	rootCmd.AddCommand(subjectsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the config file and environment, then applies flags,
// which take the highest priority.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if v, _ := cmd.Flags().GetString("journal"); v != "" {
		cfg.Journal = v
	}
	if v, _ := cmd.Flags().GetString("subject"); v != "" {
		cfg.DefaultSubject = v
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug, _ = cmd.Flags().GetBool("debug")
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ensureJournalDir creates the parent directory of a file-backed journal.
func ensureJournalDir(dsn string) error {
	if dsn == config.MemoryJournal || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
		return fmt.Errorf("create journal directory: %w", err)
	}
	return nil
}
