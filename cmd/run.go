package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/focusclock/internal/accrual"
	"github.com/abhisek/focusclock/internal/app"
	"github.com/abhisek/focusclock/internal/clock"
	"github.com/abhisek/focusclock/internal/config"
	"github.com/abhisek/focusclock/internal/logging"
	"github.com/abhisek/focusclock/internal/store"
)

// runApp resolves the config, opens the journal, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(logging.Options{
		Debug:       cfg.Debug,
		File:        cfg.LogFile,
		DefaultPath: config.DefaultLogPath,
	})
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	if err := ensureJournalDir(cfg.Journal); err != nil {
		return err
	}
	st, err := store.Open(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer st.Close()

	runID := uuid.NewString()
	logger = logger.With("run_id", runID)
	logger.Info("starting",
		"version", version,
		"journal", cfg.Journal,
		"tick_interval", cfg.TickInterval,
		"max_tick_gap", cfg.MaxTickGap)

	engine := accrual.New(
		accrual.WithMaxTickGap(cfg.MaxTickGap),
		accrual.WithDefaultSubject(cfg.Subject()),
	)

	err = app.Run(app.Options{
		Engine:       engine,
		Clock:        clock.Real{},
		Journal:      st.JournalRepo(),
		RunID:        runID,
		Logger:       logger,
		TickInterval: cfg.TickInterval,
	})

	snap := engine.Snapshot()
	logger.Info("stopped", "selection", snap.Selection.String(), "totals", len(snap.Totals))
	return err
}
