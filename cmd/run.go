package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillforge/internal/app"
	"github.com/abhisek/skillforge/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// Logs go to a file so they don't corrupt the screen.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dataDir, err := store.DataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	logFile, err := cfg.OpenLogFile(dataDir)
	if err != nil {
		return err
	}
	defer logFile.Close()

	e, err := openEnv(cfg, logFile)
	if err != nil {
		return err
	}
	defer e.Close()

	e.logger.Info("starting terminal ui")
	return app.Run(e.deps)
}
