package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glassquiz/glassquiz/internal/app"
	"github.com/glassquiz/glassquiz/internal/catalog"
	"github.com/glassquiz/glassquiz/internal/logging"
	"github.com/glassquiz/glassquiz/internal/sound"
)

// runApp resolves configuration, loads the catalog and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closer.Close()

	cat, err := catalog.Load(cmd.Context(), cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	topics, questions := cat.Len()
	logger.Info("catalog loaded", "path", cfg.CatalogPath, "topics", topics, "questions", questions)

	var player sound.Player = sound.Nop{}
	if cfg.Sound {
		player = sound.NewBell(os.Stderr, logger)
	}

	return app.Run(app.Options{
		Catalog: cat,
		Player:  player,
		Logger:  logger,
	})
}
