package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todolist-go/internal/config"
	"github.com/nibzard/todolist-go/internal/logging"
	"github.com/nibzard/todolist-go/internal/todo"
	"github.com/nibzard/todolist-go/internal/ui"
)

// uiCommand opens the interactive list.
func uiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("ui")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if !ui.IsTTY(os.Stdout) {
		return fmt.Errorf("ui requires a TTY; use list, add, or delete instead")
	}

	// The UI owns the terminal, so logs go to a file.
	opts := logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
	fileLogger, err := logging.OpenFile(cfg.LogDir, opts)
	logger := logging.Discard()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer fileLogger.Close()
		logger = fileLogger.Logger
	}

	store := openStore(cfg, logger)
	migrateOnStart(cfg, store, logger)

	app := ui.NewApp(store,
		ui.WithLogger(logger),
		ui.WithStatusTimeout(cfg.StatusTimeout.Duration),
	)
	return ui.Run(ctx, app)
}

// migrateOnStart imports the legacy file into a task file that does not
// exist yet. An existing task file is never replaced at startup.
func migrateOnStart(cfg *config.Config, store *todo.Store, logger *log.Logger) int {
	if !cfg.MigrateOnStart || cfg.LegacyFile == "" || store.Exists() {
		return 0
	}
	n, err := store.MigrateLegacy(cfg.LegacyFile)
	if err != nil {
		logger.Warn("startup migration failed", "legacy", cfg.LegacyFile, "err", err)
		return 0
	}
	if n > 0 {
		logger.Info("migrated legacy tasks", "count", n, "legacy", cfg.LegacyFile)
	}
	return n
}
