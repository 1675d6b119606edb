package cmd

import (
	"fmt"

	"github.com/nibzard/todolist-go/internal/config"
	"github.com/nibzard/todolist-go/internal/todo"
)

// migrateCommand imports a legacy file, or exports the current list in
// legacy format with --export-legacy.
func migrateCommand(cfg *config.Config, args []string) error {
	fs := newFlagSet("migrate")
	legacy := fs.String("legacy", cfg.LegacyFile, "Legacy CBOR file to import")
	export := fs.String("export-legacy", "", "Write the current tasks to this legacy CBOR file")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	logger := newLogger(cfg)
	store := openStore(cfg, logger)

	if *export != "" {
		tasks := store.Load()
		if err := todo.ExportLegacy(tasks, *export); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Exported %d task(s) to %s\n", len(tasks), *export)
		return nil
	}

	n, err := store.MigrateLegacy(*legacy)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Migrated %d task(s) from %s to %s\n", n, *legacy, store.Path())
	return nil
}
