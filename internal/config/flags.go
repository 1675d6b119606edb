package config

import (
	"github.com/spf13/pflag"
)

// flagFields maps flag names to the config field they set.
var flagFields = map[string]string{
	"todo":           "todo_file",
	"legacy":         "legacy_file",
	"log-dir":        "log_dir",
	"no-migrate":     "migrate_on_start",
	"status-timeout": "status_timeout",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
}

// AddFlags registers the global config flags on fs, bound to cfg.
// Current cfg values become the flag defaults.
func AddFlags(fs *pflag.FlagSet, cfg *Config, noMigrate *bool) {
	fs.StringVar(&cfg.TodoFile, "todo", cfg.TodoFile, "Path to task file")
	fs.StringVar(&cfg.LegacyFile, "legacy", cfg.LegacyFile, "Path to legacy CBOR task file")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Log directory")
	fs.BoolVar(noMigrate, "no-migrate", false, "Skip legacy migration on startup")
	fs.DurationVar(&cfg.StatusTimeout.Duration, "status-timeout", cfg.StatusTimeout.Duration, "How long status messages stay visible (0 keeps them)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller info in logs")
}

// parseFlags defines and parses CLI flags, recording the source of every
// flag the user set explicitly.
func parseFlags(cfg *Config, fs *pflag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = pflag.NewFlagSet("todolist", pflag.ContinueOnError)
	}

	var noMigrate bool
	AddFlags(fs, cfg, &noMigrate)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.Changed("no-migrate") {
		cfg.MigrateOnStart = !noMigrate
	}
	for name, field := range flagFields {
		if fs.Changed(name) && sources != nil {
			sources[field] = SourceFlag
		}
	}
	return nil
}
