package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from TODOLIST_* environment variables.
// Values that fail to parse are ignored.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	set := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("TODOLIST_TODO"); v != "" {
		cfg.TodoFile = v
		set("todo_file")
	}
	if v := os.Getenv("TODOLIST_LEGACY"); v != "" {
		cfg.LegacyFile = v
		set("legacy_file")
	}
	if v := os.Getenv("TODOLIST_LOG_DIR"); v != "" {
		cfg.LogDir = v
		set("log_dir")
	}
	if v := os.Getenv("TODOLIST_MIGRATE"); v != "" {
		cfg.MigrateOnStart = boolFromString(v)
		set("migrate_on_start")
	}
	if v := os.Getenv("TODOLIST_STATUS_TIMEOUT"); v != "" {
		if d, err := parseDuration(v); err == nil {
			cfg.StatusTimeout = Duration{d}
			set("status_timeout")
		}
	}

	// Logging configuration
	if v := os.Getenv("TODOLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := os.Getenv("TODOLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		set("log_format")
	}
	if v := os.Getenv("TODOLIST_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		set("log_timestamps")
	}
	if v := os.Getenv("TODOLIST_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		set("log_caller")
	}
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
