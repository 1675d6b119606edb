// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.todolist/todolist.toml or OS-specific config directory)
// 3. Project config file (todolist.toml or .todolist.toml in the working directory)
// 4. Environment variables (TODOLIST_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.todolist/todolist.toml (preferred)
// - Windows: %APPDATA%\todolist\todolist.toml
// - macOS: ~/Library/Application Support/todolist/todolist.toml
// - Linux/BSD: $XDG_CONFIG_HOME/todolist/todolist.toml or ~/.config/todolist/todolist.toml
//
// Example todolist.toml:
//
//	todo_file = "~/Dropbox/tasks.json"
//	legacy_file = "tasks.cbor"
//	migrate_on_start = true
//	status_timeout = "3s"
//	log_level = "debug"
//
// When no layer sets todo_file, the task file goes in a cloud-synced
// folder if one exists (see DefaultStoragePath), else the working directory.
package config
