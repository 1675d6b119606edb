package config

import (
	"fmt"
	"strings"
	"time"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, in load order.
	Files []string
}

// Default values.
const (
	DefaultTodoFileName   = "tasks.json"
	DefaultLegacyFile     = "tasks.cbor"
	DefaultLogDir         = "~/.todolist"
	DefaultStatusTimeout  = 3 * time.Second
	DefaultMigrateOnStart = true
)

// Config holds the full configuration for todolist.
type Config struct {
	// Paths. An empty TodoFile resolves to DefaultStoragePath.
	TodoFile   string `toml:"todo_file"`
	LegacyFile string `toml:"legacy_file"`
	LogDir     string `toml:"log_dir"`

	// Import LegacyFile when the UI starts and no task file exists yet.
	MigrateOnStart bool `toml:"migrate_on_start"`

	// How long status messages stay visible. Zero keeps them until replaced.
	StatusTimeout Duration `toml:"status_timeout"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// Duration is a time.Duration that decodes from strings like "3s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := parseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid duration %q: must not be negative", s)
	}
	return d, nil
}

// configFields returns the configurable field names for source tracking,
// in display order.
func configFields() []string {
	return []string{
		"todo_file",
		"legacy_file",
		"log_dir",
		"migrate_on_start",
		"status_timeout",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// Value returns the display value of a field named in configFields.
func (c *Config) Value(field string) string {
	switch field {
	case "todo_file":
		return c.TodoFile
	case "legacy_file":
		return c.LegacyFile
	case "log_dir":
		return c.LogDir
	case "migrate_on_start":
		return fmt.Sprintf("%t", c.MigrateOnStart)
	case "status_timeout":
		return c.StatusTimeout.String()
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return fmt.Sprintf("%t", c.LogTimestamps)
	case "log_caller":
		return fmt.Sprintf("%t", c.LogCaller)
	}
	return ""
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}
