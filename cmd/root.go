// Package cmd implements the todolist command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/nibzard/todolist-go/internal/config"
	"github.com/nibzard/todolist-go/internal/logging"
	"github.com/nibzard/todolist-go/internal/todo"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Run executes the todolist CLI.
func Run(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("todolist", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SetInterspersed(false)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.BoolP("help", "h", false, "Show help")
	showVersion := fs.BoolP("version", "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}
	cfg := cws.Config

	subcommand := "ui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "ui":
		return uiCommand(ctx, cfg, remainingArgs)
	case "list", "ls":
		return listCommand(cfg, remainingArgs)
	case "add":
		return addCommand(cfg, remainingArgs)
	case "delete", "rm":
		return deleteCommand(cfg, remainingArgs)
	case "migrate":
		return migrateCommand(cfg, remainingArgs)
	case "validate":
		return validateCommand(cfg, remainingArgs)
	case "config":
		return configCommand(cws, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newFlagSet returns a flag set for a subcommand.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("todolist "+name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parseFlags parses subcommand flags. A help request is not an error.
func parseFlags(fs *pflag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// newLogger returns the stderr logger used by the non-interactive commands.
func newLogger(cfg *config.Config) *log.Logger {
	return logging.New(stderr, logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller))
}

func openStore(cfg *config.Config, logger *log.Logger) *todo.Store {
	return todo.NewStore(cfg.TodoFile, todo.WithLogger(logger))
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Fprintf(stdout, "todolist version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *pflag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todolist - a small to-do list for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todolist [options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  ui                      Open the interactive list (default command)")
	fmt.Fprintln(w, "  list [--format F]       Print tasks (text, json, yaml)")
	fmt.Fprintln(w, "  add [--due D] <text>    Add a task")
	fmt.Fprintln(w, "  delete <id>             Delete a task by id")
	fmt.Fprintln(w, "  migrate [--legacy P]    Import tasks from a legacy CBOR file")
	fmt.Fprintln(w, "  migrate --export-legacy P")
	fmt.Fprintln(w, "                          Write the current tasks in legacy format")
	fmt.Fprintln(w, "  validate [file]         Check a task file against the schema")
	fmt.Fprintln(w, "  config                  Show effective configuration and sources")
	fmt.Fprintln(w, "  version                 Show version information")
	fmt.Fprintln(w, "  help                    Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(stderr)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  "+strings.Join([]string{
		"TODOLIST_TODO", "TODOLIST_LEGACY", "TODOLIST_MIGRATE", "TODOLIST_STATUS_TIMEOUT",
	}, ", "))
	fmt.Fprintln(w, "  "+strings.Join([]string{
		"TODOLIST_LOG_DIR", "TODOLIST_LOG_LEVEL", "TODOLIST_LOG_FORMAT",
	}, ", "))
}
