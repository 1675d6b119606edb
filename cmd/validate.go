package cmd

import (
	"fmt"

	"github.com/nibzard/todolist-go/internal/config"
	"github.com/nibzard/todolist-go/internal/todo"
)

// validateCommand checks a task file against the schema and for duplicate ids.
func validateCommand(cfg *config.Config, args []string) error {
	fs := newFlagSet("validate")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args()[1:])
	}
	path := cfg.TodoFile
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	result := todo.ValidateFile(path)
	if result.Valid {
		fmt.Fprintf(stdout, "%s: ok\n", path)
		return nil
	}
	for _, err := range result.Errors {
		fmt.Fprintf(stdout, "%s: %v\n", path, err)
	}
	return fmt.Errorf("%s: %d validation error(s)", path, len(result.Errors))
}

// configCommand prints the effective configuration and where each value
// came from.
func configCommand(cws *config.ConfigWithSources, args []string) error {
	fs := newFlagSet("config")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if len(cws.Files) == 0 {
		fmt.Fprintln(stdout, "Config files: none")
	} else {
		fmt.Fprintln(stdout, "Config files:")
		for _, f := range cws.Files {
			fmt.Fprintf(stdout, "  %s\n", f)
		}
		fmt.Fprintf(stdout, "Highest priority: %s\n", cws.GetConfigFile())
	}
	fmt.Fprintln(stdout)
	for _, field := range config.Fields() {
		fmt.Fprintf(stdout, "%-18s %s  (%s)\n", field, cws.Config.Value(field), cws.Sources[field])
	}
	fmt.Fprintf(stdout, "%-18s %s  (computed)\n", "project_root", cws.Config.ProjectRoot)
	return nil
}
