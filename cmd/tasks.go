package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nibzard/todolist-go/internal/config"
	"github.com/nibzard/todolist-go/internal/todo"
)

// listCommand prints the task list.
func listCommand(cfg *config.Config, args []string) error {
	fs := newFlagSet("list")
	format := fs.StringP("format", "f", "text", "Output format (text, json, yaml)")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	tasks := openStore(cfg, newLogger(cfg)).Load()

	switch strings.ToLower(*format) {
	case "text", "":
		printTaskList(tasks)
		return nil
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tasks); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "yaml", "yml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json, or yaml)", *format)
	}
}

// printTaskList prints one numbered line per task.
func printTaskList(tasks todo.List) {
	if len(tasks) == 0 {
		fmt.Fprintln(stdout, "No tasks.")
		return
	}
	for i, t := range tasks {
		line := fmt.Sprintf("%d. %s", i+1, t.Text)
		if due := t.Due(); due != "" {
			line += "  (Due: " + due + ")"
		}
		fmt.Fprintf(stdout, "%s  [%s]\n", line, t.ID)
	}
}

// addCommand appends one task built from the remaining arguments.
func addCommand(cfg *config.Config, args []string) error {
	fs := newFlagSet("add")
	due := fs.StringP("due", "d", "", "Due date (free text, e.g. DD/MM/YYYY)")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}

	text, err := todo.ValidateText(strings.Join(fs.Args(), " "))
	if err != nil {
		if errors.Is(err, todo.ErrEmptyText) {
			return fmt.Errorf("add: please type something")
		}
		return err
	}

	logger := newLogger(cfg)
	store := openStore(cfg, logger)
	task := todo.NewTask(text, *due)
	if err := store.Save(store.Load().Add(task)); err != nil {
		return fmt.Errorf("add: %w", err)
	}
	logger.Debug("task added", "task_id", task.ID)
	fmt.Fprintf(stdout, "Added %s\n", task.ID)
	return nil
}

// deleteCommand removes the task with the given id. A missing id is
// reported but is not an error.
func deleteCommand(cfg *config.Config, args []string) error {
	fs := newFlagSet("delete")
	if ok, err := parseFlags(fs, args); !ok {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("delete requires exactly one task id")
	}
	id := fs.Arg(0)

	logger := newLogger(cfg)
	store := openStore(cfg, logger)
	tasks := store.Load()
	found := tasks.Find(id) != nil
	if err := store.Save(tasks.Delete(id)); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if !found {
		fmt.Fprintf(stdout, "No task with id %s\n", id)
		return nil
	}
	logger.Debug("task deleted", "task_id", id)
	fmt.Fprintf(stdout, "Deleted %s\n", id)
	return nil
}
