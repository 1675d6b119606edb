// Package ui provides the terminal interface for the task list.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/nibzard/todolist-go/internal/todo"
)

// DefaultStatusTimeout is how long a status message stays visible.
const DefaultStatusTimeout = 3 * time.Second

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used for user actions.
func WithLogger(logger *log.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithStatusTimeout sets how long status messages stay visible. Zero keeps
// them until replaced.
func WithStatusTimeout(d time.Duration) Option {
	return func(a *App) {
		a.statusTimeout = d
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(a *App) {
		a.keys = keys
	}
}

type mode int

const (
	modeList mode = iota
	modeAdd
)

// App is the application state. It implements tea.Model.
type App struct {
	store  *todo.Store
	logger *log.Logger
	keys   KeyMap
	help   help.Model
	styles Styles

	tasks  todo.List
	cursor int
	offset int
	width  int
	height int

	mode     mode
	form     addForm
	status   statusLine
	showHelp bool

	statusTimeout time.Duration
}

// NewApp creates the application state and loads the current list.
func NewApp(store *todo.Store, opts ...Option) *App {
	a := &App{
		store:         store,
		logger:        log.New(io.Discard),
		keys:          DefaultKeyMap,
		help:          help.New(),
		styles:        DefaultStyles(),
		form:          newAddForm(),
		statusTimeout: DefaultStatusTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.refresh()
	return a
}

// Run starts the interactive program and blocks until it exits.
func Run(ctx context.Context, app *App) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("ui requires a TTY")
	}
	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// Tasks returns the list as last loaded.
func (a *App) Tasks() todo.List {
	return a.tasks
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.form.setWidth(msg.Width)
		a.ensureVisible()
		return a, nil
	case clearStatusMsg:
		a.status.clear(msg)
		return a, nil
	case tea.KeyMsg:
		if a.mode == modeAdd {
			return a, a.updateForm(msg)
		}
		return a, a.updateList(msg)
	}
	if a.mode == modeAdd {
		return a, a.form.update(msg)
	}
	return a, nil
}

func (a *App) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
		a.ensureVisible()
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)
	case key.Matches(msg, a.keys.Add):
		a.mode = modeAdd
		a.ensureVisible()
		return a.form.open()
	case key.Matches(msg, a.keys.Delete):
		return a.deleteSelected()
	case key.Matches(msg, a.keys.Refresh):
		a.refresh()
		return a.setStatus(fmt.Sprintf("Loaded %d task(s).", len(a.tasks)), StatusInfo)
	}
	return nil
}

func (a *App) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	case key.Matches(msg, a.keys.Cancel):
		a.closeForm()
		return nil
	case key.Matches(msg, a.keys.Confirm):
		return a.submit()
	case key.Matches(msg, a.keys.NextField):
		return a.form.move(1)
	case key.Matches(msg, a.keys.PrevField):
		return a.form.move(-1)
	}
	a.form.inline = ""
	return a.form.update(msg)
}

// submit validates the form and appends the task to a freshly loaded list.
func (a *App) submit() tea.Cmd {
	text, err := todo.ValidateText(a.form.text())
	if err != nil {
		a.form.inline = emptyTextMessage
		return nil
	}
	task := todo.NewTask(text, a.form.due())
	tasks := a.store.Load().Add(task)
	if err := a.store.Save(tasks); err != nil {
		a.logger.Error("save task", "task_id", task.ID, "err", err)
		return a.setStatus("Error saving task: "+err.Error(), StatusError)
	}
	a.logger.Info("task added", "task_id", task.ID)
	a.closeForm()
	a.refresh()
	a.cursor = len(a.tasks) - 1
	a.ensureVisible()
	return a.setStatus("Task saved.", StatusSuccess)
}

func (a *App) deleteSelected() tea.Cmd {
	if a.cursor < 0 || a.cursor >= len(a.tasks) {
		return a.setStatus("No task selected.", StatusInfo)
	}
	id := a.tasks[a.cursor].ID
	tasks := a.store.Load().Delete(id)
	if err := a.store.Save(tasks); err != nil {
		a.logger.Error("delete task", "task_id", id, "err", err)
		return a.setStatus("Error deleting task: "+err.Error(), StatusError)
	}
	a.logger.Info("task deleted", "task_id", id)
	a.refresh()
	return a.setStatus("Task deleted.", StatusSuccess)
}

func (a *App) closeForm() {
	a.form.close()
	a.mode = modeList
	a.ensureVisible()
}

func (a *App) setStatus(text string, kind StatusKind) tea.Cmd {
	return a.status.set(text, kind, a.statusTimeout)
}

// refresh reloads the list and keeps the cursor in range.
func (a *App) refresh() {
	a.tasks = a.store.Load()
	if a.cursor >= len(a.tasks) {
		a.cursor = len(a.tasks) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	a.ensureVisible()
}

func (a *App) moveCursor(delta int) {
	if len(a.tasks) == 0 {
		return
	}
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor >= len(a.tasks) {
		a.cursor = len(a.tasks) - 1
	}
	a.ensureVisible()
}

// listHeight is the number of rows that fit between the header and footer.
// Before the first WindowSizeMsg every row is shown.
func (a *App) listHeight() int {
	if a.height <= 0 {
		return len(a.tasks)
	}
	used := lipgloss.Height(a.headerView()) + lipgloss.Height(a.footerView())
	if a.mode == modeAdd {
		used += lipgloss.Height(a.form.view(a.styles)) + 1
	}
	if n := a.height - used; n > 1 {
		return n
	}
	return 1
}

func (a *App) ensureVisible() {
	n := a.listHeight()
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if n > 0 && a.cursor >= a.offset+n {
		a.offset = a.cursor - n + 1
	}
	if limit := len(a.tasks) - n; a.offset > limit {
		a.offset = limit
	}
	if a.offset < 0 {
		a.offset = 0
	}
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.headerView())
	b.WriteString("\n")
	if a.mode == modeAdd {
		b.WriteString(a.form.view(a.styles))
		b.WriteString("\n")
	}
	a.writeRows(&b)
	b.WriteString(a.footerView())
	return b.String()
}

func (a *App) headerView() string {
	return a.styles.Title.Render("To-Do List")
}

func (a *App) footerView() string {
	var b strings.Builder
	b.WriteString("\n")
	if a.status.text != "" {
		b.WriteString(a.styles.Status[a.status.kind].Render(a.status.text))
	}
	b.WriteString("\n")
	if a.mode == modeAdd {
		b.WriteString(a.help.View(formKeys{a.keys}))
	} else {
		b.WriteString(a.help.View(a.keys))
	}
	return b.String()
}

func (a *App) writeRows(b *strings.Builder) {
	if len(a.tasks) == 0 {
		b.WriteString(a.styles.Empty.Render("No tasks yet. Press a to add one."))
		b.WriteString("\n")
		return
	}
	end := a.offset + a.listHeight()
	if end > len(a.tasks) {
		end = len(a.tasks)
	}
	for i := a.offset; i < end; i++ {
		line := formatTask(a.tasks[i], a.styles)
		if i == a.cursor && a.mode == modeList {
			b.WriteString(a.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(a.styles.Row.Render(line))
		}
		b.WriteString("\n")
	}
}

// formatTask renders one row: the text and, when set, the due date.
func formatTask(t todo.Task, styles Styles) string {
	if due := t.Due(); due != "" {
		return t.Text + " " + styles.Due.Render("(Due: "+due+")")
	}
	return t.Text
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
