package todo

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the created_at format: local time, microsecond
// precision, no zone suffix.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// ErrEmptyText is returned when task text is empty after trimming.
var ErrEmptyText = errors.New("task text is empty")

// Task is a single to-do entry.
type Task struct {
	ID        string  `json:"id" yaml:"id"`
	Text      string  `json:"task" yaml:"task"`
	CreatedAt string  `json:"created_at" yaml:"created_at"`
	DueDate   *string `json:"due_date" yaml:"due_date,omitempty"`
}

// Due returns the due date, or "" if none was given.
func (t Task) Due() string {
	if t.DueDate == nil {
		return ""
	}
	return *t.DueDate
}

// List is an ordered sequence of tasks in insertion order.
type List []Task

// NewTask builds a task with a fresh id and the current time. Text is
// trimmed but not checked; callers reject empty text with ValidateText.
// A blank due date is stored as absent.
func NewTask(text, due string) Task {
	task := Task{
		ID:        NewID(),
		Text:      strings.TrimSpace(text),
		CreatedAt: FormatTimestamp(time.Now()),
	}
	if d := strings.TrimSpace(due); d != "" {
		task.DueDate = &d
	}
	return task
}

// NewID returns a random 32-character hex identifier.
func NewID() string {
	u := uuid.New()
	return strings.ReplaceAll(u.String(), "-", "")
}

// FormatTimestamp renders t in local time using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.In(time.Local).Format(TimestampLayout)
}

// ValidateText trims text and returns ErrEmptyText if nothing is left.
func ValidateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	return trimmed, nil
}

// Add returns the list with task appended.
func (l List) Add(task Task) List {
	return append(l, task)
}

// Delete returns a new list without any task whose ID matches id.
// An unknown id yields an equal list.
func (l List) Delete(id string) List {
	out := make(List, 0, len(l))
	for _, t := range l {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// Find returns the task with the given id, or nil.
func (l List) Find(id string) *Task {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}
