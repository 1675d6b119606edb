package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldText = iota
	fieldDue
	fieldCount
)

// emptyTextMessage is shown inside the form when the task text is blank.
const emptyTextMessage = "Please type something."

// addForm collects the text and optional due date for a new task.
type addForm struct {
	inputs  [fieldCount]textinput.Model
	focused int
	inline  string
}

func newAddForm() addForm {
	text := textinput.New()
	text.Placeholder = "Enter your task"
	text.CharLimit = 256
	text.Width = 50

	due := textinput.New()
	due.Placeholder = "DD/MM/YYYY"
	due.CharLimit = 64
	due.Width = 30

	return addForm{inputs: [fieldCount]textinput.Model{text, due}}
}

// open resets the form and focuses the text field.
func (f *addForm) open() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.inline = ""
	f.focused = fieldText
	return f.inputs[fieldText].Focus()
}

// close blurs every field.
func (f *addForm) close() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *addForm) move(delta int) tea.Cmd {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + delta + fieldCount) % fieldCount
	return f.inputs[f.focused].Focus()
}

func (f *addForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

func (f *addForm) text() string {
	return f.inputs[fieldText].Value()
}

func (f *addForm) due() string {
	return f.inputs[fieldDue].Value()
}

func (f *addForm) setWidth(width int) {
	w := width - 12
	if w < 20 {
		w = 20
	}
	if w > 80 {
		w = 80
	}
	f.inputs[fieldText].Width = w
	f.inputs[fieldDue].Width = min(w, 30)
}

func (f *addForm) view(styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Label.Render("Enter your task:") + "\n")
	b.WriteString(f.inputs[fieldText].View() + "\n\n")
	b.WriteString(styles.Label.Render("Due date (optional, DD/MM/YYYY):") + "\n")
	b.WriteString(f.inputs[fieldDue].View())
	if f.inline != "" {
		b.WriteString("\n\n" + styles.Inline.Render(f.inline))
	}
	return styles.Form.Render(b.String())
}
