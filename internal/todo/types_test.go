package todo

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	before := time.Now().Add(-time.Second)
	task := NewTask("  buy milk  ", " 02/01/2024 ")

	if task.Text != "buy milk" {
		t.Errorf("Text: got %q, want %q", task.Text, "buy milk")
	}
	if len(task.ID) != 32 {
		t.Errorf("ID length: got %d, want 32 (%q)", len(task.ID), task.ID)
	}
	if task.Due() != "02/01/2024" {
		t.Errorf("Due: got %q", task.Due())
	}

	created, err := time.ParseInLocation(TimestampLayout, task.CreatedAt, time.Local)
	if err != nil {
		t.Fatalf("CreatedAt %q does not parse: %v", task.CreatedAt, err)
	}
	if created.Before(before) || created.After(time.Now().Add(time.Second)) {
		t.Errorf("CreatedAt %v not close to now", created)
	}

	t.Run("blank due date is absent", func(t *testing.T) {
		task := NewTask("x", "   ")
		if task.DueDate != nil {
			t.Errorf("DueDate: got %q, want nil", *task.DueDate)
		}
		if task.Due() != "" {
			t.Errorf("Due(): got %q, want empty", task.Due())
		}
	})

	t.Run("does not reject empty text", func(t *testing.T) {
		task := NewTask("   ", "")
		if task.Text != "" || task.ID == "" {
			t.Errorf("got %+v", task)
		}
	})
}

func TestNewTaskIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTask("x", "").ID
		if seen[id] {
			t.Fatalf("duplicate id %q after %d tasks", id, i)
		}
		seen[id] = true
	}
}

func TestValidateText(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"hello", "hello", false},
		{"  padded\t", "padded", false},
		{"", "", true},
		{"   ", "", true},
		{"\n\t ", "", true},
	}
	for _, tt := range tests {
		got, err := ValidateText(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrEmptyText) {
				t.Errorf("ValidateText(%q): got err %v, want ErrEmptyText", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ValidateText(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestListDelete(t *testing.T) {
	list := List{
		{ID: "a", Text: "one"},
		{ID: "b", Text: "two"},
		{ID: "c", Text: "three"},
	}

	t.Run("removes matching id and keeps order", func(t *testing.T) {
		got := list.Delete("b")
		want := List{{ID: "a", Text: "one"}, {ID: "c", Text: "three"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
		if len(list) != 3 {
			t.Error("Delete mutated the receiver")
		}
	})

	t.Run("unknown id leaves list unchanged", func(t *testing.T) {
		got := list.Delete("zzz")
		if !reflect.DeepEqual(got, list) {
			t.Errorf("got %+v, want %+v", got, list)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		got := List{}.Delete("a")
		if len(got) != 0 {
			t.Errorf("got %+v", got)
		}
	})
}

func TestListAddAndFind(t *testing.T) {
	var list List
	list = list.Add(Task{ID: "a", Text: "one"})
	list = list.Add(Task{ID: "b", Text: "two"})

	if len(list) != 2 || list[1].ID != "b" {
		t.Fatalf("Add did not append in order: %+v", list)
	}
	if got := list.Find("a"); got == nil || got.Text != "one" {
		t.Errorf("Find(a) = %+v", got)
	}
	if got := list.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %+v, want nil", got)
	}
}
