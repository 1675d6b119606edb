package todo

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := NewStore(path)

	original := List{
		{ID: "1", Text: "hello", CreatedAt: "2024-01-01T09:00:00.000000"},
		{ID: "2", Text: "pay rent", CreatedAt: "2024-01-01T09:01:00.000000", DueDate: strPtr("01/02/2024")},
		{ID: "0", Text: "ünïcode & <html>", CreatedAt: "2024-01-01T09:02:00.000000"},
	}

	if err := store.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded := store.Load()

	if !reflect.DeepEqual(loaded, original) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, original)
	}
}

func TestSaveLoadSingleHello(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := NewStore(path)

	if err := store.Save(List{{ID: "1", Text: "hello"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded := store.Load()
	if len(loaded) != 1 {
		t.Fatalf("Tasks count: got %d, want 1", len(loaded))
	}
	if loaded[0].Text != "hello" {
		t.Errorf("Task text: got %q, want hello", loaded[0].Text)
	}
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	store := NewStore(path)

	if err := store.Save(List{{ID: "1", Text: "a & b", CreatedAt: "c"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n  {\n    \"id\": \"1\",\n    \"task\": \"a & b\",\n    \"created_at\": \"c\",\n    \"due_date\": null\n  }\n]\n"
	if string(data) != want {
		t.Errorf("file content:\n got %q\nwant %q", data, want)
	}

	t.Run("nil list saves as empty array", func(t *testing.T) {
		if err := store.Save(nil); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		data, _ := os.ReadFile(path)
		if string(data) != "[]\n" {
			t.Errorf("got %q, want []", data)
		}
	})
}

func TestLoadReturnsEmptyOnTrouble(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content *string
	}{
		{"missing file", nil},
		{"empty file", strPtr("")},
		{"malformed json", strPtr("[{\"id\": ")},
		{"object instead of array", strPtr(`{"id": "1"}`)},
		{"null document", strPtr("null")},
		{"wrong field type", strPtr(`[{"id": 1, "task": "x"}]`)},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "case", string(rune('a'+i))+".json")
			if tt.content != nil {
				if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
					t.Fatal(err)
				}
				if err := os.WriteFile(path, []byte(*tt.content), 0644); err != nil {
					t.Fatal(err)
				}
			}
			got := NewStore(path).Load()
			if got == nil {
				t.Fatal("Load returned nil, want empty list")
			}
			if len(got) != 0 {
				t.Errorf("Load returned %d tasks, want 0", len(got))
			}
		})
	}
}

func TestSaveFailureLeavesOriginalIntact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.json")
	store := NewStore(path)

	if err := store.Save(List{{ID: "1", Text: "keep me"}}); err != nil {
		t.Fatalf("initial Save failed: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	injected := errors.New("disk full")
	orig := syncFile
	syncFile = func(*os.File) error { return injected }
	t.Cleanup(func() { syncFile = orig })

	err = store.Save(List{{ID: "2", Text: "never lands"}})
	if err == nil {
		t.Fatal("expected Save to fail")
	}
	if !errors.Is(err, injected) {
		t.Errorf("expected wrapped injected error, got %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(before) {
		t.Errorf("original file changed:\n got %q\nwant %q", after, before)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp.") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want only the task file", len(entries))
	}
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	store := NewStore(path)

	if store.Exists() {
		t.Fatal("Exists before save")
	}
	if err := store.Save(List{NewTask("x", "")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !store.Exists() {
		t.Error("Exists after save = false")
	}
}

func TestSaveIntoFileAsDirFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(filepath.Join(blocker, "tasks.json"))
	if err := store.Save(List{}); err == nil {
		t.Fatal("expected error when parent is a file")
	}
}
