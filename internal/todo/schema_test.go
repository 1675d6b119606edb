package todo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateBytes(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		valid    bool
		wantPath string
	}{
		{
			name:  "empty array",
			doc:   `[]`,
			valid: true,
		},
		{
			name:  "valid tasks",
			doc:   `[{"id":"a","task":"x","created_at":"t","due_date":null},{"id":"b","task":"y","created_at":"t","due_date":"soon"}]`,
			valid: true,
		},
		{
			name:  "extra fields are allowed",
			doc:   `[{"id":"a","task":"x","created_at":"t","done":true}]`,
			valid: true,
		},
		{
			name:     "missing task",
			doc:      `[{"id":"a","created_at":"t"}]`,
			wantPath: "[0]",
		},
		{
			name:     "empty task text",
			doc:      `[{"id":"a","task":"","created_at":"t"}]`,
			wantPath: "[0].task",
		},
		{
			name:     "due date wrong type",
			doc:      `[{"id":"a","task":"x","created_at":"t"},{"id":"b","task":"y","created_at":"t","due_date":5}]`,
			wantPath: "[1].due_date",
		},
		{
			name:     "duplicate id",
			doc:      `[{"id":"a","task":"x","created_at":"t"},{"id":"a","task":"y","created_at":"t"}]`,
			wantPath: "[1].id",
		},
		{
			name: "not an array",
			doc:  `{"tasks":[]}`,
		},
		{
			name: "not json",
			doc:  `[{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateBytes([]byte(tt.doc))
			if result.Valid != tt.valid {
				t.Fatalf("Valid: got %v, want %v (errors: %v)", result.Valid, tt.valid, result.Errors)
			}
			if tt.valid {
				if len(result.Errors) != 0 {
					t.Errorf("unexpected errors: %v", result.Errors)
				}
				return
			}
			if len(result.Errors) == 0 {
				t.Fatal("invalid result has no errors")
			}
			if tt.wantPath == "" {
				return
			}
			found := false
			for _, err := range result.Errors {
				if ve, ok := err.(*ValidationError); ok && ve.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Errorf("no error at path %q: %v", tt.wantPath, result.Errors)
			}
		})
	}
}

func TestListValidate(t *testing.T) {
	list := List{NewTask("one", ""), NewTask("two", "friday")}
	if result := list.Validate(); !result.Valid {
		t.Errorf("fresh tasks invalid: %v", result.Errors)
	}

	list = append(list, list[0])
	result := list.Validate()
	if result.Valid {
		t.Fatal("duplicate ids should be invalid")
	}
	if !strings.Contains(result.Errors[0].Error(), "duplicate id") {
		t.Errorf("unexpected error: %v", result.Errors[0])
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is reported", func(t *testing.T) {
		result := ValidateFile(filepath.Join(dir, "nope.json"))
		if result.Valid || len(result.Errors) == 0 {
			t.Errorf("missing file should be invalid: %+v", result)
		}
	})

	t.Run("saved file is valid", func(t *testing.T) {
		path := filepath.Join(dir, "tasks.json")
		if err := NewStore(path).Save(List{NewTask("x", "")}); err != nil {
			t.Fatal(err)
		}
		if result := ValidateFile(path); !result.Valid {
			t.Errorf("saved file invalid: %v", result.Errors)
		}
	})

	t.Run("corrupt file is reported", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
			t.Fatal(err)
		}
		if result := ValidateFile(path); result.Valid {
			t.Error("corrupt file should be invalid")
		}
	})
}

func TestJSONPointerToPath(t *testing.T) {
	tests := map[string]string{
		"":             "",
		"/":            "",
		"#/0/task":     "[0].task",
		"/12/due_date": "[12].due_date",
		"/a~1b/c~0d":   "a/b.c~d",
	}
	for in, want := range tests {
		if got := jsonPointerToPath(in); got != want {
			t.Errorf("jsonPointerToPath(%q) = %q, want %q", in, got, want)
		}
	}
}
