package todo

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "todolist.schema.json"

// Schema is the JSON Schema for the task file.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "todolist task file",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "task", "created_at"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "task": {"type": "string", "minLength": 1},
      "created_at": {"type": "string"},
      "due_date": {"type": ["string", "null"]}
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, strings.NewReader(Schema)); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// ValidationError is a single problem found in a task document.
type ValidationError struct {
	Path string // dotted path, e.g. "[2].task"
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult collects every problem found by Validate.
type ValidationResult struct {
	Valid  bool
	Errors []error
}

func (r *ValidationResult) add(err error) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// Validate checks the list against the schema and for duplicate ids.
func (l List) Validate() *ValidationResult {
	data, err := encodeList(l)
	if err != nil {
		return &ValidationResult{Errors: []error{err}}
	}
	return ValidateBytes(data)
}

// ValidateFile validates the document at path. Unlike Store.Load, a
// missing or malformed file is reported rather than treated as empty.
func ValidateFile(path string) *ValidationResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ValidationResult{Errors: []error{fmt.Errorf("read task file: %w", err)}}
	}
	return ValidateBytes(data)
}

// ValidateBytes validates a raw task document.
func ValidateBytes(data []byte) *ValidationResult {
	result := &ValidationResult{Valid: true}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.add(&ValidationError{Err: fmt.Errorf("parse task file: %w", err)})
		return result
	}

	sch, err := schema()
	if err != nil {
		result.add(err)
		return result
	}
	if err := sch.Validate(doc); err != nil {
		appendSchemaErrors(result, err)
	}

	items, ok := doc.([]interface{})
	if !ok {
		return result
	}
	seen := make(map[string]int, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		id, ok := obj["id"].(string)
		if !ok || id == "" {
			continue
		}
		if first, dup := seen[id]; dup {
			result.add(&ValidationError{
				Path: fmt.Sprintf("[%d].id", i),
				Err:  fmt.Errorf("duplicate id %q (first at [%d])", id, first),
			})
			continue
		}
		seen[id] = i
	}
	return result
}

func appendSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.add(err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.add(&ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath turns "/2/task" into "[2].task".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
