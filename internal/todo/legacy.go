package todo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"time"

	"github.com/fxamacker/cbor/v2"
)

var (
	legacyEncMode cbor.EncMode
	legacyDecMode cbor.DecMode
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Timestamps round-trip as tagged RFC 3339 strings so they decode
	// back into time.Time.
	encOptions.Time = cbor.TimeRFC3339Nano
	encOptions.TimeTag = cbor.EncTagRequired
	legacyEncMode, err = encOptions.EncMode()
	if err != nil {
		panic("todo: CBOR encoder initialization failed: " + err.Error())
	}

	legacyDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
	}.DecMode()
	if err != nil {
		panic("todo: CBOR decoder initialization failed: " + err.Error())
	}
}

// MigrateLegacy imports the legacy file at oldPath into the JSON
// document at newPath. See Store.MigrateLegacy.
func MigrateLegacy(oldPath, newPath string) (int, error) {
	return NewStore(newPath).MigrateLegacy(oldPath)
}

// MigrateLegacy imports the legacy CBOR file at oldPath and replaces the
// store's document with the normalized entries. It returns the number
// of tasks written.
//
// A missing legacy file, or one that cannot be read or decoded, is
// skipped and reports 0 with a nil error. Only a failure to write the
// new document is returned. The legacy file is never modified.
func (s *Store) MigrateLegacy(oldPath string) (int, error) {
	if oldPath == "" {
		return 0, nil
	}
	data, err := os.ReadFile(oldPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("skipping legacy migration", "path", oldPath, "err", err)
		}
		return 0, nil
	}

	var raw interface{}
	if err := legacyDecMode.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("skipping legacy migration", "path", oldPath, "err", err)
		return 0, nil
	}
	entries, ok := raw.([]interface{})
	if !ok {
		s.logger.Warn("skipping legacy migration", "path", oldPath, "err", fmt.Sprintf("top-level %T is not an array", raw))
		return 0, nil
	}

	tasks := normalizeLegacy(entries)
	if err := s.Save(tasks); err != nil {
		return 0, fmt.Errorf("migrate %s: %w", oldPath, err)
	}
	s.logger.Info("migrated legacy tasks", "from", oldPath, "to", s.path, "count", len(tasks))
	return len(tasks), nil
}

// normalizeLegacy converts decoded legacy entries to tasks. Entries that
// are not maps are dropped. Missing or repeated ids get fresh ones.
func normalizeLegacy(entries []interface{}) List {
	tasks := make(List, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		task := Task{
			ID:        stringify(m["id"]),
			Text:      stringify(m["task"]),
			CreatedAt: legacyTimestamp(m["created_at"]),
		}
		if task.ID == "" || seen[task.ID] {
			task.ID = NewID()
		}
		seen[task.ID] = true

		if due, ok := m["due_date"]; ok && due != nil {
			d := stringify(due)
			task.DueDate = &d
		}
		tasks = append(tasks, task)
	}
	return tasks
}

func legacyTimestamp(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		return FormatTimestamp(t)
	case *time.Time:
		if t == nil {
			return ""
		}
		return FormatTimestamp(*t)
	default:
		return stringify(v)
	}
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

// EncodeLegacy renders entries in the legacy CBOR format.
func EncodeLegacy(entries []map[string]interface{}) ([]byte, error) {
	if entries == nil {
		entries = []map[string]interface{}{}
	}
	data, err := legacyEncMode.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode legacy tasks: %w", err)
	}
	return data, nil
}

// ExportLegacy writes tasks to path in the legacy format. It is the
// inverse of MigrateLegacy and exists for downgrades and fixtures.
func ExportLegacy(tasks List, path string) error {
	entries := make([]map[string]interface{}, 0, len(tasks))
	for _, t := range tasks {
		entry := map[string]interface{}{
			"id":         t.ID,
			"task":       t.Text,
			"created_at": t.CreatedAt,
		}
		if parsed, err := time.ParseInLocation(TimestampLayout, t.CreatedAt, time.Local); err == nil {
			entry["created_at"] = parsed
		}
		if t.DueDate != nil {
			entry["due_date"] = *t.DueDate
		}
		entries = append(entries, entry)
	}

	data, err := EncodeLegacy(entries)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("write legacy file: %w", err)
	}
	return nil
}
