package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Store reads and writes the task list at a fixed path.
type Store struct {
	path   string
	logger *log.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for swallowed read and migration errors.
func WithLogger(logger *log.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore returns a store for the JSON document at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:   path,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the document is present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the task list. It never returns an error: a missing file,
// a read failure, or content that does not parse as a task array all
// load as an empty list. Callers cannot tell "never created" from
// "corrupted"; use Validate for that.
func (s *Store) Load() List {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("read task file", "path", s.path, "err", err)
		}
		return List{}
	}

	var tasks List
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.logger.Debug("parse task file", "path", s.path, "err", err)
		return List{}
	}
	if tasks == nil {
		return List{}
	}
	return tasks
}

// Save replaces the document with tasks. The write is atomic: on
// failure the previous document is untouched and no temp file is left
// behind.
func (s *Store) Save(tasks List) error {
	data, err := encodeList(tasks)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, data, 0644); err != nil {
		return fmt.Errorf("write task file: %w", err)
	}
	return nil
}

// encodeList renders tasks with 2-space indentation and a trailing newline.
// A nil list encodes as [].
func encodeList(tasks List) ([]byte, error) {
	if tasks == nil {
		tasks = List{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return nil, fmt.Errorf("marshal task file: %w", err)
	}
	return buf.Bytes(), nil
}

// syncFile flushes f to stable storage. Tests replace it to simulate a
// failure between writing and renaming.
var syncFile = func(f *os.File) error {
	return f.Sync()
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := syncFile(tmp); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", base, err)
	}
	committed = true
	syncDir(dir)
	return nil
}

// syncDir makes the rename durable. Some platforms cannot open a
// directory for syncing; that is not treated as a write failure.
func syncDir(dir string) {
	f, err := os.Open(dir)
	if err != nil {
		return
	}
	defer f.Close()
	_ = f.Sync()
}
