package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Files is a Store keeping one JSON file per page in a directory.
// Page names are restricted to letters, digits, '-' and '_', so they map
// to file names safely.
type Files struct {
	Dir string
}

var _ Store = (*Files)(nil)

// ErrInvalidName is returned for page names which cannot be used as file names.
var ErrInvalidName = errors.New("invalid page name")

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,127}$`)

// NewFiles creates a file store for directory dir.
func NewFiles(dir string) *Files {
	return &Files{Dir: dir}
}

func (f *Files) path(name string) (string, error) {
	if !validName.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(f.Dir, name+".json"), nil
}

// Load reads the record for name.
func (f *Files) Load(ctx context.Context, name string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := f.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	} else if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	rec := &Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return rec, nil
}

// Save writes the record for name. The file is replaced atomically: the
// record is written to a temporary file first, which is then renamed.
func (f *Files) Save(ctx context.Context, name string, rec *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := f.path(name)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("save %s: no record", name)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(f.Dir, "."+name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	defer os.Remove(tmp.Name()) // no-op after successful rename
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	tracer().Debugf("file store: saved %s", p)
	return nil
}

// Names lists the pages stored in the directory, sorted.
func (f *Files) Names() ([]string, error) {
	entries, err := os.ReadDir(f.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	} else if err != nil {
		return nil, err
	}
	names := []string{}
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasSuffix(n, ".json") {
			continue
		}
		if n = strings.TrimSuffix(n, ".json"); validName.MatchString(n) {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names, nil
}
