package fileio

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"example.com/gapedit/pkg/document"
	"github.com/spf13/afero"
)

// ErrNoPath is returned when saving a buffer that was never given a path.
var ErrNoPath = errors.New("fileio: no file path")

// Store loads and saves documents through an afero filesystem.
type Store struct {
	fs      afero.Fs
	docOpts []document.Option
}

// NewStore returns a Store over fsys. Documents it loads are built with
// opts.
func NewStore(fsys afero.Fs, opts ...document.Option) *Store {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Store{fs: fsys, docOpts: opts}
}

// OS returns a Store backed by the real filesystem.
func OS(opts ...document.Option) *Store {
	return NewStore(afero.NewOsFs(), opts...)
}

// Exists reports whether path names an existing file.
func (s *Store) Exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}

// Load reads path into a new Document and reports the line ending the file
// uses. A missing file yields fs.ErrNotExist wrapped with the path.
func (s *Store) Load(path string) (*document.Document, LineEnding, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, LF, fmt.Errorf("load %s: %w", path, err)
	}
	lines, err := ReadLines(bytes.NewReader(data))
	if err != nil {
		return nil, LF, fmt.Errorf("load %s: %w", path, err)
	}
	doc, err := document.FromLines(lines, s.docOpts...)
	if err != nil {
		return nil, LF, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, Detect(data), nil
}

// Save writes doc to path, terminating every line with ending. The content
// goes to a temporary file in the same directory that is then renamed over
// path, so a failed write leaves the old file intact.
func (s *Store) Save(path string, doc *document.Document, ending LineEnding) error {
	if path == "" {
		return ErrNoPath
	}
	mode := fs.FileMode(0o644)
	if info, err := s.fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("save %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if err := WriteDocument(tmp, doc, ending); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := s.fs.Chmod(tmpName, mode); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := s.fs.Rename(tmpName, path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
