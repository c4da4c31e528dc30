package editor

import (
	"errors"
	"io/fs"

	"example.com/gapedit/pkg/document"
	"example.com/gapedit/pkg/fileio"
)

// BufferState holds the state of a single editor buffer.
type BufferState struct {
	FilePath string
	Session  *Session
	Ending   fileio.LineEnding
}

// Dirty reports whether the buffer has unsaved changes.
func (b *BufferState) Dirty() bool {
	return b.Session != nil && b.Session.Dirty()
}

// Editor manages multiple buffers and the focused buffer index.
type Editor struct {
	Buffers []*BufferState
	Current int

	store       *fileio.Store
	sessionOpts []Option
}

// New creates an Editor with no buffers. Files go through store; sessions
// are created with opts.
func New(store *fileio.Store, opts ...Option) *Editor {
	if store == nil {
		store = fileio.OS()
	}
	return &Editor{store: store, sessionOpts: opts}
}

// Store returns the store files are loaded from and saved to.
func (e *Editor) Store() *fileio.Store { return e.store }

// AddBuffer appends a buffer and makes it the current one.
func (e *Editor) AddBuffer(bs *BufferState) {
	e.Buffers = append(e.Buffers, bs)
	e.Current = len(e.Buffers) - 1
}

// CurrentBuffer returns the active buffer, or nil when there is none.
func (e *Editor) CurrentBuffer() *BufferState {
	if e.Current >= 0 && e.Current < len(e.Buffers) {
		return e.Buffers[e.Current]
	}
	return nil
}

// Next advances focus to the next buffer and returns it.
func (e *Editor) Next() *BufferState {
	if len(e.Buffers) == 0 {
		return nil
	}
	e.Current = (e.Current + 1) % len(e.Buffers)
	return e.Buffers[e.Current]
}

// Prev moves focus to the previous buffer and returns it.
func (e *Editor) Prev() *BufferState {
	if len(e.Buffers) == 0 {
		return nil
	}
	e.Current = (e.Current - 1 + len(e.Buffers)) % len(e.Buffers)
	return e.Buffers[e.Current]
}

// NewEmpty adds an unnamed buffer holding one empty line.
func (e *Editor) NewEmpty(opts ...document.Option) *BufferState {
	bs := &BufferState{Session: NewSession(document.New(opts...), e.sessionOpts...)}
	e.AddBuffer(bs)
	return bs
}

// LoadFile reads a file and adds it as a new buffer. A path that does not
// exist yet opens an empty buffer that will be created on save.
func (e *Editor) LoadFile(path string) (*BufferState, error) {
	doc, ending, err := e.store.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		doc, ending, err = document.New(), fileio.LF, nil
	}
	if err != nil {
		return nil, err
	}
	bs := &BufferState{FilePath: path, Session: NewSession(doc, e.sessionOpts...), Ending: ending}
	e.AddBuffer(bs)
	return bs, nil
}

// SaveCurrent writes the current buffer to its path and clears its dirty
// flag.
func (e *Editor) SaveCurrent() error {
	bs := e.CurrentBuffer()
	if bs == nil {
		return fileio.ErrNoPath
	}
	return e.save(bs, bs.FilePath)
}

// SaveCurrentAs writes the current buffer to path and adopts it as the
// buffer's path.
func (e *Editor) SaveCurrentAs(path string) error {
	bs := e.CurrentBuffer()
	if bs == nil {
		return fileio.ErrNoPath
	}
	if err := e.save(bs, path); err != nil {
		return err
	}
	bs.FilePath = path
	return nil
}

func (e *Editor) save(bs *BufferState, path string) error {
	if err := e.store.Save(path, bs.Session.Document(), bs.Ending); err != nil {
		return err
	}
	bs.Session.MarkClean()
	return nil
}

// Close removes the current buffer. Focus moves to the buffer before it.
func (e *Editor) Close() {
	if len(e.Buffers) == 0 {
		return
	}
	e.Buffers = append(e.Buffers[:e.Current], e.Buffers[e.Current+1:]...)
	if e.Current > 0 {
		e.Current--
	}
}

// AnyDirty reports whether some buffer has unsaved changes.
func (e *Editor) AnyDirty() bool {
	for _, bs := range e.Buffers {
		if bs.Dirty() {
			return true
		}
	}
	return false
}
