package editor

import (
	"example.com/gapedit/pkg/document"
	"github.com/google/uuid"
)

// EventLogger receives structured editing events. *logs.Logger satisfies it.
type EventLogger interface {
	Event(event string, fields map[string]any)
}

// Option configures a Session during creation.
type Option func(*Session)

// WithLayout sets the layout used for vertical motion.
func WithLayout(l Layout) Option {
	return func(s *Session) {
		if l != nil {
			s.layout = l
		}
	}
}

// WithLogger sets the event logger.
func WithLogger(l EventLogger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// Session is the editing state over one Document: a cursor, a selection and
// the user-facing edit intents. It is not safe for concurrent use.
type Session struct {
	id     string
	doc    *document.Document
	cursor Cursor
	sel    Selection
	layout Layout
	logger EventLogger
	dirty  bool
}

// NewSession creates a Session with the cursor at the start of doc. A nil
// doc starts an empty document.
func NewSession(doc *document.Document, opts ...Option) *Session {
	if doc == nil {
		doc = document.New()
	}
	s := &Session{
		id:     uuid.NewString(),
		doc:    doc,
		layout: Monospace{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID identifies the session in log events.
func (s *Session) ID() string { return s.id }

// Document returns the document being edited.
func (s *Session) Document() *document.Document { return s.doc }

// Cursor returns the current cursor.
func (s *Session) Cursor() Cursor { return s.cursor }

// Selection returns the current selection. It is collapsed at the cursor when
// nothing is selected.
func (s *Session) Selection() Selection { return s.sel }

// HasSelection reports whether any text is selected.
func (s *Session) HasSelection() bool { return !s.sel.IsEmpty() }

// Dirty reports whether the document changed since the last MarkClean.
func (s *Session) Dirty() bool { return s.dirty }

// MarkClean clears the dirty flag, typically after a save.
func (s *Session) MarkClean() { s.dirty = false }

func (s *Session) point() Point { return s.cursor.Point() }

func (s *Session) log(event string, fields map[string]any) {
	if s.logger == nil {
		return
	}
	if fields == nil {
		fields = map[string]any{}
	}
	fields["session"] = s.id
	fields["line"] = s.cursor.Line
	fields["column"] = s.cursor.Column
	fields["lines"] = s.doc.LineCount()
	s.logger.Event(event, fields)
}

func (s *Session) updatePreferredX() {
	s.cursor.PreferredX = s.layout.ColumnX(s.doc.LineText(s.cursor.Line), s.cursor.Column)
}

// place moves the cursor to p. With extend the selection keeps its anchor (or
// anchors at the old cursor if it was empty) and its head follows p;
// otherwise the selection collapses at p.
func (s *Session) place(p Point, extend bool) {
	anchor := s.sel.Anchor
	if s.sel.IsEmpty() {
		anchor = s.point()
	}
	s.cursor.Line, s.cursor.Column = p.Line, p.Column
	if extend {
		s.sel = Selection{Anchor: anchor, Head: p}
		return
	}
	s.sel = Collapsed(p)
}

// SetCursor moves the cursor to p, clamped to the document, and clears the
// selection.
func (s *Session) SetCursor(p Point) {
	p = s.doc.Clamp(p)
	s.place(p, false)
	s.updatePreferredX()
}

// SetSelection replaces the selection. Both ends are clamped to the document
// and the cursor moves to the head.
func (s *Session) SetSelection(sel Selection) {
	sel.Anchor = s.doc.Clamp(sel.Anchor)
	sel.Head = s.doc.Clamp(sel.Head)
	s.cursor.Line, s.cursor.Column = sel.Head.Line, sel.Head.Column
	s.sel = sel
	s.updatePreferredX()
}

// SelectAll selects from the start of the first line to the end of the last.
func (s *Session) SelectAll() {
	s.SetSelection(Selection{Anchor: Point{}, Head: s.doc.End()})
}
