package editor

import "example.com/gapedit/pkg/buffer"

// moveHorizontal places the cursor at p and drags the line's gap along, so
// the next edit happens where the cursor is.
func (s *Session) moveHorizontal(p Point, extend bool) {
	s.place(p, extend)
	_ = s.doc.MoveCursor(p.Line, p.Column)
	s.updatePreferredX()
}

// MoveLeft moves one unit left, wrapping to the end of the previous line.
// Without extend, a non-empty selection collapses to its start instead.
func (s *Session) MoveLeft(extend bool) {
	if !extend && s.HasSelection() {
		start, _ := s.sel.Range()
		s.moveHorizontal(start, false)
		return
	}
	p := s.point()
	switch {
	case p.Column > 0:
		p.Column--
	case p.Line > 0:
		p.Line--
		p.Column = s.doc.LineLen(p.Line)
	}
	s.moveHorizontal(p, extend)
}

// MoveRight moves one unit right, wrapping to the start of the next line.
// Without extend, a non-empty selection collapses to its end instead.
func (s *Session) MoveRight(extend bool) {
	if !extend && s.HasSelection() {
		_, end := s.sel.Range()
		s.moveHorizontal(end, false)
		return
	}
	p := s.point()
	switch {
	case p.Column < s.doc.LineLen(p.Line):
		p.Column++
	case p.Line < s.doc.LineCount()-1:
		p.Line++
		p.Column = 0
	}
	s.moveHorizontal(p, extend)
}

// MoveHome moves to the start of the current line.
func (s *Session) MoveHome(extend bool) {
	s.moveHorizontal(Point{Line: s.cursor.Line}, extend)
}

// MoveEnd moves to the end of the current line.
func (s *Session) MoveEnd(extend bool) {
	s.moveHorizontal(Point{Line: s.cursor.Line, Column: s.doc.LineLen(s.cursor.Line)}, extend)
}

// MoveWordLeft moves to the start of the previous word, crossing into the
// previous line from column 0.
func (s *Session) MoveWordLeft(extend bool) {
	p := s.point()
	if p.Column == 0 {
		if p.Line == 0 {
			s.moveHorizontal(p, extend)
			return
		}
		p.Line--
		p.Column = s.doc.LineLen(p.Line)
	}
	p.Column = buffer.WordStart(s.doc.Line(p.Line), p.Column)
	s.moveHorizontal(p, extend)
}

// MoveWordRight moves past the end of the next word, crossing into the next
// line from the end of the current one.
func (s *Session) MoveWordRight(extend bool) {
	p := s.point()
	if p.Column == s.doc.LineLen(p.Line) {
		if p.Line == s.doc.LineCount()-1 {
			s.moveHorizontal(p, extend)
			return
		}
		p.Line++
		p.Column = 0
	}
	p.Column = buffer.WordEnd(s.doc.Line(p.Line), p.Column)
	s.moveHorizontal(p, extend)
}

// resolveColumn maps the cached preferred position onto line.
func (s *Session) resolveColumn(line int) int {
	col := s.layout.ResolveColumn(s.doc.LineText(line), s.cursor.PreferredX)
	return max(0, min(col, s.doc.LineLen(line)))
}

// moveVertical changes line by delta, clamped to the document, keeping
// PreferredX so repeated moves stay visually aligned.
func (s *Session) moveVertical(delta int, extend bool) {
	line := max(0, min(s.cursor.Line+delta, s.doc.LineCount()-1))
	if line == s.cursor.Line {
		if !extend {
			s.sel = Collapsed(s.point())
		}
		return
	}
	s.place(Point{Line: line, Column: s.resolveColumn(line)}, extend)
}

// MoveUp moves to the previous line.
func (s *Session) MoveUp(extend bool) { s.moveVertical(-1, extend) }

// MoveDown moves to the next line.
func (s *Session) MoveDown(extend bool) { s.moveVertical(1, extend) }

// PageUp moves up by n lines.
func (s *Session) PageUp(n int, extend bool) { s.moveVertical(-max(n, 1), extend) }

// PageDown moves down by n lines.
func (s *Session) PageDown(n int, extend bool) { s.moveVertical(max(n, 1), extend) }
