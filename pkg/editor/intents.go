package editor

import (
	"strings"

	"example.com/gapedit/pkg/search"
)

// deleteSelection removes the selected text and leaves the cursor at the
// start of the removed range. It reports whether anything was selected.
func (s *Session) deleteSelection() (bool, error) {
	if s.sel.IsEmpty() {
		return false, nil
	}
	start, end := s.sel.Range()
	start, end = s.doc.Clamp(start), s.doc.Clamp(end)
	if err := s.doc.DeleteRange(start, end); err != nil {
		return true, err
	}
	s.place(start, false)
	s.updatePreferredX()
	s.dirty = true
	s.log("selection.delete", map[string]any{"from": start.String(), "to": end.String()})
	return true, nil
}

// DeleteSelection removes the selected text, if any.
func (s *Session) DeleteSelection() error {
	_, err := s.deleteSelection()
	return err
}

// splitLine breaks the current line at the cursor and moves to the start of
// the new line.
func (s *Session) splitLine() error {
	if err := s.doc.InsertLineAt(s.cursor.Line+1, s.cursor.Column); err != nil {
		return err
	}
	s.cursor.Line++
	s.cursor.Column = 0
	s.dirty = true
	s.log("line.split", nil)
	return nil
}

// insert writes text at the cursor, turning each '\n' into a line split.
func (s *Session) insert(text string) error {
	for i, seg := range strings.Split(text, "\n") {
		if i > 0 {
			if err := s.splitLine(); err != nil {
				return err
			}
		}
		if seg == "" {
			continue
		}
		if err := s.doc.InsertText(s.cursor.Line, s.cursor.Column, seg); err != nil {
			return err
		}
		s.cursor.Column += len(seg)
		s.dirty = true
	}
	s.sel = Collapsed(s.point())
	s.updatePreferredX()
	return nil
}

// Type replaces the selection (if any) with text and advances the cursor past
// it.
func (s *Session) Type(text string) error {
	if _, err := s.deleteSelection(); err != nil {
		return err
	}
	return s.insert(text)
}

// Paste replaces the selection (if any) with text. Line breaks in text, "\n"
// or "\r\n", split the line at the cursor.
func (s *Session) Paste(text string) error {
	if _, err := s.deleteSelection(); err != nil {
		return err
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if err := s.insert(text); err != nil {
		return err
	}
	s.log("paste", map[string]any{"bytes": len(text), "breaks": strings.Count(text, "\n")})
	return nil
}

// Enter replaces the selection (if any) with a line break.
func (s *Session) Enter() error {
	if _, err := s.deleteSelection(); err != nil {
		return err
	}
	if err := s.splitLine(); err != nil {
		return err
	}
	s.sel = Collapsed(s.point())
	s.updatePreferredX()
	return nil
}

// Backspace deletes the selection, or the unit before the cursor, or joins the
// current line onto the previous one when the cursor is at column 0.
func (s *Session) Backspace() error {
	if deleted, err := s.deleteSelection(); deleted || err != nil {
		return err
	}
	switch {
	case s.cursor.Column > 0:
		if err := s.doc.DeleteBackward(s.cursor.Line, s.cursor.Column); err != nil {
			return err
		}
		s.cursor.Column--
	case s.cursor.Line > 0:
		merge, err := s.doc.RemoveLineAt(s.cursor.Line, s.cursor.Column)
		if err != nil {
			return err
		}
		s.cursor.Line--
		s.cursor.Column = merge
		s.log("line.merge", map[string]any{"merge": merge})
	default:
		return nil
	}
	s.dirty = true
	s.sel = Collapsed(s.point())
	s.updatePreferredX()
	return nil
}

// Delete deletes the selection, or the unit after the cursor, or joins the
// next line onto the current one when the cursor is at the end of a line.
func (s *Session) Delete() error {
	if deleted, err := s.deleteSelection(); deleted || err != nil {
		return err
	}
	switch {
	case s.cursor.Column < s.doc.LineLen(s.cursor.Line):
		if err := s.doc.DeleteForward(s.cursor.Line, s.cursor.Column); err != nil {
			return err
		}
	case s.cursor.Line < s.doc.LineCount()-1:
		merge, err := s.doc.RemoveLineAt(s.cursor.Line+1, 0)
		if err != nil {
			return err
		}
		s.log("line.merge", map[string]any{"merge": merge})
	default:
		return nil
	}
	s.dirty = true
	return nil
}

// CopyRange returns the text covered by sel with lines joined by '\n'. The
// selection is normalized and clamped first; the document is not modified.
func (s *Session) CopyRange(sel Selection) string {
	start, end := sel.Range()
	start, end = s.doc.Clamp(start), s.doc.Clamp(end)
	if start == end {
		return ""
	}
	var b strings.Builder
	for line := start.Line; line <= end.Line; line++ {
		from, to := 0, s.doc.LineLen(line)
		if line == start.Line {
			from = start.Column
		}
		if line == end.Line {
			to = end.Column
		}
		b.WriteString(s.doc.Slice(line, from, to))
		if line != end.Line {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Copy returns the selected text.
func (s *Session) Copy() string {
	return s.CopyRange(s.sel)
}

// Cut returns the selected text and removes it from the document.
func (s *Session) Cut() (string, error) {
	text := s.Copy()
	if err := s.DeleteSelection(); err != nil {
		return "", err
	}
	return text, nil
}

// FindNext selects the next occurrence of query at or after the cursor,
// wrapping to the top of the document. It reports whether a match was found.
func (s *Session) FindNext(query string) bool {
	matches := search.FindAll(s.doc.Lines(), query)
	i := search.Next(matches, s.point())
	if i < 0 {
		return false
	}
	m := matches[i]
	s.SetSelection(Selection{
		Anchor: Point{Line: m.Line, Column: m.Start},
		Head:   Point{Line: m.Line, Column: m.End},
	})
	s.log("find", map[string]any{"query": query, "match": i, "matches": len(matches)})
	return true
}
