package editor

import (
	"fmt"

	"example.com/gapedit/pkg/document"
)

// Point is a logical (line, column) position in a document.
type Point = document.Point

// Cursor is the caret position plus the horizontal position vertical motion
// tries to keep.
type Cursor struct {
	Line       int
	Column     int
	PreferredX int
}

// Point returns the cursor's logical position.
func (c Cursor) Point() Point {
	return Point{Line: c.Line, Column: c.Column}
}

// Selection is a pair of positions. Anchor stays fixed while extending; Head
// follows the cursor. The two ends may be in either order.
type Selection struct {
	Anchor Point
	Head   Point
}

// Collapsed returns an empty selection at p.
func Collapsed(p Point) Selection {
	return Selection{Anchor: p, Head: p}
}

// IsEmpty returns true if the selection covers no text.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Range returns the ends of the selection in document order.
func (s Selection) Range() (start, end Point) {
	if s.Head.Before(s.Anchor) {
		return s.Head, s.Anchor
	}
	return s.Anchor, s.Head
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Head)
	}
	return fmt.Sprintf("Selection%s→%s", s.Anchor, s.Head)
}
