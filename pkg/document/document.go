package document

import (
	"errors"
	"iter"
	"strings"

	"example.com/gapedit/pkg/buffer"
)

// ErrLineBreak is returned when text handed to a single line contains '\n'.
// Line breaks are expressed with InsertLineAt, never stored inside a line.
var ErrLineBreak = errors.New("text contains a line break")

// Document is an ordered table of lines, each owned by exactly one slot.
// len(lines) is the table capacity; slots [0,count) are live.
type Document struct {
	lines []*buffer.LineBuffer
	count int

	lineCapacity  int
	tableCapacity int
}

// New creates a document holding a single empty line.
func New(opts ...Option) *Document {
	d := &Document{tableCapacity: MinLines}
	for _, opt := range opts {
		opt(d)
	}
	d.lines = make([]*buffer.LineBuffer, d.tableCapacity)
	d.lines[0] = d.newLine()
	d.count = 1
	return d
}

// FromLines builds a document the way the file layer seeds one: the text of
// each line is inserted, then the next line is opened after it.
func FromLines(lines []string, opts ...Option) (*Document, error) {
	d := New(opts...)
	for i, l := range lines {
		if i > 0 {
			if err := d.InsertLineAt(i, d.LineLen(i-1)); err != nil {
				return nil, err
			}
		}
		if err := d.InsertText(i, 0, l); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Document) newLine() *buffer.LineBuffer {
	return buffer.NewLineBuffer(d.lineCapacity)
}

// grow doubles the line table, keeping every live line in order.
func (d *Document) grow() {
	next := make([]*buffer.LineBuffer, len(d.lines)*2)
	copy(next, d.lines[:d.count])
	d.lines = next
}

func (d *Document) checkLine(op string, line int) error {
	if line < 0 || line >= d.count {
		return &buffer.RangeError{Op: op, What: "line", Value: line, Limit: d.count - 1}
	}
	return nil
}

func (d *Document) checkPoint(op string, p Point) error {
	if err := d.checkLine(op, p.Line); err != nil {
		return err
	}
	if n := d.lines[p.Line].Len(); p.Column < 0 || p.Column > n {
		return &buffer.RangeError{Op: op, What: "column", Value: p.Column, Limit: n}
	}
	return nil
}

// LineCount returns the number of live lines (always at least 1).
func (d *Document) LineCount() int { return d.count }

// Capacity returns the number of allocated line slots.
func (d *Document) Capacity() int { return len(d.lines) }

// LineLen returns the used length of line i, or 0 when i is out of range.
func (d *Document) LineLen(i int) int {
	if i < 0 || i >= d.count {
		return 0
	}
	return d.lines[i].Len()
}

// LineText returns the contents of line i, or "" when i is out of range.
func (d *Document) LineText(i int) string {
	if i < 0 || i >= d.count {
		return ""
	}
	return d.lines[i].String()
}

// Line returns a read-only view of line i, or nil when i is out of range.
// The view must not be kept across a call that adds or removes lines.
func (d *Document) Line(i int) buffer.Reader {
	if i < 0 || i >= d.count {
		return nil
	}
	return d.lines[i]
}

// Slice returns the units in [start,end) of line i, clamped to the line.
func (d *Document) Slice(line, start, end int) string {
	if line < 0 || line >= d.count {
		return ""
	}
	return string(d.lines[line].Slice(start, end))
}

// Lines returns a copy of every line's contents.
func (d *Document) Lines() []string {
	out := make([]string, d.count)
	for i := range d.count {
		out[i] = d.lines[i].String()
	}
	return out
}

// All yields every line in order as (index, view) without terminators.
// The file layer streams each view with WriteTo on save.
func (d *Document) All() iter.Seq2[int, buffer.Reader] {
	return func(yield func(int, buffer.Reader) bool) {
		for i := 0; i < d.count; i++ {
			if !yield(i, d.lines[i]) {
				return
			}
		}
	}
}

// String joins the lines with '\n'.
func (d *Document) String() string {
	return strings.Join(d.Lines(), "\n")
}

// End returns the position after the last unit of the last line.
func (d *Document) End() Point {
	last := d.count - 1
	return Point{Line: last, Column: d.lines[last].Len()}
}

// Clamp moves p inside the document bounds.
func (d *Document) Clamp(p Point) Point {
	p.Line = max(0, min(p.Line, d.count-1))
	p.Column = max(0, min(p.Column, d.lines[p.Line].Len()))
	return p
}

// MoveCursor positions the gap of line at column.
func (d *Document) MoveCursor(line, column int) error {
	if err := d.checkPoint("move", Point{Line: line, Column: column}); err != nil {
		return err
	}
	return d.lines[line].MoveCursorTo(column)
}

// InsertText inserts text at column of line. The text must not contain '\n'.
func (d *Document) InsertText(line, column int, text string) error {
	if err := d.checkPoint("insert", Point{Line: line, Column: column}); err != nil {
		return err
	}
	if strings.IndexByte(text, '\n') >= 0 {
		return ErrLineBreak
	}
	lb := d.lines[line]
	if err := lb.MoveCursorTo(column); err != nil {
		return err
	}
	lb.InsertString(text)
	return nil
}

// DeleteBackward removes the unit before column on line. At column 0 it is a
// no-op; joining lines is RemoveLineAt's job.
func (d *Document) DeleteBackward(line, column int) error {
	if err := d.checkPoint("delete", Point{Line: line, Column: column}); err != nil {
		return err
	}
	lb := d.lines[line]
	if err := lb.MoveCursorTo(column); err != nil {
		return err
	}
	lb.DeleteBackward()
	return nil
}

// DeleteForward removes the unit at column on line. At the end of the line it
// is a no-op.
func (d *Document) DeleteForward(line, column int) error {
	if err := d.checkPoint("delete", Point{Line: line, Column: column}); err != nil {
		return err
	}
	lb := d.lines[line]
	if err := lb.MoveCursorTo(column); err != nil {
		return err
	}
	lb.DeleteForward()
	return nil
}

// InsertLineAt opens an empty line at index, shifting later lines down. When
// splitColumn is before the end of line index-1, the text from splitColumn
// onward moves to the new line and the previous line is cut there.
func (d *Document) InsertLineAt(index, splitColumn int) error {
	if index < 1 || index > d.count {
		return &buffer.RangeError{Op: "insert line", What: "line", Value: index, Limit: d.count}
	}
	prev := d.lines[index-1]
	if splitColumn < 0 || splitColumn > prev.Len() {
		return &buffer.RangeError{Op: "insert line", What: "column", Value: splitColumn, Limit: prev.Len()}
	}
	if d.count == len(d.lines) {
		d.grow()
	}
	// shift (count-index) slots, i.e. (newCount-1-index)
	copy(d.lines[index+1:d.count+1], d.lines[index:d.count])
	line := d.newLine()
	d.lines[index] = line
	d.count++

	if splitColumn < prev.Len() {
		if err := prev.MoveCursorTo(splitColumn); err != nil {
			return err
		}
		prev.CopyInto(line)
		prev.Truncate()
	}
	return nil
}

// RemoveLineAt joins line index onto the end of line index-1. Text of the
// removed line from mergeColumn onward is appended; the removed line is then
// released. It returns the merge point, the column in the joined line where
// the two parts meet. Line 0 cannot be removed.
func (d *Document) RemoveLineAt(index, mergeColumn int) (int, error) {
	if index < 1 || index >= d.count {
		return 0, &buffer.RangeError{Op: "remove line", What: "line", Value: index, Limit: d.count - 1}
	}
	line := d.lines[index]
	if mergeColumn < 0 || mergeColumn > line.Len() {
		return 0, &buffer.RangeError{Op: "remove line", What: "column", Value: mergeColumn, Limit: line.Len()}
	}
	prev := d.lines[index-1]
	merge := prev.MoveCursorToEnd()
	if mergeColumn < line.Len() {
		if err := line.MoveCursorTo(mergeColumn); err != nil {
			return 0, err
		}
		line.CopyInto(prev)
	}

	copy(d.lines[index:d.count-1], d.lines[index+1:d.count])
	d.count--
	d.lines[d.count] = nil

	if err := prev.MoveCursorTo(merge); err != nil {
		return 0, err
	}
	return merge, nil
}

// DeleteRange removes the text between two points, joining the first and last
// line when the range spans several lines. The points may be given in either
// order.
func (d *Document) DeleteRange(from, to Point) error {
	if to.Before(from) {
		from, to = to, from
	}
	if err := d.checkPoint("delete range", from); err != nil {
		return err
	}
	if err := d.checkPoint("delete range", to); err != nil {
		return err
	}
	if from.Line == to.Line {
		lb := d.lines[from.Line]
		if err := lb.MoveCursorTo(from.Column); err != nil {
			return err
		}
		for range to.Column - from.Column {
			lb.DeleteForward()
		}
		return nil
	}

	first := d.lines[from.Line]
	if err := first.MoveCursorTo(from.Column); err != nil {
		return err
	}
	first.Truncate()

	if n := to.Line - from.Line - 1; n > 0 {
		copy(d.lines[from.Line+1:], d.lines[to.Line:d.count])
		clear(d.lines[d.count-n : d.count])
		d.count -= n
	}
	_, err := d.RemoveLineAt(from.Line+1, to.Column)
	return err
}
