package buffer

import (
	"io"
)

// MinCapacity is the allocation used for a new line when no capacity is given.
const MinCapacity = 1024

// LineBuffer is a gap buffer holding a single line of single-byte units.
// The backing slice is split into [0,cursor) text before the gap,
// [cursor,gapEnd) unused capacity and [gapEnd,len(buf)) text after the gap.
type LineBuffer struct {
	buf    []byte
	cursor int
	gapEnd int
}

// NewLineBuffer creates an empty LineBuffer whose gap spans the whole
// allocation. A capacity below 1 selects MinCapacity.
func NewLineBuffer(capacity int) *LineBuffer {
	if capacity < 1 {
		capacity = MinCapacity
	}
	return &LineBuffer{buf: make([]byte, capacity), gapEnd: capacity}
}

// NewLineBufferFromString initializes a LineBuffer with s before the gap.
func NewLineBufferFromString(s string) *LineBuffer {
	b := NewLineBuffer(0)
	b.InsertString(s)
	return b
}

// grow doubles the allocation and moves the post-gap text so that it still
// ends at the (new) end of the slice.
func (b *LineBuffer) grow() {
	oldCap := len(b.buf)
	newCap := oldCap * 2
	if newCap == 0 {
		newCap = MinCapacity
	}
	next := make([]byte, newCap)
	copy(next, b.buf[:b.cursor])
	suffix := oldCap - b.gapEnd
	copy(next[newCap-suffix:], b.buf[b.gapEnd:])
	b.buf = next
	b.gapEnd = newCap - suffix
}

// Insert writes p at the cursor one unit at a time, growing whenever the gap
// is exhausted. The cursor ends immediately after the inserted text.
func (b *LineBuffer) Insert(p []byte) {
	for _, c := range p {
		if b.cursor == b.gapEnd {
			b.grow()
		}
		b.buf[b.cursor] = c
		b.cursor++
	}
}

// InsertString is Insert for a string.
func (b *LineBuffer) InsertString(s string) {
	for i := 0; i < len(s); i++ {
		if b.cursor == b.gapEnd {
			b.grow()
		}
		b.buf[b.cursor] = s[i]
		b.cursor++
	}
}

// DeleteBackward discards the unit just before the gap. It reports false at
// the start of the line.
func (b *LineBuffer) DeleteBackward() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

// DeleteForward discards the unit just after the gap. It reports false at the
// end of the line.
func (b *LineBuffer) DeleteForward() bool {
	if b.gapEnd == len(b.buf) {
		return false
	}
	b.gapEnd++
	return true
}

// Truncate discards everything after the cursor.
func (b *LineBuffer) Truncate() {
	b.gapEnd = len(b.buf)
}

// MoveLeft moves the unit before the gap to the other side of it.
func (b *LineBuffer) MoveLeft() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	b.gapEnd--
	b.buf[b.gapEnd] = b.buf[b.cursor]
	return true
}

// MoveRight moves the unit after the gap to the other side of it.
func (b *LineBuffer) MoveRight() bool {
	if b.gapEnd == len(b.buf) {
		return false
	}
	b.buf[b.cursor] = b.buf[b.gapEnd]
	b.cursor++
	b.gapEnd++
	return true
}

// Len returns the number of used units (excluding the gap).
func (b *LineBuffer) Len() int {
	return b.cursor + len(b.buf) - b.gapEnd
}

// Cursor returns the logical offset of the gap.
func (b *LineBuffer) Cursor() int { return b.cursor }

// Cap returns the allocated capacity.
func (b *LineBuffer) Cap() int { return len(b.buf) }

// MoveCursorTo moves the gap to the logical offset pos. The cost is linear in
// the distance moved. Positions outside [0, Len()] are rejected and leave the
// buffer untouched.
func (b *LineBuffer) MoveCursorTo(pos int) error {
	if pos < 0 || pos > b.Len() {
		return &RangeError{Op: "move", What: "position", Value: pos, Limit: b.Len()}
	}
	for b.cursor < pos {
		b.MoveRight()
	}
	for b.cursor > pos {
		b.MoveLeft()
	}
	return nil
}

// MoveCursorToEnd moves the gap after the last unit and returns that offset.
func (b *LineBuffer) MoveCursorToEnd() int {
	end := b.Len()
	_ = b.MoveCursorTo(end)
	return end
}

// CopyInto appends the text after b's gap into dst at dst's cursor.
func (b *LineBuffer) CopyInto(dst *LineBuffer) {
	dst.Insert(b.buf[b.gapEnd:])
}

// ByteAt returns the unit at logical index i, or 0 when i is out of range.
func (b *LineBuffer) ByteAt(i int) byte {
	if i < 0 || i >= b.Len() {
		return 0
	}
	if i < b.cursor {
		return b.buf[i]
	}
	return b.buf[b.gapEnd+(i-b.cursor)]
}

// Slice returns a copy of the units in [start,end), clamped to the line.
func (b *LineBuffer) Slice(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > b.Len() {
		end = b.Len()
	}
	if start >= end {
		return []byte{}
	}
	out := make([]byte, 0, end-start)
	if start < b.cursor {
		out = append(out, b.buf[start:min(end, b.cursor)]...)
	}
	if end > b.cursor {
		from := max(start, b.cursor) - b.cursor + b.gapEnd
		to := end - b.cursor + b.gapEnd
		out = append(out, b.buf[from:to]...)
	}
	return out
}

// Bytes returns a copy of the whole line.
func (b *LineBuffer) Bytes() []byte {
	out := make([]byte, 0, b.Len())
	out = append(out, b.buf[:b.cursor]...)
	return append(out, b.buf[b.gapEnd:]...)
}

// String returns the line contents.
func (b *LineBuffer) String() string {
	return string(b.Bytes())
}

// WriteTo writes the line contents to w without moving the gap.
func (b *LineBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf[:b.cursor])
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(b.buf[b.gapEnd:])
	return int64(n + m), err
}
