package buffer

import "io"

// Reader is the read-only view of a line used by motions, layout code and
// the file writer. Offsets are logical (independent of the gap position).
type Reader interface {
	io.WriterTo
	Len() int
	ByteAt(i int) byte
}

var _ Reader = (*LineBuffer)(nil)
