package buffer

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is wrapped by every RangeError so callers can test with errors.Is.
var ErrOutOfRange = errors.New("out of range")

// RangeError reports an index or column outside the valid range of a line or
// document. It is a contract violation by the caller; the receiver is left
// unchanged.
type RangeError struct {
	Op    string // operation that rejected the value, e.g. "move"
	What  string // "position", "line", "column"
	Value int
	Limit int // inclusive upper bound that was in effect
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s %d out of range [0,%d]", e.Op, e.What, e.Value, e.Limit)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
