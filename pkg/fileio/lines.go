package fileio

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"example.com/gapedit/pkg/document"
)

// LineEnding is the terminator written after each line on save.
type LineEnding int

const (
	LF LineEnding = iota
	CRLF
)

// String returns the terminator bytes.
func (e LineEnding) String() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// Name returns a short label for status lines.
func (e LineEnding) Name() string {
	if e == CRLF {
		return "CRLF"
	}
	return "LF"
}

// Detect reports CRLF when the first line break in data is "\r\n".
func Detect(data []byte) LineEnding {
	i := bytes.IndexByte(data, '\n')
	if i > 0 && data[i-1] == '\r' {
		return CRLF
	}
	return LF
}

// ReadLines splits r into lines. "\n" and "\r\n" both terminate a line and
// are not included. A final terminator does not start an extra line, and
// empty input yields a single empty line.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<30)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines, nil
}

// WriteDocument streams every line of doc to w, each followed by ending.
// Lines are written straight from their gap buffers.
func WriteDocument(w io.Writer, doc *document.Document, ending LineEnding) error {
	bw := bufio.NewWriter(w)
	term := ending.String()
	for _, line := range doc.All() {
		if _, err := line.WriteTo(bw); err != nil {
			return err
		}
		if _, err := bw.WriteString(term); err != nil {
			return err
		}
	}
	return bw.Flush()
}
