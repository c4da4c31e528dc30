package search

import (
	"strings"

	"example.com/gapedit/pkg/document"
)

// Match is a half-open column range [Start, End) on one line.
// Queries never contain line breaks, so a match never spans lines.
type Match struct {
	Line  int
	Start int
	End   int
}

// Pos returns the position where the match begins.
func (m Match) Pos() document.Point {
	return document.Point{Line: m.Line, Column: m.Start}
}

// FindAll returns all non-overlapping occurrences of query in lines, in
// document order. An empty query returns nil.
func FindAll(lines []string, query string) []Match {
	if query == "" || strings.Contains(query, "\n") {
		return nil
	}
	var res []Match
	for i, text := range lines {
		off := 0
		for {
			idx := strings.Index(text[off:], query)
			if idx < 0 {
				break
			}
			start := off + idx
			end := start + len(query)
			res = append(res, Match{Line: i, Start: start, End: end})
			off = end
		}
	}
	return res
}

// Next returns the index in matches of the first match starting at or after
// p. If p is past all matches, it wraps and returns 0. Returns -1 if there
// are no matches.
func Next(matches []Match, p document.Point) int {
	if len(matches) == 0 {
		return -1
	}
	for i, m := range matches {
		if !m.Pos().Before(p) {
			return i
		}
	}
	// wrap
	return 0
}

// Prev returns the index of the last match starting strictly before p,
// wrapping to the last match. Returns -1 if there are no matches.
func Prev(matches []Match, p document.Point) int {
	if len(matches) == 0 {
		return -1
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].Pos().Before(p) {
			return i
		}
	}
	return len(matches) - 1
}

// OnLine returns the matches that fall on line. matches must be in document
// order, as FindAll returns them.
func OnLine(matches []Match, line int) []Match {
	lo := 0
	for lo < len(matches) && matches[lo].Line < line {
		lo++
	}
	hi := lo
	for hi < len(matches) && matches[hi].Line == line {
		hi++
	}
	return matches[lo:hi]
}
