package search

import (
	"testing"

	"example.com/gapedit/pkg/document"
	"github.com/stretchr/testify/require"
)

func TestFindAll(t *testing.T) {
	lines := []string{"hello world hello", "", "say hello"}
	r := FindAll(lines, "hello")
	require.Equal(t, []Match{
		{Line: 0, Start: 0, End: 5},
		{Line: 0, Start: 12, End: 17},
		{Line: 2, Start: 4, End: 9},
	}, r)
}

func TestFindAllNonOverlapping(t *testing.T) {
	r := FindAll([]string{"aaaa"}, "aa")
	require.Equal(t, []Match{{Line: 0, Start: 0, End: 2}, {Line: 0, Start: 2, End: 4}}, r)
}

func TestFindAllEmptyQuery(t *testing.T) {
	require.Nil(t, FindAll([]string{"abc"}, ""))
	require.Nil(t, FindAll([]string{"abc"}, "a\nb"))
}

func TestNext(t *testing.T) {
	ranges := FindAll([]string{"hello world hello", "hello"}, "hello")
	require.Equal(t, 0, Next(ranges, document.Point{}))
	require.Equal(t, 1, Next(ranges, document.Point{Line: 0, Column: 1}))
	require.Equal(t, 1, Next(ranges, document.Point{Line: 0, Column: 12}))
	require.Equal(t, 2, Next(ranges, document.Point{Line: 0, Column: 13}))
	// past last match should wrap to 0
	require.Equal(t, 0, Next(ranges, document.Point{Line: 1, Column: 1}))
	require.Equal(t, -1, Next(nil, document.Point{}))
}

func TestPrev(t *testing.T) {
	ranges := FindAll([]string{"ab ab", "ab"}, "ab")
	require.Equal(t, 2, Prev(ranges, document.Point{}))
	require.Equal(t, 0, Prev(ranges, document.Point{Line: 0, Column: 3}))
	require.Equal(t, 1, Prev(ranges, document.Point{Line: 1, Column: 0}))
	require.Equal(t, -1, Prev(nil, document.Point{}))
}

func TestOnLine(t *testing.T) {
	ranges := FindAll([]string{"x", "xx", "", "x"}, "x")
	require.Len(t, OnLine(ranges, 1), 2)
	require.Empty(t, OnLine(ranges, 2))
	require.Equal(t, []Match{{Line: 3, Start: 0, End: 1}}, OnLine(ranges, 3))
}
