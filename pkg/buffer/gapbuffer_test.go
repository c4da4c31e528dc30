package buffer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func requireGapInvariant(t require.TestingT, b *LineBuffer) {
	require.True(t, 0 <= b.cursor && b.cursor <= b.gapEnd && b.gapEnd <= len(b.buf),
		"gap invariant broken: cursor=%d gapEnd=%d length=%d", b.cursor, b.gapEnd, len(b.buf))
}

func TestLineBuffer_New(t *testing.T) {
	b := NewLineBuffer(0)
	require.Equal(t, MinCapacity, b.Cap())
	require.Equal(t, 0, b.Cursor())
	require.Equal(t, MinCapacity, b.gapEnd)
	require.Equal(t, 0, b.Len())
	require.Equal(t, "", b.String())
}

func TestLineBuffer_InsertDelete(t *testing.T) {
	g := NewLineBufferFromString("Hello World")
	if g.String() != "Hello World" {
		t.Fatalf("expected initial content 'Hello World', got %q", g.String())
	}
	// insert comma after Hello
	if err := g.MoveCursorTo(5); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	g.InsertString(",")
	if g.String() != "Hello, World" {
		t.Fatalf("expected 'Hello, World', got %q", g.String())
	}
	if g.Cursor() != 6 {
		t.Fatalf("expected cursor 6, got %d", g.Cursor())
	}
	// delete the comma
	if !g.DeleteBackward() {
		t.Fatalf("delete reported nothing removed")
	}
	if g.String() != "Hello World" {
		t.Fatalf("expected 'Hello World' after delete, got %q", g.String())
	}
}

func TestLineBuffer_DeleteBackwardAtStart(t *testing.T) {
	g := NewLineBufferFromString("abc")
	require.NoError(t, g.MoveCursorTo(0))
	require.False(t, g.DeleteBackward())
	require.Equal(t, "abc", g.String())
}

func TestLineBuffer_DeleteForward(t *testing.T) {
	g := NewLineBufferFromString("abc")
	require.NoError(t, g.MoveCursorTo(1))
	require.True(t, g.DeleteForward())
	require.Equal(t, "ac", g.String())
	g.MoveCursorToEnd()
	require.False(t, g.DeleteForward())
}

func TestLineBuffer_GrowPreservesSuffix(t *testing.T) {
	g := NewLineBuffer(4)
	g.InsertString("abcd")
	require.Equal(t, 4, g.Cap())
	require.NoError(t, g.MoveCursorTo(1))
	g.InsertString("XYZ")
	require.Equal(t, 8, g.Cap())
	require.Equal(t, "aXYZbcd", g.String())
	require.Equal(t, 4, g.Cursor())
	// suffix must still end at the allocation boundary
	require.Equal(t, "bcd", string(g.buf[g.gapEnd:]))
	requireGapInvariant(t, g)
}

func TestLineBuffer_GrowManyTimes(t *testing.T) {
	g := NewLineBuffer(1)
	long := strings.Repeat("0123456789", 300)
	g.InsertString(long)
	require.Equal(t, long, g.String())
	require.GreaterOrEqual(t, g.Cap(), len(long))
	requireGapInvariant(t, g)
}

func TestLineBuffer_MoveLeftRight(t *testing.T) {
	g := NewLineBufferFromString("ab")
	require.True(t, g.MoveLeft())
	require.Equal(t, 1, g.Cursor())
	require.True(t, g.MoveLeft())
	require.False(t, g.MoveLeft())
	require.Equal(t, "ab", g.String())
	require.True(t, g.MoveRight())
	require.True(t, g.MoveRight())
	require.False(t, g.MoveRight())
	require.Equal(t, 2, g.Cursor())
	require.Equal(t, "ab", g.String())
}

func TestLineBuffer_MoveCursorToRejectsOutOfRange(t *testing.T) {
	g := NewLineBufferFromString("abc")
	require.NoError(t, g.MoveCursorTo(1))

	err := g.MoveCursorTo(4)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfRange))
	var re *RangeError
	require.True(t, errors.As(err, &re))
	require.Equal(t, 4, re.Value)
	require.Equal(t, 3, re.Limit)
	require.Equal(t, 1, g.Cursor(), "rejected move must not change state")

	require.Error(t, g.MoveCursorTo(-1))
	require.Equal(t, 1, g.Cursor())
}

func TestLineBuffer_MoveCursorToIdempotent(t *testing.T) {
	g := NewLineBufferFromString("hello world")
	require.NoError(t, g.MoveCursorTo(4))
	snapshot := append([]byte(nil), g.buf...)
	gapEnd := g.gapEnd
	require.NoError(t, g.MoveCursorTo(4))
	require.Equal(t, 4, g.Cursor())
	require.Equal(t, gapEnd, g.gapEnd)
	require.Equal(t, snapshot, g.buf)
}

func TestLineBuffer_MoveCursorToEnd(t *testing.T) {
	g := NewLineBufferFromString("hello")
	require.NoError(t, g.MoveCursorTo(0))
	require.Equal(t, 5, g.MoveCursorToEnd())
	require.Equal(t, 5, g.Cursor())
	require.Equal(t, g.gapEnd, g.Cap())
}

func TestLineBuffer_CopyIntoAndTruncate(t *testing.T) {
	src := NewLineBufferFromString("hello world")
	require.NoError(t, src.MoveCursorTo(5))
	dst := NewLineBuffer(0)
	src.CopyInto(dst)
	src.Truncate()
	require.Equal(t, " world", dst.String())
	require.Equal(t, 6, dst.Cursor())
	require.Equal(t, "hello", src.String())
	requireGapInvariant(t, src)
	requireGapInvariant(t, dst)
}

func TestLineBuffer_SliceAcrossGap(t *testing.T) {
	g := NewLineBufferFromString("abcdef")
	require.NoError(t, g.MoveCursorTo(3))
	require.Equal(t, "bcde", string(g.Slice(1, 5)))
	require.Equal(t, "abc", string(g.Slice(-2, 3)))
	require.Equal(t, "def", string(g.Slice(3, 99)))
	require.Equal(t, "", string(g.Slice(4, 2)))
	require.Equal(t, byte('d'), g.ByteAt(3))
	require.Equal(t, byte(0), g.ByteAt(6))
}

func TestLineBuffer_WriteToDoesNotMoveGap(t *testing.T) {
	g := NewLineBufferFromString("abcdef")
	require.NoError(t, g.MoveCursorTo(2))
	var out bytes.Buffer
	n, err := g.WriteTo(&out)
	require.NoError(t, err)
	require.EqualValues(t, 6, n)
	require.Equal(t, "abcdef", out.String())
	require.Equal(t, 2, g.Cursor())
}

func TestLineBuffer_InsertDeleteRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := rapid.StringMatching(`[a-z ]{0,40}`).Draw(t, "initial")
		g := NewLineBufferFromString(initial)
		pos := rapid.IntRange(0, len(initial)).Draw(t, "pos")
		require.NoError(t, g.MoveCursorTo(pos))

		text := rapid.StringMatching(`[A-Z0-9]{0,64}`).Draw(t, "text")
		g.InsertString(text)
		for range len(text) {
			require.True(t, g.DeleteBackward())
		}
		require.Equal(t, len(initial), g.Len())
		require.Equal(t, initial, g.String())
	})
}

func TestLineBuffer_InvariantUnderRandomOps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := NewLineBuffer(rapid.IntRange(1, 8).Draw(t, "capacity"))
		var model []byte
		pos := 0
		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for range steps {
			switch rapid.IntRange(0, 5).Draw(t, "op") {
			case 0:
				s := rapid.StringMatching(`[a-z]{1,5}`).Draw(t, "s")
				g.InsertString(s)
				model = append(model[:pos], append([]byte(s), model[pos:]...)...)
				pos += len(s)
			case 1:
				if g.DeleteBackward() {
					model = append(model[:pos-1], model[pos:]...)
					pos--
				}
			case 2:
				if g.DeleteForward() {
					model = append(model[:pos], model[pos+1:]...)
				}
			case 3:
				if g.MoveLeft() {
					pos--
				}
			case 4:
				if g.MoveRight() {
					pos++
				}
			case 5:
				target := rapid.IntRange(0, len(model)).Draw(t, "target")
				require.NoError(t, g.MoveCursorTo(target))
				pos = target
			}
			requireGapInvariant(t, g)
			require.Equal(t, pos, g.Cursor())
			require.Equal(t, len(model), g.Len())
			require.Equal(t, string(model), g.String())
		}
	})
}
