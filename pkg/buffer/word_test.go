package buffer

import "testing"

func TestWordEndAtWordBoundary(t *testing.T) {
	g := NewLineBufferFromString("one two")
	if got := WordEnd(g, 3); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestWordEndInsideWord(t *testing.T) {
	g := NewLineBufferFromString("one")
	if got := WordEnd(g, 1); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestWordStart(t *testing.T) {
	g := NewLineBufferFromString("foo  bar_baz")
	if got := WordStart(g, 12); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := WordStart(g, 5); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := WordStart(g, 0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestWordMotionsIgnoreGapPosition(t *testing.T) {
	g := NewLineBufferFromString("alpha beta")
	if err := g.MoveCursorTo(3); err != nil {
		t.Fatalf("move: %v", err)
	}
	if got := WordEnd(g, 5); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := WordStart(g, 10); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
}
