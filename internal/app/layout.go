package app

import "github.com/mattn/go-runewidth"

// cellLayout maps byte columns to terminal cells. Every byte is shown as the
// Latin-1 rune of the same value; tabs expand to the next tab stop and
// control bytes are drawn as a one-cell placeholder.
type cellLayout struct {
	tabWidth int
	cond     *runewidth.Condition
}

// placeholder stands in for control bytes on screen.
const placeholder = '?'

func newCellLayout(tabWidth int) cellLayout {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	return cellLayout{tabWidth: max(tabWidth, 1), cond: cond}
}

func isControl(b byte) bool {
	return b < 0x20 || (b >= 0x7f && b < 0xa0)
}

// glyph returns the rune drawn for b and its width when it starts at cell x.
func (c cellLayout) glyph(b byte, x int) (rune, int) {
	switch {
	case b == '\t':
		return ' ', c.tabWidth - x%c.tabWidth
	case isControl(b):
		return placeholder, 1
	}
	r := rune(b)
	return r, max(c.cond.RuneWidth(r), 1)
}

// ColumnX returns the cell where column starts.
func (c cellLayout) ColumnX(line string, column int) int {
	x := 0
	for i := 0; i < column && i < len(line); i++ {
		_, w := c.glyph(line[i], x)
		x += w
	}
	return x
}

// ResolveColumn returns the column whose glyph is nearest to targetX: a
// glyph claims targetX once its horizontal midpoint lies past it.
func (c cellLayout) ResolveColumn(line string, targetX int) int {
	x := 0
	for i := 0; i < len(line); i++ {
		_, w := c.glyph(line[i], x)
		if 2*x+w > 2*targetX {
			return i
		}
		x += w
	}
	return len(line)
}
