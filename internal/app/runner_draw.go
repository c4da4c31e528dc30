package app

import (
	"fmt"

	"example.com/gapedit/pkg/editor"
	"example.com/gapedit/pkg/search"
	"github.com/gdamore/tcell/v2"
)

var helpLines = []string{
	"Help:",
	"- F1: Show this help",
	"- Ctrl+Q: Quit (asks when there are unsaved changes)",
	"- Ctrl+S: Save (Save As if no file)",
	"- Ctrl+O: Open file",
	"- Ctrl+N / Ctrl+P: Next / previous buffer",
	"- Ctrl+W: Search",
	"- Ctrl+G: Go to line",
	"- Ctrl+A: Select all",
	"- Ctrl+C / Ctrl+X / Ctrl+V: Copy / Cut / Paste",
	"- Alt+V: Cycle clipboard entries",
	"- Arrows, Home/End, PgUp/PgDn: Move (Shift extends selection)",
	"- Ctrl+Left/Right: Move by word",
	"- Enter: New line; Backspace/Delete: Remove",
}

func drawHelp(s tcell.Screen, style tcell.Style) {
	width, height := s.Size()
	s.Fill(' ', style)
	y := (height - len(helpLines)) / 2
	for i, line := range helpLines {
		drawText(s, (width-len(line))/2, y+i, width, line, style)
	}
	s.Show()
}

// drawText writes text starting at cell x of row y, clipped to width.
func drawText(s tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= width {
			break
		}
		if x >= 0 {
			s.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

func (r *Runner) textHeight() int {
	if r.Screen == nil {
		return 1
	}
	_, height := r.Screen.Size()
	return max(height-1-len(r.MiniBuf), 1)
}

// ensureCursorVisible scrolls so the cursor cell is inside a width x height
// viewport.
func (r *Runner) ensureCursorVisible(width, height int) {
	sess := r.session()
	c := sess.Cursor()
	if c.Line < r.TopLine {
		r.TopLine = c.Line
	}
	if c.Line >= r.TopLine+height {
		r.TopLine = c.Line - height + 1
	}
	x := r.layout.ColumnX(sess.Document().LineText(c.Line), c.Column)
	if x < r.LeftX {
		r.LeftX = x
	}
	if x >= r.LeftX+width {
		r.LeftX = x - width + 1
	}
}

type lineStyles struct {
	base, cursor, selection, match tcell.Style
}

func (r *Runner) styles() lineStyles {
	th := r.Theme
	return lineStyles{
		base:      th.Text.Style(),
		cursor:    th.Cursor.Style(),
		selection: th.Selection.Style(),
		match:     th.Match.Style(),
	}
}

// draw renders the focused buffer, the mini-buffer and the status bar.
func (r *Runner) draw() {
	if r.Screen == nil {
		return
	}
	st := r.styles()
	if r.ShowHelp {
		drawHelp(r.Screen, st.base)
		return
	}
	s := r.Screen
	width, height := s.Size()
	textH := max(height-1-len(r.MiniBuf), 0)
	sess := r.session()
	doc := sess.Document()
	r.ensureCursorVisible(width, max(textH, 1))

	s.Fill(' ', st.base)
	for row := 0; row < textH && r.TopLine+row < doc.LineCount(); row++ {
		line := r.TopLine + row
		r.drawLine(s, row, width, line, doc.LineText(line), sess, st)
	}

	mini := r.Theme.Prompt.Style()
	for i, line := range r.MiniBuf {
		y := height - 1 - len(r.MiniBuf) + i
		for x := drawText(s, 0, y, width, line, mini); x < width; x++ {
			s.SetContent(x, y, ' ', nil, mini)
		}
	}

	status := r.Theme.Status.Style()
	for x := drawText(s, 0, height-1, width, r.statusText(), status); x < width; x++ {
		s.SetContent(x, height-1, ' ', nil, status)
	}
	s.Show()
}

// drawLine renders one document line at screen row y, shifted left by LeftX.
func (r *Runner) drawLine(s tcell.Screen, y, width, line int, text string, sess *editor.Session, st lineStyles) {
	cur := sess.Cursor()
	start, end := sess.Selection().Range()
	selected := func(col int) bool {
		p := editor.Point{Line: line, Column: col}
		return sess.HasSelection() && !p.Before(start) && p.Before(end)
	}
	matches := search.OnLine(r.highlights, line)
	inMatch := func(col int) bool {
		for _, m := range matches {
			if col >= m.Start && col < m.End {
				return true
			}
		}
		return false
	}

	x := 0
	for col := 0; col < len(text); col++ {
		ch, w := r.layout.glyph(text[col], x)
		style := st.base
		switch {
		case line == cur.Line && col == cur.Column:
			style = st.cursor
		case selected(col):
			style = st.selection
		case inMatch(col):
			style = st.match
		}
		for i := range w {
			sx := x + i - r.LeftX
			if sx >= 0 && sx < width {
				s.SetContent(sx, y, ch, nil, style)
			}
			ch = ' '
		}
		x += w
		if x-r.LeftX >= width {
			return
		}
	}
	// the cell after the last unit shows the cursor or a selected line break
	sx := x - r.LeftX
	if sx < 0 || sx >= width {
		return
	}
	switch {
	case line == cur.Line && cur.Column == len(text):
		s.SetContent(sx, y, ' ', nil, st.cursor)
	case selected(len(text)):
		s.SetContent(sx, y, ' ', nil, st.selection)
	}
}

func (r *Runner) statusText() string {
	bs := r.buffer()
	name := bs.FilePath
	if name == "" {
		name = "[No File]"
	}
	if bs.Dirty() {
		name += " [+]"
	}
	c := bs.Session.Cursor()
	text := fmt.Sprintf("%s  Ln %d, Col %d  %s", name, c.Line+1, c.Column+1, bs.Ending.Name())
	if n := len(r.Editor.Buffers); n > 1 {
		text += fmt.Sprintf("  [%d/%d]", r.Editor.Current+1, n)
	}
	if r.Message != "" {
		text += "  " + r.Message
	}
	return text
}
