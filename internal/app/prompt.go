package app

import (
	"fmt"
	"strconv"
	"strings"

	"example.com/gapedit/pkg/editor"
	"example.com/gapedit/pkg/search"
	"github.com/gdamore/tcell/v2"
)

// runPrompt reads a line of input in the mini-buffer. Enter accepts and Esc
// cancels. onChange, if set, runs after every edit and may return a second
// mini-buffer line to show under the input.
func (r *Runner) runPrompt(label, input string, onChange func(string) string) (string, bool) {
	if r.Screen == nil && r.EventCh == nil {
		return "", false
	}
	defer r.clearMiniBuffer()
	hint := ""
	if onChange != nil {
		hint = onChange(input)
	}
	for {
		lines := []string{label + input}
		if hint != "" {
			lines = append(lines, hint)
		}
		r.setMiniBuffer(lines)
		r.draw()

		raw := r.waitEvent()
		if raw == nil {
			return "", false
		}
		ev, ok := raw.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case ev.Key() == tcell.KeyEsc:
			return "", false
		case ev.Key() == tcell.KeyEnter:
			return input, true
		case ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
			if len(input) == 0 {
				continue
			}
			input = input[:len(input)-1]
		case ev.Key() == tcell.KeyRune && ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0:
			if ch := ev.Rune(); ch <= 0xff {
				input += string([]byte{byte(ch)})
			}
		default:
			continue
		}
		if onChange != nil {
			hint = onChange(input)
		}
	}
}

// runSearchPrompt highlights matches while the query is typed and selects the
// next one at or after the cursor on Enter.
func (r *Runner) runSearchPrompt() {
	sess := r.session()
	defer func() { r.highlights = nil }()
	query, ok := r.runPrompt("Search: ", r.lastQuery, func(q string) string {
		r.highlights = search.FindAll(sess.Document().Lines(), q)
		switch {
		case q == "":
			return ""
		case len(r.highlights) == 0:
			return "No matches"
		default:
			return fmt.Sprintf("%d matches", len(r.highlights))
		}
	})
	if !ok || query == "" {
		return
	}
	r.lastQuery = query
	if !sess.FindNext(query) {
		r.Message = "No matches for " + strconv.Quote(query)
	}
}

// runGoToPrompt moves the cursor to the start of a 1-based line number.
func (r *Runner) runGoToPrompt() {
	input, ok := r.runPrompt("Go to line: ", "", nil)
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 {
		r.Message = "invalid line number: " + input
		return
	}
	r.session().SetCursor(editor.Point{Line: n - 1})
}

// runOpenPrompt opens a file in a new buffer. A path that does not exist
// yet opens an empty buffer that is created on save.
func (r *Runner) runOpenPrompt() {
	path, ok := r.runPrompt("Open: ", "", nil)
	if !ok || path == "" {
		return
	}
	created := !r.Editor.Store().Exists(path)
	if err := r.LoadFile(path); err != nil {
		r.Message = err.Error()
		return
	}
	if created {
		r.Message = "New file: " + path
	}
}

// runSaveAsPrompt asks for a path and saves the focused buffer there. The
// prompt stays open with the error shown until a save succeeds or Esc.
func (r *Runner) runSaveAsPrompt() {
	input := r.buffer().FilePath
	errMsg := ""
	for {
		path, ok := r.runPrompt("Save As: ", input, func(string) string { return errMsg })
		if !ok {
			return
		}
		if path == "" {
			errMsg = "path required"
			continue
		}
		if err := r.SaveAs(path); err != nil {
			input, errMsg = path, err.Error()
			continue
		}
		r.Message = "Saved " + path
		return
	}
}

// runQuitPrompt shows a confirmation mini-buffer when there are unsaved
// changes. It returns true if the user confirms quit.
func (r *Runner) runQuitPrompt() bool {
	if r.Screen == nil && r.EventCh == nil {
		return true
	}
	defer r.clearMiniBuffer()
	r.setMiniBuffer([]string{"Unsaved changes. Quit without saving? (y/n)"})
	r.draw()
	for {
		raw := r.waitEvent()
		if raw == nil {
			return true
		}
		ev, ok := raw.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case ev.Key() == tcell.KeyEsc || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N')):
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'):
			return true
		}
	}
}
