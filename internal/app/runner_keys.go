package app

import (
	"fmt"

	"example.com/gapedit/pkg/config"
	"github.com/gdamore/tcell/v2"
)

// handleKeyEvent processes a key event. It returns true if the event signals
// the runner should quit.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) bool {
	s := r.session()
	r.Message = ""
	switch {
	case r.matchCommand(ev, "quit"):
		if r.Editor.AnyDirty() && !r.runQuitPrompt() {
			return false
		}
		return true
	case r.matchCommand(ev, "save"):
		r.saveOrPrompt()
		return false
	case r.matchCommand(ev, "search"):
		r.runSearchPrompt()
		return false
	case r.matchCommand(ev, "select_all"):
		s.SelectAll()
		return false
	case r.matchCommand(ev, "copy"):
		r.copySelection()
		return false
	case r.matchCommand(ev, "cut"):
		r.cutSelection()
		return false
	case r.matchCommand(ev, "paste"):
		r.paste()
		return false
	case r.matchCommand(ev, "open"):
		r.runOpenPrompt()
		return false
	case r.matchCommand(ev, "goto"):
		r.runGoToPrompt()
		return false
	case r.matchCommand(ev, "next_buffer"):
		r.Editor.Next()
		r.resetScroll()
		return false
	case r.matchCommand(ev, "prev_buffer"):
		r.Editor.Prev()
		r.resetScroll()
		return false
	}

	mod := ev.Modifiers()
	shift := mod&tcell.ModShift != 0
	ctrl := mod&tcell.ModCtrl != 0
	switch ev.Key() {
	case tcell.KeyF1:
		r.ShowHelp = true
	case tcell.KeyLeft:
		if ctrl {
			s.MoveWordLeft(shift)
		} else {
			s.MoveLeft(shift)
		}
	case tcell.KeyRight:
		if ctrl {
			s.MoveWordRight(shift)
		} else {
			s.MoveRight(shift)
		}
	case tcell.KeyUp:
		s.MoveUp(shift)
	case tcell.KeyDown:
		s.MoveDown(shift)
	case tcell.KeyHome:
		s.MoveHome(shift)
	case tcell.KeyEnd:
		s.MoveEnd(shift)
	case tcell.KeyPgUp:
		s.PageUp(r.textHeight()-1, shift)
	case tcell.KeyPgDn:
		s.PageDown(r.textHeight()-1, shift)
	case tcell.KeyEnter:
		r.edit("enter", s.Enter())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		r.edit("backspace", s.Backspace())
	case tcell.KeyDelete:
		r.edit("delete", s.Delete())
	case tcell.KeyTab:
		r.edit("type", s.Type("\t"))
	case tcell.KeyRune:
		switch {
		case mod == tcell.ModAlt && ev.Rune() == 'v':
			r.rotateClipboard()
		case mod&(tcell.ModCtrl|tcell.ModAlt) == 0:
			r.typeRune(ev.Rune())
		}
	}
	return false
}

func (r *Runner) matchCommand(ev *tcell.EventKey, name string) bool {
	if r.Keymap == nil {
		r.Keymap = config.DefaultKeymap()
	}
	kb, ok := r.Keymap[name]
	if !ok {
		return false
	}
	return kb.Matches(ev)
}

// edit records the outcome of an edit intent.
func (r *Runner) edit(action string, err error) {
	r.highlights = nil
	if err != nil {
		r.Message = err.Error()
		r.logEvent("edit.error", map[string]any{"action": action, "error": err.Error()})
	}
}

// typeRune inserts one unit. Only runes that fit in a single byte can be
// stored; they are taken as Latin-1.
func (r *Runner) typeRune(ch rune) {
	if ch < 0 || ch > 0xff {
		r.Message = fmt.Sprintf("cannot insert U+%04X", ch)
		return
	}
	r.edit("type", r.session().Type(string([]byte{byte(ch)})))
}

func (r *Runner) copySelection() {
	text := r.session().Copy()
	if text == "" {
		return
	}
	r.Clipboard.Push(text)
	r.Message = fmt.Sprintf("Copied %d bytes", len(text))
	r.logEvent("action", map[string]any{"name": "copy", "bytes": len(text)})
}

func (r *Runner) cutSelection() {
	text, err := r.session().Cut()
	r.edit("cut", err)
	if err != nil || text == "" {
		return
	}
	r.Clipboard.Push(text)
	r.logEvent("action", map[string]any{"name": "cut", "bytes": len(text)})
}

func (r *Runner) paste() {
	text := r.Clipboard.Current()
	if text == "" {
		return
	}
	r.edit("paste", r.session().Paste(text))
}

// rotateClipboard makes the next older entry the one Paste uses.
func (r *Runner) rotateClipboard() {
	if !r.Clipboard.Rotate() {
		return
	}
	preview := r.Clipboard.Current()
	if len(preview) > 40 {
		preview = preview[:40] + "…"
	}
	r.Message = fmt.Sprintf("Clipboard: %q", preview)
}

func (r *Runner) resetScroll() {
	r.TopLine, r.LeftX = 0, 0
	r.highlights = nil
}
