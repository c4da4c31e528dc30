package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// ParseKeybinding converts a textual key description into a Keybinding.
// Accepted forms are Ctrl+<letter>, Alt+<letter> and F1 through F12.
func ParseKeybinding(s string) (Keybinding, error) {
	if n, ok := functionKey(s); ok {
		return Keybinding{Key: tcell.KeyF1 + tcell.Key(n-1)}, nil
	}
	mod, key, ok := strings.Cut(s, "+")
	if !ok {
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	var mask tcell.ModMask
	switch strings.ToLower(mod) {
	case "ctrl":
		mask = tcell.ModCtrl
	case "alt":
		mask = tcell.ModAlt
	default:
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	key = strings.ToLower(key)
	if len(key) != 1 || key[0] < 'a' || key[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: rune(key[0]), Mod: mask}, nil
}

func functionKey(s string) (int, bool) {
	if len(s) < 2 || (s[0] != 'F' && s[0] != 'f') {
		return 0, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return n, true
}

func mustParse(s string) Keybinding {
	kb, err := ParseKeybinding(s)
	if err != nil {
		panic(err)
	}
	return kb
}

// String returns the binding in the form ParseKeybinding accepts.
func (k Keybinding) String() string {
	switch {
	case k.Key >= tcell.KeyF1 && k.Key <= tcell.KeyF12:
		return fmt.Sprintf("F%d", k.Key-tcell.KeyF1+1)
	case k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl:
		return "Ctrl+" + strings.ToUpper(string(k.Rune))
	case k.Key == tcell.KeyRune && k.Mod == tcell.ModAlt:
		return "Alt+" + strings.ToUpper(string(k.Rune))
	}
	return fmt.Sprintf("Key(%d)", k.Key)
}

// Matches reports whether ev is this key combination. Terminals deliver
// Ctrl+<letter> either as a modified rune or as the matching control key,
// so both forms match a Ctrl binding.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key == ev.Key() && k.Rune == ev.Rune() && k.Mod == ev.Modifiers() {
		return true
	}
	if k.Key != tcell.KeyRune || k.Mod != tcell.ModCtrl {
		return false
	}
	return ev.Key() == tcell.KeyCtrlA+tcell.Key(k.Rune-'a')
}
