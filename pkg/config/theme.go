package config

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Colors is the foreground and background of one screen role.
type Colors struct {
	FG tcell.Color
	BG tcell.Color
}

// Style returns c as a tcell style.
func (c Colors) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.FG).Background(c.BG)
}

// Theme assigns colors to each role the editor draws.
type Theme struct {
	Text      Colors
	Cursor    Colors
	Selection Colors
	Match     Colors
	Status    Colors
	Prompt    Colors
}

// DefaultTheme returns the built-in light-on-dark theme.
func DefaultTheme() Theme {
	return Theme{
		Text:      Colors{FG: tcell.ColorWhite, BG: tcell.ColorBlack},
		Cursor:    Colors{FG: tcell.ColorBlack, BG: tcell.ColorGreen},
		Selection: Colors{FG: tcell.ColorWhite, BG: tcell.ColorNavy},
		Match:     Colors{FG: tcell.ColorBlack, BG: tcell.ColorYellow},
		Status:    Colors{FG: tcell.ColorBlack, BG: tcell.ColorWhite},
		Prompt:    Colors{FG: tcell.ColorBlack, BG: tcell.ColorWhite},
	}
}

// TerminalTheme keeps the terminal's own foreground and background and only
// uses ANSI palette colors for highlights.
func TerminalTheme() Theme {
	return Theme{
		Text:      Colors{FG: tcell.ColorDefault, BG: tcell.ColorDefault},
		Cursor:    Colors{FG: tcell.ColorDefault, BG: tcell.ColorGreen},
		Selection: Colors{FG: tcell.ColorDefault, BG: tcell.ColorBlue},
		Match:     Colors{FG: tcell.ColorDefault, BG: tcell.ColorYellow},
		Status:    Colors{FG: tcell.ColorDefault, BG: tcell.ColorGray},
		Prompt:    Colors{FG: tcell.ColorDefault, BG: tcell.ColorGray},
	}
}

// BuiltinThemes holds the presets selectable by name.
var BuiltinThemes = map[string]Theme{
	"default":  DefaultTheme(),
	"terminal": TerminalTheme(),
	"dark": {
		Text:      Colors{FG: tcell.ColorWhite, BG: tcell.ColorBlack},
		Cursor:    Colors{FG: tcell.ColorBlack, BG: tcell.ColorDarkGreen},
		Selection: Colors{FG: tcell.ColorWhite, BG: tcell.ColorDarkSlateBlue},
		Match:     Colors{FG: tcell.ColorWhite, BG: tcell.ColorDarkOliveGreen},
		Status:    Colors{FG: tcell.ColorWhite, BG: tcell.ColorGray},
		Prompt:    Colors{FG: tcell.ColorWhite, BG: tcell.ColorGray},
	},
	"light": {
		Text:      Colors{FG: tcell.ColorBlack, BG: tcell.ColorWhite},
		Cursor:    Colors{FG: tcell.ColorWhite, BG: tcell.ColorDarkGreen},
		Selection: Colors{FG: tcell.ColorBlack, BG: tcell.ColorLightSteelBlue},
		Match:     Colors{FG: tcell.ColorBlack, BG: tcell.ColorGold},
		Status:    Colors{FG: tcell.ColorWhite, BG: tcell.ColorDimGray},
		Prompt:    Colors{FG: tcell.ColorWhite, BG: tcell.ColorDimGray},
	},
}

// ParseColor returns the color named by s, either a W3C name or #rrggbb.
// Unknown or empty names yield fallback.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	if c := tcell.GetColor(strings.ToLower(s)); c != tcell.ColorDefault {
		return c
	}
	return fallback
}
