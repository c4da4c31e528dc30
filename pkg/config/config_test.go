package config

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestParseKeybinding(t *testing.T) {
	kb, err := ParseKeybinding("Ctrl+X")
	require.NoError(t, err)
	require.True(t, kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)))
	require.True(t, kb.Matches(tcell.NewEventKey(tcell.KeyCtrlX, 0, tcell.ModCtrl)))
	require.False(t, kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	require.Equal(t, "Ctrl+X", kb.String())
}

func TestParseKeybinding_AltAndFunctionKeys(t *testing.T) {
	kb, err := ParseKeybinding("alt+v")
	require.NoError(t, err)
	require.True(t, kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModAlt)))
	require.False(t, kb.Matches(tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModCtrl)))
	require.Equal(t, "Alt+V", kb.String())

	kb, err = ParseKeybinding("F5")
	require.NoError(t, err)
	require.True(t, kb.Matches(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)))
	require.Equal(t, "F5", kb.String())
}

func TestParseKeybinding_Invalid(t *testing.T) {
	for _, s := range []string{"Ctrl+", "Meta+X", "Ctrl+1", "X", "F13", "F0"} {
		_, err := ParseKeybinding(s)
		require.Error(t, err, s)
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "/home/u/.gapedit/config.yaml")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Len(t, cfg.Commands(), 11)
}

func TestLoadConfigRemap(t *testing.T) {
	mem := afero.NewMemMapFs()
	data := []byte("keymap:\n  quit: Ctrl+X\ntab_width: 8\ntheme: dark\n")
	require.NoError(t, afero.WriteFile(mem, "/c.yaml", data, 0o644))

	cfg, err := Load(mem, "/c.yaml")
	require.NoError(t, err)
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl)
	require.True(t, cfg.Keymap["quit"].Matches(ev))
	require.True(t, cfg.Keymap["save"].Matches(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)))
	require.Equal(t, 8, cfg.TabWidth)
	require.Equal(t, DefaultLineCapacity, cfg.LineCapacity)

	th, err := cfg.Theme(mem)
	require.NoError(t, err)
	require.Equal(t, BuiltinThemes["dark"], th)
}

func TestParseRejectsBadValues(t *testing.T) {
	_, err := Parse([]byte("keymap:\n  quit: Meta+Q\n"))
	require.ErrorContains(t, err, "keymap quit")
	_, err = Parse([]byte("tab_width: 0\n"))
	require.Error(t, err)
	_, err = Parse([]byte("line_capacity: -1\n"))
	require.Error(t, err)
	_, err = Parse([]byte("keymap: [\n"))
	require.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.TabWidth = 2
	cfg.Keymap["quit"] = mustParse("Ctrl+E")
	data, err := cfg.Marshal()
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}

func TestDefaultPath(t *testing.T) {
	require.Equal(t, "", DefaultPath(""))
	require.Equal(t, "/home/u/.gapedit/config.yaml", DefaultPath("/home/u"))
}
