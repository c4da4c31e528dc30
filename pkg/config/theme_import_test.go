package config

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, name, data string) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, name, []byte(data), 0o644))
	return mem
}

func TestImportTheme_Base16(t *testing.T) {
	mem := writeTheme(t, "/base16.yaml", `
scheme: "base16-test"
base00: '181818'
base01: '282828'
base02: '383838'
base03: '585858'
base04: 'b8b8b8'
base05: 'd8d8d8'
base06: 'e8e8e8'
base07: 'f8f8f8'
base08: 'ab4642'
base09: 'dc9656'
base0A: 'f7ca88'
base0B: 'a1b56c'
base0C: '86c1b9'
base0D: '7cafc2'
base0E: 'ba8baf'
base0F: 'a16946'
`)
	th, err := ImportTheme(mem, "/base16.yaml")
	require.NoError(t, err)
	require.NotEqual(t, th.Text.FG, th.Text.BG)
	require.Equal(t, tcell.GetColor("#181818"), th.Text.BG)
	require.Equal(t, tcell.GetColor("#383838"), th.Selection.BG)
	require.Equal(t, tcell.GetColor("#f7ca88"), th.Match.BG)
}

func TestImportTheme_Alacritty(t *testing.T) {
	mem := writeTheme(t, "/alacritty.yml", `
colors:
  primary:
    background: '#1d1f21'
    foreground: '#c5c8c6'
  selection:
    background: 0x373b41
  normal:
    black:   '0x1d1f21'
    red:     '0xcc6666'
    green:   '0xb5bd68'
    yellow:  '0xf0c674'
    blue:    '0x81a2be'
  bright:
    black:   '0x969896'
`)
	th, err := ImportTheme(mem, "/alacritty.yml")
	require.NoError(t, err)
	require.NotEqual(t, th.Text.FG, th.Text.BG)
	require.Equal(t, tcell.GetColor("#373b41"), th.Selection.BG)
	require.Equal(t, tcell.GetColor("#b5bd68"), th.Cursor.BG)
	require.Equal(t, tcell.GetColor("#969896"), th.Status.BG)
}

func TestImportTheme_Unknown(t *testing.T) {
	mem := writeTheme(t, "/x.yaml", "name: nothing\n")
	_, err := ImportTheme(mem, "/x.yaml")
	require.ErrorContains(t, err, "unrecognized theme format")

	_, err = ImportTheme(mem, "/missing.yaml")
	require.Error(t, err)
}

func TestConfigThemeFromFile(t *testing.T) {
	mem := writeTheme(t, "/t.yaml", "base00: '000000'\nbase05: 'ffffff'\n")
	cfg := Default()
	cfg.ThemeName = "/t.yaml"
	th, err := cfg.Theme(mem)
	require.NoError(t, err)
	require.Equal(t, tcell.GetColor("#ffffff"), th.Text.FG)
}

func TestParseColor(t *testing.T) {
	require.Equal(t, tcell.ColorRed, ParseColor("Red", tcell.ColorBlue))
	require.Equal(t, tcell.ColorBlue, ParseColor("", tcell.ColorBlue))
	require.Equal(t, tcell.ColorBlue, ParseColor("not-a-color", tcell.ColorBlue))
}
