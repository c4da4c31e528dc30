package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ImportTheme reads a theme file in a known format and converts it to Theme.
// Supported:
// - Base16 YAML (keys base00..base0F)
// - Alacritty YAML (colors.primary/normal/bright/cursor/selection)
func ImportTheme(fsys afero.Fs, path string) (Theme, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Theme{}, fmt.Errorf("import theme: %w", err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Theme{}, fmt.Errorf("import theme %s: %w", filepath.Base(path), err)
	}
	doc := scalars(&root, "", map[string]string{})
	switch {
	case doc["base00"] != "":
		return importBase16(doc), nil
	case hasPrefix(doc, "colors."):
		return importAlacritty(doc), nil
	default:
		return Theme{}, errors.New("unrecognized theme format: " + filepath.Base(path))
	}
}

// scalars flattens every scalar under n into out, keyed by its lowercased
// dotted path. Raw scalar text is kept so unquoted values like 0x1d1f21 are
// not reinterpreted as numbers.
func scalars(n *yaml.Node, prefix string, out map[string]string) map[string]string {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			scalars(c, prefix, out)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := strings.ToLower(n.Content[i].Value)
			if prefix != "" {
				key = prefix + "." + key
			}
			scalars(n.Content[i+1], key, out)
		}
	case yaml.ScalarNode:
		if prefix != "" {
			out[prefix] = n.Value
		}
	}
	return out
}

func hasPrefix(doc map[string]string, prefix string) bool {
	for k := range doc {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

func parseHexToColor(v string, fallback tcell.Color) tcell.Color {
	v = strings.TrimSpace(v)
	v = strings.Trim(v, "'\"")
	if strings.HasPrefix(v, "#") {
		v = v[1:]
	} else if strings.HasPrefix(strings.ToLower(v), "0x") {
		v = v[2:]
	}
	if len(v) != 6 {
		return fallback
	}
	if _, err := strconv.ParseInt(v, 16, 32); err != nil {
		return fallback
	}
	return ParseColor("#"+strings.ToLower(v), fallback)
}

// importBase16 maps a Base16 scheme onto the editor's color roles.
func importBase16(doc map[string]string) Theme {
	t := DefaultTheme()
	get := func(k string, fb tcell.Color) tcell.Color { return parseHexToColor(doc[k], fb) }

	bg, fg := get("base00", t.Text.BG), get("base05", t.Text.FG)
	t.Text = Colors{FG: fg, BG: bg}
	t.Cursor = Colors{FG: bg, BG: get("base0b", t.Cursor.BG)}
	t.Selection = Colors{FG: fg, BG: get("base02", t.Selection.BG)}
	t.Match = Colors{FG: bg, BG: get("base0a", t.Match.BG)}
	t.Status = Colors{FG: fg, BG: get("base01", get("base02", bg))}
	t.Prompt = t.Status
	return t
}

// importAlacritty maps an Alacritty colors section onto the editor's roles.
func importAlacritty(doc map[string]string) Theme {
	t := DefaultTheme()
	get := func(p string, fb tcell.Color) tcell.Color { return parseHexToColor(doc[p], fb) }

	bg := get("colors.primary.background", t.Text.BG)
	fg := get("colors.primary.foreground", t.Text.FG)
	t.Text = Colors{FG: fg, BG: bg}
	t.Cursor = Colors{
		FG: get("colors.cursor.text", bg),
		BG: get("colors.cursor.cursor", get("colors.normal.green", t.Cursor.BG)),
	}
	t.Selection = Colors{
		FG: get("colors.selection.text", fg),
		BG: get("colors.selection.background", get("colors.normal.blue", t.Selection.BG)),
	}
	t.Match = Colors{FG: bg, BG: get("colors.normal.yellow", t.Match.BG)}
	t.Status = Colors{FG: fg, BG: get("colors.bright.black", get("colors.normal.white", bg))}
	t.Prompt = t.Status
	return t
}
