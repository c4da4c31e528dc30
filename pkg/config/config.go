package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTabWidth     = 4
	DefaultLineCapacity = 1024
	DefaultThemeName    = "default"
)

// Config holds user configuration values.
type Config struct {
	Keymap       map[string]Keybinding `yaml:"keymap"`
	TabWidth     int                   `yaml:"tab_width"`
	ThemeName    string                `yaml:"theme"`
	LineCapacity int                   `yaml:"line_capacity"`
}

// fileConfig is the on-disk shape. Absent fields keep their defaults.
type fileConfig struct {
	Keymap       map[string]string `yaml:"keymap"`
	TabWidth     *int              `yaml:"tab_width"`
	Theme        *string           `yaml:"theme"`
	LineCapacity *int              `yaml:"line_capacity"`
}

// Default returns a Config with default key mappings.
func Default() *Config {
	return &Config{
		Keymap:       DefaultKeymap(),
		TabWidth:     DefaultTabWidth,
		ThemeName:    DefaultThemeName,
		LineCapacity: DefaultLineCapacity,
	}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		"quit":        mustParse("Ctrl+Q"),
		"save":        mustParse("Ctrl+S"),
		"search":      mustParse("Ctrl+W"),
		"select_all":  mustParse("Ctrl+A"),
		"copy":        mustParse("Ctrl+C"),
		"cut":         mustParse("Ctrl+X"),
		"paste":       mustParse("Ctrl+V"),
		"open":        mustParse("Ctrl+O"),
		"goto":        mustParse("Ctrl+G"),
		"next_buffer": mustParse("Ctrl+N"),
		"prev_buffer": mustParse("Ctrl+P"),
	}
}

// Parse decodes YAML configuration on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for cmd, binding := range fc.Keymap {
		kb, err := ParseKeybinding(binding)
		if err != nil {
			return nil, fmt.Errorf("keymap %s: %w", cmd, err)
		}
		cfg.Keymap[cmd] = kb
	}
	if fc.TabWidth != nil {
		if *fc.TabWidth < 1 {
			return nil, fmt.Errorf("tab_width must be positive, got %d", *fc.TabWidth)
		}
		cfg.TabWidth = *fc.TabWidth
	}
	if fc.Theme != nil {
		cfg.ThemeName = *fc.Theme
	}
	if fc.LineCapacity != nil {
		if *fc.LineCapacity < 1 {
			return nil, fmt.Errorf("line_capacity must be positive, got %d", *fc.LineCapacity)
		}
		cfg.LineCapacity = *fc.LineCapacity
	}
	return cfg, nil
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned.
func Load(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// DefaultPath returns ~/.gapedit/config.yaml, or "" when there is no home
// directory.
func DefaultPath(home string) string {
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".gapedit", "config.yaml")
}

// Theme resolves ThemeName to a builtin preset or, failing that, to a theme
// file imported from fsys.
func (c *Config) Theme(fsys afero.Fs) (Theme, error) {
	name := c.ThemeName
	if name == "" {
		name = DefaultThemeName
	}
	if t, ok := BuiltinThemes[strings.ToLower(name)]; ok {
		return t, nil
	}
	return ImportTheme(fsys, name)
}

// Marshal renders the configuration as YAML, bindings in their textual form.
func (c *Config) Marshal() ([]byte, error) {
	keymap := make(map[string]string, len(c.Keymap))
	for cmd, kb := range c.Keymap {
		keymap[cmd] = kb.String()
	}
	tw, lc, theme := c.TabWidth, c.LineCapacity, c.ThemeName
	return yaml.Marshal(fileConfig{Keymap: keymap, TabWidth: &tw, Theme: &theme, LineCapacity: &lc})
}

// Commands returns the bound command names in sorted order.
func (c *Config) Commands() []string {
	cmds := make([]string, 0, len(c.Keymap))
	for cmd := range c.Keymap {
		cmds = append(cmds, cmd)
	}
	slices.Sort(cmds)
	return cmds
}
