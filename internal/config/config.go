// Package config loads the section-based INI configuration that
// supplies the UI palette, the category color palette, and query
// limits. Pipe-delimited values are parsed into ordered slices.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/vavargasdev/vanotes/internal/constants"
)

// PaletteColor is one entry of the [CATCOLORS] section. Shades holds
// the pipe-delimited variants in declared order: base, light, dark.
type PaletteColor struct {
	Key    string
	Shades []string
}

// Base returns the primary shade, or empty when the entry is malformed.
func (p PaletteColor) Base() string {
	if len(p.Shades) == 0 {
		return ""
	}
	return p.Shades[0]
}

// Light returns the header shade, falling back to the base.
func (p PaletteColor) Light() string {
	if len(p.Shades) > 1 {
		return p.Shades[1]
	}
	return p.Base()
}

type Config struct {
	// MaxItems caps the rows returned per list refresh.
	MaxItems int

	// UIColors maps chrome color names (gr-0, wh-1, co-0, ...) to hex values.
	UIColors map[string]string

	// Palette is the ordered [CATCOLORS] section; order matters because
	// new categories draw colors round-robin by index.
	Palette []PaletteColor

	// Icons keeps the [UIICONS] glyph names for parity with older
	// installs; the terminal UI renders its own glyphs.
	Icons map[string]string
}

// PaletteKeys returns the palette color keys in declared order.
func (c *Config) PaletteKeys() []string {
	keys := make([]string, len(c.Palette))
	for i, p := range c.Palette {
		keys[i] = p.Key
	}
	return keys
}

// PaletteColorFor resolves a palette key to its shades. Unknown keys
// resolve to the first palette entry so a stale registry still renders.
func (c *Config) PaletteColorFor(key string) PaletteColor {
	for _, p := range c.Palette {
		if p.Key == key {
			return p
		}
	}
	if len(c.Palette) > 0 {
		return c.Palette[0]
	}
	return PaletteColor{}
}

// UIColor resolves a chrome color name, returning fallback when the
// config does not define it.
func (c *Config) UIColor(name, fallback string) string {
	if v, ok := c.UIColors[name]; ok && v != "" {
		return v
	}
	return fallback
}

// Load reads and parses the INI file at path.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg := &Config{
		MaxItems: constants.DefaultMaxItems,
		UIColors: make(map[string]string),
		Icons:    make(map[string]string),
	}

	general := file.Section("GENERAL")
	if key, err := general.GetKey("max_items"); err == nil {
		if n, err := key.Int(); err == nil && n > 0 {
			cfg.MaxItems = n
		}
	}

	for _, key := range file.Section("UICOLORS").Keys() {
		cfg.UIColors[key.Name()] = key.String()
	}

	for _, key := range file.Section("CATCOLORS").Keys() {
		cfg.Palette = append(cfg.Palette, PaletteColor{
			Key:    key.Name(),
			Shades: splitPipes(key.String()),
		})
	}
	if len(cfg.Palette) == 0 {
		return nil, fmt.Errorf("config %s: [CATCOLORS] defines no palette colors", path)
	}

	for _, key := range file.Section("UIICONS").Keys() {
		cfg.Icons[key.Name()] = key.String()
	}

	return cfg, nil
}

// EnsureDefault writes the stock config file when none exists yet and
// returns the loaded configuration either way. First run is a
// bootstrap path, not an error path.
func EnsureDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, []byte(defaultINI), 0o644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}
	}
	return Load(path)
}

func splitPipes(value string) []string {
	if !strings.Contains(value, "|") {
		return []string{strings.TrimSpace(value)}
	}
	parts := strings.Split(value, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
