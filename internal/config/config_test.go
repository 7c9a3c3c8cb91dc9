package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vavargasdev/vanotes/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadParsesSectionsAndPipes(t *testing.T) {
	path := writeConfig(t, `[GENERAL]
max_items = 12

[UICOLORS]
gr-0 = #111111
co-0 = #0087AF

[CATCOLORS]
cor_001 = #999999|#CCCCCC|#666666
cor_002 = #42A5F5|#BBDEFB|#1565C0
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.MaxItems != 12 {
		t.Fatalf("MaxItems = %d, want 12", cfg.MaxItems)
	}
	if got := cfg.UIColor("gr-0", ""); got != "#111111" {
		t.Fatalf("UIColor(gr-0) = %q", got)
	}

	keys := cfg.PaletteKeys()
	if len(keys) != 2 || keys[0] != "cor_001" || keys[1] != "cor_002" {
		t.Fatalf("PaletteKeys = %v, want declared order", keys)
	}

	c := cfg.PaletteColorFor("cor_002")
	if c.Base() != "#42A5F5" || c.Light() != "#BBDEFB" {
		t.Fatalf("unexpected shades for cor_002: %v", c.Shades)
	}
}

func TestLoadDefaultsMaxItemsWhenAbsent(t *testing.T) {
	path := writeConfig(t, `[CATCOLORS]
cor_001 = #999999|#CCCCCC|#666666
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxItems <= 0 {
		t.Fatalf("MaxItems should default to a positive value, got %d", cfg.MaxItems)
	}
}

func TestLoadRejectsEmptyPalette(t *testing.T) {
	path := writeConfig(t, `[GENERAL]
max_items = 8
`)

	if _, err := config.Load(path); err == nil {
		t.Fatal("expected error for config without [CATCOLORS]")
	}
}

func TestPaletteColorForUnknownKeyFallsBack(t *testing.T) {
	path := writeConfig(t, `[CATCOLORS]
cor_001 = #999999|#CCCCCC|#666666
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := cfg.PaletteColorFor("cor_404").Base(); got != "#999999" {
		t.Fatalf("fallback color = %q, want first palette entry", got)
	}
}

func TestEnsureDefaultWritesConfigOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "config.ini")

	cfg, err := config.EnsureDefault(path)
	if err != nil {
		t.Fatalf("EnsureDefault returned error: %v", err)
	}
	if len(cfg.Palette) == 0 {
		t.Fatal("default config should define palette colors")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("default config was not written: %v", err)
	}

	// A second call must load the existing file, not rewrite it.
	before := info.ModTime()
	if _, err := config.EnsureDefault(path); err != nil {
		t.Fatalf("second EnsureDefault returned error: %v", err)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat after second load: %v", err)
	}
	if !after.ModTime().Equal(before) {
		t.Fatal("EnsureDefault rewrote an existing config file")
	}
}
