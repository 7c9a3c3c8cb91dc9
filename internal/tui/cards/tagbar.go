package cards

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vavargasdev/vanotes/internal/category"
	"github.com/vavargasdev/vanotes/internal/config"
)

type tagEntry struct {
	key   string
	label string
	color string
}

// tagBar is the row of category chips above the card list. Toggled
// chips narrow the search to their categories.
type tagBar struct {
	entries  []tagEntry
	selected map[string]struct{}
	cursor   int
}

func newTagBar(reg *category.Registry) tagBar {
	b := tagBar{selected: make(map[string]struct{})}
	b.rebuild(reg)
	return b
}

// rebuild re-reads the registry, keeping selections for keys that
// still exist.
func (b *tagBar) rebuild(reg *category.Registry) {
	b.entries = b.entries[:0]
	for _, key := range reg.Keys() {
		entry, _ := reg.Get(key)
		b.entries = append(b.entries, tagEntry{
			key:   key,
			label: entry.Label,
			color: entry.Color,
		})
	}

	kept := make(map[string]struct{}, len(b.selected))
	for _, e := range b.entries {
		if _, ok := b.selected[e.key]; ok {
			kept[e.key] = struct{}{}
		}
	}
	b.selected = kept

	if b.cursor >= len(b.entries) {
		b.cursor = 0
	}
}

func (b *tagBar) move(delta int) {
	if len(b.entries) == 0 {
		return
	}
	b.cursor = (b.cursor + delta + len(b.entries)) % len(b.entries)
}

// toggle flips the chip under the cursor, returning its key and
// whether it is now selected. An empty key means the bar is empty.
func (b *tagBar) toggle() (string, bool) {
	if b.cursor < 0 || b.cursor >= len(b.entries) {
		return "", false
	}
	key := b.entries[b.cursor].key
	if _, ok := b.selected[key]; ok {
		delete(b.selected, key)
		return key, false
	}
	b.selected[key] = struct{}{}
	return key, true
}

func (b *tagBar) clear() bool {
	if len(b.selected) == 0 {
		return false
	}
	b.selected = make(map[string]struct{})
	return true
}

// selectedKeys returns the toggled category keys in bar order.
func (b tagBar) selectedKeys() []string {
	var keys []string
	for _, e := range b.entries {
		if _, ok := b.selected[e.key]; ok {
			keys = append(keys, e.key)
		}
	}
	return keys
}

func (b tagBar) view(cfg *config.Config, focused bool) string {
	if len(b.entries) == 0 {
		return ""
	}

	chips := make([]string, 0, len(b.entries))
	for i, e := range b.entries {
		_, on := b.selected[e.key]
		chip := tagChipStyle(cfg, e.color, on).Render(e.label)
		if focused && i == b.cursor {
			chip = lipgloss.NewStyle().Underline(true).Render(chip)
		}
		chips = append(chips, chip)
	}
	return strings.Join(chips, "")
}
