// Package category maintains the mapping from category keys to their
// display labels and palette colors, persisted as a JSON side file
// next to the database.
package category

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/vavargasdev/vanotes/internal/note"
	"github.com/vavargasdev/vanotes/internal/sanitize"
)

// Entry is one registered category.
type Entry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Registry holds the in-memory category map. Keys are append-only for
// the lifetime of a session; nothing ever renames or deletes one.
type Registry struct {
	path    string
	palette []string
	entries map[string]Entry
}

// Storer is the slice of the note store the registry needs when it has
// to derive itself from existing data.
type Storer interface {
	DistinctCategories() ([]string, error)
}

// Load reads the side file at path. When the file is missing or
// unreadable the registry is derived once from the categories already
// present in the store, assigning palette colors round-robin in
// first-seen order, and written back out.
func Load(path string, s Storer, palette []string) (*Registry, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("category registry needs a non-empty palette")
	}

	r := &Registry{
		path:    path,
		palette: palette,
		entries: make(map[string]Entry),
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if jsonErr := json.Unmarshal(data, &r.entries); jsonErr == nil {
			r.ensureFallback()
			return r, nil
		}
	}

	if err := r.derive(s); err != nil {
		return nil, err
	}
	if err := r.Save(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) derive(s Storer) error {
	keys, err := s.DistinctCategories()
	if err != nil {
		return fmt.Errorf("deriving categories from store: %w", err)
	}
	for i, key := range keys {
		r.entries[key] = Entry{
			Label: labelFromKey(key),
			Color: r.palette[i%len(r.palette)],
		}
	}
	r.ensureFallback()
	return nil
}

func (r *Registry) ensureFallback() {
	if _, ok := r.entries[note.DefaultCategory]; !ok {
		r.entries[note.DefaultCategory] = Entry{
			Label: "None",
			Color: r.palette[0],
		}
	}
}

// Save writes the registry to its side file via a temp file and
// rename, so a crash mid-write cannot truncate the previous contents.
func (r *Registry) Save() error {
	data, err := json.MarshalIndent(r.entries, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".tmp.%s.%d", filepath.Base(r.path), os.Getpid()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// ResolveOrCreate maps a display label to its category key. Matching
// is exact and case sensitive. An unknown, non-empty label registers a
// new key with the next round-robin palette color; the caller decides
// when to persist. Empty labels resolve to nothing.
func (r *Registry) ResolveOrCreate(label string) (key string, created bool) {
	for k, e := range r.entries {
		if e.Label == label {
			return k, false
		}
	}
	if label == "" {
		return "", false
	}

	key = sanitize.Sanitize(strings.ToLower(label))
	color := r.palette[len(r.entries)%len(r.palette)]
	r.entries[key] = Entry{Label: label, Color: color}
	return key, true
}

// Get looks up a key directly.
func (r *Registry) Get(key string) (Entry, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Resolve returns the entry for key, falling back to the built-in
// "none" category when the key is unknown. The stored category of the
// note is never rewritten by this fallback.
func (r *Registry) Resolve(key string) (string, Entry) {
	if e, ok := r.entries[key]; ok {
		return key, e
	}
	return note.DefaultCategory, r.entries[note.DefaultCategory]
}

// Labels returns all display labels, sorted for stable presentation.
func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		labels = append(labels, e.Label)
	}
	sort.Strings(labels)
	return labels
}

// Keys returns all category keys, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len reports how many categories are registered.
func (r *Registry) Len() int {
	return len(r.entries)
}

func labelFromKey(key string) string {
	label := strings.ToLower(strings.ReplaceAll(key, "_", " "))
	runes := []rune(label)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}
