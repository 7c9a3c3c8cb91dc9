package store_test

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/vavargasdev/vanotes/internal/note"
	"github.com/vavargasdev/vanotes/internal/store"
)

func openSeeded(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "data_notes.db")
	if err := store.Bootstrap(path); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustInsert(t *testing.T, s *store.Store, category, title, body string) int64 {
	t.Helper()
	id, err := s.NextID()
	if err != nil {
		t.Fatalf("NextID returned error: %v", err)
	}
	err = s.Insert(note.Note{ID: id, Category: category, Title: title, Body: body})
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	return id
}

func ids(notes []note.Note) []int64 {
	out := make([]int64, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func TestBootstrapSeedsSampleNotes(t *testing.T) {
	s := openSeeded(t)

	notes, err := s.Search(store.Filter{})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 seeded notes, got %d", len(notes))
	}

	categories := []string{notes[0].Category, notes[1].Category}
	slices.Sort(categories)
	if !slices.Equal(categories, []string{"Text", "none"}) {
		t.Fatalf("seed categories = %v", categories)
	}
	for _, n := range notes {
		if n.Created == "" {
			t.Fatalf("note %d has no creation date", n.ID)
		}
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data_notes.db")
	if err := store.Bootstrap(path); err != nil {
		t.Fatalf("first Bootstrap: %v", err)
	}
	if err := store.Bootstrap(path); err != nil {
		t.Fatalf("second Bootstrap: %v", err)
	}

	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer s.Close()

	notes, err := s.Search(store.Filter{})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected bootstrap to run once, found %d notes", len(notes))
	}
}

func TestSearchFilterMatrix(t *testing.T) {
	s := openSeeded(t)

	goID := mustInsert(t, s, "code", "Go snippets", "error wrapping with fmt.Errorf")
	sqlID := mustInsert(t, s, "code", "SQL notes", "window functions cheat sheet")
	planID := mustInsert(t, s, "plans", "Trip", "pack the camera")

	cases := []struct {
		name string
		f    store.Filter
		want []int64
	}{
		{
			name: "no filters matches everything newest first",
			f:    store.Filter{},
			want: []int64{planID, sqlID, goID, 2, 1},
		},
		{
			name: "term matches title case insensitively",
			f:    store.Filter{Term: "go sni"},
			want: []int64{goID},
		},
		{
			name: "term matches body",
			f:    store.Filter{Term: "CAMERA"},
			want: []int64{planID},
		},
		{
			name: "category membership",
			f:    store.Filter{Categories: []string{"code"}},
			want: []int64{sqlID, goID},
		},
		{
			name: "term and categories are ANDed",
			f:    store.Filter{Term: "cheat", Categories: []string{"code", "plans"}},
			want: []int64{sqlID},
		},
		{
			name: "no category match",
			f:    store.Filter{Categories: []string{"missing"}},
			want: nil,
		},
		{
			name: "limit truncates after ordering",
			f:    store.Filter{Limit: 2},
			want: []int64{planID, sqlID},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			notes, err := s.Search(tc.f)
			if err != nil {
				t.Fatalf("Search returned error: %v", err)
			}
			if got := ids(notes); !slices.Equal(got, tc.want) {
				t.Fatalf("Search returned ids %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNextIDIsMaxPlusOne(t *testing.T) {
	s := openSeeded(t)

	id, err := s.NextID()
	if err != nil {
		t.Fatalf("NextID returned error: %v", err)
	}
	if id != 3 {
		t.Fatalf("NextID = %d, want 3 after two seeds", id)
	}

	mustInsert(t, s, "none", "a", "b")
	id, err = s.NextID()
	if err != nil {
		t.Fatalf("NextID returned error: %v", err)
	}
	if id != 4 {
		t.Fatalf("NextID = %d, want 4", id)
	}
}

func TestUpdateContentAndTitleBody(t *testing.T) {
	s := openSeeded(t)
	id := mustInsert(t, s, "", "draft", "body")

	if err := s.UpdateTitleBody(id, "titled", "updated body"); err != nil {
		t.Fatalf("UpdateTitleBody returned error: %v", err)
	}
	n, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if n.Category != "" || n.Title != "titled" || n.Body != "updated body" {
		t.Fatalf("partial update wrote %+v", n)
	}

	if err := s.UpdateContent(id, "code", "final", "final body"); err != nil {
		t.Fatalf("UpdateContent returned error: %v", err)
	}
	n, err = s.Get(id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if n.Category != "code" || n.Title != "final" || n.Body != "final body" {
		t.Fatalf("full update wrote %+v", n)
	}
}

func TestUpdateAttachmentsRoundTrip(t *testing.T) {
	s := openSeeded(t)
	id := mustInsert(t, s, "code", "with images", "body")

	if err := s.UpdateAttachments(id, "7_1_with_images.jpg,7_2_with_images.jpg"); err != nil {
		t.Fatalf("UpdateAttachments returned error: %v", err)
	}
	n, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	want := []string{"7_1_with_images.jpg", "7_2_with_images.jpg"}
	if !slices.Equal(n.Attachments, want) {
		t.Fatalf("Attachments = %v, want %v", n.Attachments, want)
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	s := openSeeded(t)
	id := mustInsert(t, s, "code", "bye", "gone soon")

	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := s.Get(id); err != store.ErrNotFound {
		t.Fatalf("Get after delete returned %v, want ErrNotFound", err)
	}
}

func TestDistinctCategoriesSkipsEmpty(t *testing.T) {
	s := openSeeded(t)
	mustInsert(t, s, "", "untagged", "body")
	mustInsert(t, s, "code", "tagged", "body")

	got, err := s.DistinctCategories()
	if err != nil {
		t.Fatalf("DistinctCategories returned error: %v", err)
	}
	slices.Sort(got)
	want := []string{"Text", "code", "none"}
	if !slices.Equal(got, want) {
		t.Fatalf("DistinctCategories = %v, want %v", got, want)
	}
}
