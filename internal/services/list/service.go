// Package list composes search text and selected category tags into
// store queries and owns the visible card set's lifecycle.
package list

import (
	"fmt"
	"log/slog"

	"github.com/vavargasdev/vanotes/internal/note"
	"github.com/vavargasdev/vanotes/internal/services/cards"
	"github.com/vavargasdev/vanotes/internal/store"
)

const (
	placeholderTitle = "New Title"
	placeholderBody  = "New text here."
	defaultTag       = "text"
)

// Store is the slice of the note store the list flow uses.
type Store interface {
	Search(f store.Filter) ([]note.Note, error)
	NextID() (int64, error)
	Insert(n note.Note) error
	Delete(id int64) error
}

// Result is one refreshed view of the store.
type Result struct {
	Notes []note.Note
	// Total is the number of rows shown, reported for the counter in
	// the left pane.
	Total int
	// RebuildTags means a new category appeared during the pre-query
	// flush; the tag bar derives from the registry and is now stale,
	// so the caller must rebuild the whole visible set.
	RebuildTags bool
}

// Service drives list refreshes. All methods run on the UI event loop.
type Service struct {
	store    Store
	cards    *cards.Service
	maxItems int
	logger   *slog.Logger

	// currentTag is the most recently toggled tag; new notes are filed
	// under it.
	currentTag string
}

func NewService(st Store, cs *cards.Service, maxItems int, logger *slog.Logger) *Service {
	return &Service{
		store:      st,
		cards:      cs,
		maxItems:   maxItems,
		logger:     logger,
		currentTag: defaultTag,
	}
}

// CurrentTag returns the category key new notes are created under.
func (s *Service) CurrentTag() string {
	return s.currentTag
}

// SetCurrentTag records the last toggled tag.
func (s *Service) SetCurrentTag(key string) {
	if key != "" {
		s.currentTag = key
	}
}

// Refresh flushes the focused card, then queries the store with the
// current search term and selected tags. read supplies the focused
// card's fields for the flush; a read failure is logged and the
// refresh proceeds so the user is never stuck on a broken widget.
func (s *Service) Refresh(term string, tags []string, read func(id int64) (cards.Fields, error)) (Result, error) {
	var res Result

	flushed, err := s.cards.Flush(read)
	if err != nil {
		s.logger.Error("flushing focused card before refresh", "err", err)
	}
	res.RebuildTags = flushed.NewCategory

	notes, err := s.store.Search(store.Filter{
		Term:       term,
		Categories: tags,
		Limit:      s.maxItems,
	})
	if err != nil {
		return res, fmt.Errorf("refreshing list: %w", err)
	}

	res.Notes = notes
	res.Total = len(notes)
	return res, nil
}

// CreateNote inserts a new, nearly empty note. The title defaults to
// the search text when present, matching how a search that found
// nothing turns into the note you wanted to exist.
func (s *Service) CreateNote(searchTerm string) (note.Note, error) {
	id, err := s.store.NextID()
	if err != nil {
		return note.Note{}, err
	}

	title := searchTerm
	if title == "" {
		title = placeholderTitle
	}

	n := note.Note{
		ID:       id,
		Category: s.currentTag,
		Title:    title,
		Body:     placeholderBody,
	}
	if err := s.store.Insert(n); err != nil {
		return note.Note{}, err
	}
	s.logger.Info("created note", "id", id)
	return n, nil
}

// DeleteNote removes a note row. Any attachment files stay on disk.
func (s *Service) DeleteNote(id int64) error {
	if s.cards.Active() == id {
		s.cards.Track(0)
	}
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.logger.Info("deleted note", "id", id)
	return nil
}
