// Package cards implements the card save flow: resolving the typed
// category label, enforcing the asymmetric write policy, and tracking
// which card currently holds focus.
package cards

import (
	"fmt"
	"log/slog"
)

// Fields is a typed snapshot of a card's editable values. Reading the
// widgets can fail independently of the save policy, so the UI hands
// the service a snapshot (or an error) instead of the service groping
// through widget state.
type Fields struct {
	ID            int64
	CategoryLabel string
	Title         string
	Body          string
}

// Result reports what a save did.
type Result struct {
	// Committed is true when the note row was written.
	Committed bool
	// NewCategory is true when the save registered a previously
	// unseen category label. The tag bar must be rebuilt in that case.
	NewCategory bool
}

// Store is the slice of the note store the save flow writes to.
type Store interface {
	UpdateContent(id int64, category, title, body string) error
	UpdateTitleBody(id int64, title, body string) error
}

// Registry resolves category labels and persists new entries.
type Registry interface {
	ResolveOrCreate(label string) (key string, created bool)
	Save() error
}

// Service owns the save flow and the two-state focus machine: a card
// is either focused (tracked) or not, and leaving it triggers a save.
// No dirty flag exists; saving is a full overwrite and idempotent.
type Service struct {
	store    Store
	registry Registry
	logger   *slog.Logger

	// active is the id of the card currently holding focus, 0 for none.
	active int64
}

func NewService(store Store, registry Registry, logger *slog.Logger) *Service {
	return &Service{store: store, registry: registry, logger: logger}
}

// Track marks a card as the focus owner.
func (s *Service) Track(id int64) {
	s.active = id
}

// Active returns the focused card id, 0 when no card has focus.
func (s *Service) Active() int64 {
	return s.active
}

// Blur moves focus to next (0 for "outside every card") and saves the
// card being left, if any. read supplies the leaving card's fields.
func (s *Service) Blur(next int64, read func(id int64) (Fields, error)) (Result, error) {
	prev := s.active
	s.active = next
	if prev == 0 || prev == next {
		return Result{}, nil
	}
	f, err := read(prev)
	if err != nil {
		return Result{}, fmt.Errorf("reading card %d: %w", prev, err)
	}
	return s.Save(f)
}

// Flush saves the focused card without changing focus. Called before
// every list refresh so just-typed edits participate in filtering.
func (s *Service) Flush(read func(id int64) (Fields, error)) (Result, error) {
	if s.active == 0 {
		return Result{}, nil
	}
	f, err := read(s.active)
	if err != nil {
		return Result{}, fmt.Errorf("reading card %d: %w", s.active, err)
	}
	return s.Save(f)
}

// Save applies the write policy for one card. The category label is
// resolved (and a new one registered and persisted) before the
// emptiness check, so typing a fresh category registers it even when
// the rest of the card is not yet complete.
func (s *Service) Save(f Fields) (Result, error) {
	var res Result

	key, created := s.registry.ResolveOrCreate(f.CategoryLabel)
	if created {
		if err := s.registry.Save(); err != nil {
			return res, fmt.Errorf("persisting categories: %w", err)
		}
		res.NewCategory = true
		s.logger.Info("registered category", "label", f.CategoryLabel, "key", key)
	}

	switch {
	case key != "" && f.Title != "" && f.Body != "":
		if err := s.store.UpdateContent(f.ID, key, f.Title, f.Body); err != nil {
			return res, err
		}
		res.Committed = true
	case f.Title != "" && f.Body != "":
		// No category yet; write the rest and leave the stored
		// category untouched so the note can grow into one later.
		if err := s.store.UpdateTitleBody(f.ID, f.Title, f.Body); err != nil {
			return res, err
		}
		res.Committed = true
	default:
		s.logger.Debug("card skipped, incomplete fields", "note", f.ID)
	}

	if res.Committed {
		s.logger.Debug("card saved", "note", f.ID)
	}
	return res, nil
}
