// Package store persists notes in a single-table SQLite database.
// The application is single threaded, so the store keeps one
// connection and every write is an immediately committed statement.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/vavargasdev/vanotes/internal/note"
)

// ErrNotFound is returned when a note id does not exist.
var ErrNotFound = errors.New("note not found")

type Store struct {
	db *sql.DB
}

// Filter describes one list refresh. A zero Filter matches everything.
type Filter struct {
	// Term is matched as a case-insensitive substring of title or body.
	Term string
	// Categories restricts results to these category keys when non-empty.
	Categories []string
	// Limit caps the returned rows; values <= 0 mean no cap.
	Limit int
}

// Open opens the database at path. The schema must already exist; use
// Bootstrap on first run.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Single writer; SQLite does not want more.
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

// Close closes the underlying connection. Safe to call once at
// shutdown; the caller guards against double close.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Search returns notes matching f, most recent id first.
func (s *Store) Search(f Filter) ([]note.Note, error) {
	var (
		clauses []string
		args    []any
	)

	if f.Term != "" {
		clauses = append(clauses, "(titulo LIKE ? OR texto LIKE ?)")
		pattern := "%" + f.Term + "%"
		args = append(args, pattern, pattern)
	}

	if len(f.Categories) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(f.Categories)), ", ")
		clauses = append(clauses, fmt.Sprintf("categ IN (%s)", placeholders))
		for _, c := range f.Categories {
			args = append(args, c)
		}
	}

	query := "SELECT codigo_id, categ, titulo, texto, imagens, data FROM notas"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY codigo_id DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Get fetches a single note by id.
func (s *Store) Get(id int64) (note.Note, error) {
	row := s.db.QueryRow(
		"SELECT codigo_id, categ, titulo, texto, imagens, data FROM notas WHERE codigo_id = ?",
		id,
	)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return note.Note{}, ErrNotFound
	}
	return n, err
}

// NextID computes max(codigo_id)+1. Read-then-insert with no
// uniqueness guard; only sound because all access is single threaded.
// Replace with store-assigned ids before introducing any concurrency.
func (s *Store) NextID() (int64, error) {
	var max sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(codigo_id) FROM notas").Scan(&max); err != nil {
		return 0, fmt.Errorf("reading max id: %w", err)
	}
	return max.Int64 + 1, nil
}

// Insert writes a new note under its explicit id. The creation date is
// left to the column default.
func (s *Store) Insert(n note.Note) error {
	_, err := s.db.Exec(
		"INSERT INTO notas (codigo_id, categ, titulo, texto) VALUES (?, ?, ?, ?)",
		n.ID, n.Category, n.Title, n.Body,
	)
	if err != nil {
		return fmt.Errorf("inserting note %d: %w", n.ID, err)
	}
	return nil
}

// UpdateContent overwrites category, title, and body together.
func (s *Store) UpdateContent(id int64, category, title, body string) error {
	_, err := s.db.Exec(
		"UPDATE notas SET categ = ?, titulo = ?, texto = ? WHERE codigo_id = ?",
		category, title, body, id,
	)
	if err != nil {
		return fmt.Errorf("updating note %d: %w", id, err)
	}
	return nil
}

// UpdateTitleBody overwrites title and body, leaving the stored
// category untouched. Lets a note be edited before it ever has one.
func (s *Store) UpdateTitleBody(id int64, title, body string) error {
	_, err := s.db.Exec(
		"UPDATE notas SET titulo = ?, texto = ? WHERE codigo_id = ?",
		title, body, id,
	)
	if err != nil {
		return fmt.Errorf("updating note %d: %w", id, err)
	}
	return nil
}

// UpdateAttachments rewrites the comma-joined attachment column.
func (s *Store) UpdateAttachments(id int64, joined string) error {
	_, err := s.db.Exec(
		"UPDATE notas SET imagens = ? WHERE codigo_id = ?",
		joined, id,
	)
	if err != nil {
		return fmt.Errorf("updating attachments for note %d: %w", id, err)
	}
	return nil
}

// Delete removes a note row. Attachment files stay on disk.
func (s *Store) Delete(id int64) error {
	_, err := s.db.Exec("DELETE FROM notas WHERE codigo_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting note %d: %w", id, err)
	}
	return nil
}

// DistinctCategories lists the non-empty category keys already stored,
// in first-stored order. Used to derive a registry when the side file
// is missing.
func (s *Store) DistinctCategories() ([]string, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT categ FROM notas WHERE categ IS NOT NULL AND categ != ''",
	)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (note.Note, error) {
	var (
		n       note.Note
		categ   sql.NullString
		title   sql.NullString
		body    sql.NullString
		images  sql.NullString
		created sql.NullString
	)
	if err := row.Scan(&n.ID, &categ, &title, &body, &images, &created); err != nil {
		return note.Note{}, err
	}
	n.Category = categ.String
	n.Title = title.String
	n.Body = body.String
	n.Attachments = note.SplitAttachments(images.String)
	n.Created = created.String
	return n, nil
}
