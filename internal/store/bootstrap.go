package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

const schemaSQL = `
CREATE TABLE notas (
	codigo_id INTEGER PRIMARY KEY AUTOINCREMENT,
	categ     TEXT,
	titulo    TEXT,
	texto     TEXT,
	imagens   TEXT,
	data      DATE DEFAULT (DATE('now'))
);
`

type seedNote struct {
	category, title, body string
}

var seedNotes = []seedNote{
	{
		category: "Text",
		title:    "Edit Notes",
		body: "Edit your notes, reminders, or code snippets here. The title and category can also be changed. " +
			"Select an existing category or type a new one in the field. Notes are saved automatically.\n\n" +
			"To find a note, use the search field above and the category buttons to filter. " +
			"The 10 most recent notes for the filter will be displayed.",
	},
	{
		category: "none",
		title:    "Add New Notes",
		body: "To create a new note, click the \"Add Note\" button on the left. A new blank note will appear on the right. " +
			"Just add a title, category, and your content.",
	},
}

// Bootstrap creates the database file, schema, and sample notes when
// no database exists yet. If anything fails mid-way the partial file
// is removed so the next launch retries from scratch.
func Bootstrap(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}

	if err := seed(db); err != nil {
		_ = db.Close()
		_ = os.Remove(path)
		return fmt.Errorf("bootstrapping database: %w", err)
	}
	return db.Close()
}

func seed(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return err
	}
	for _, n := range seedNotes {
		_, err := db.Exec(
			"INSERT INTO notas (categ, titulo, texto) VALUES (?, ?, ?)",
			n.category, n.title, n.body,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
