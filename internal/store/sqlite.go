package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/kokorohq/kokoro/internal/model"
)

// Keys for the two persisted snapshot entries.
const (
	keyPeople = "kokoro_people"
	keyTheme  = "kokoro_theme"
)

// SQLiteStore implements Store over a single key/value table.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	return err
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *SQLiteStore) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// LoadPeople returns the stored collection, or an empty one when the
// snapshot is absent or does not parse as a JSON array.
func (s *SQLiteStore) LoadPeople(ctx context.Context) []model.Person {
	raw, ok := s.get(ctx, keyPeople)
	if !ok {
		return []model.Person{}
	}

	// Reject non-array payloads before decoding into structs, so a
	// corrupt object snapshot degrades to an empty collection.
	var probe []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return []model.Person{}
	}

	var people []model.Person
	if err := json.Unmarshal([]byte(raw), &people); err != nil {
		return []model.Person{}
	}
	if people == nil {
		people = []model.Person{}
	}
	return people
}

// SavePeople overwrites the stored collection. Total overwrite, no merge.
func (s *SQLiteStore) SavePeople(ctx context.Context, people []model.Person) error {
	if people == nil {
		people = []model.Person{}
	}
	b, err := json.Marshal(people)
	if err != nil {
		return fmt.Errorf("encode people: %w", err)
	}
	if err := s.put(ctx, keyPeople, string(b)); err != nil {
		return fmt.Errorf("save people: %w", err)
	}
	return nil
}

// LoadTheme returns the stored theme, defaulting when absent or unknown.
func (s *SQLiteStore) LoadTheme(ctx context.Context) string {
	theme, ok := s.get(ctx, keyTheme)
	if !ok || !model.ValidThemes[theme] {
		return model.DefaultTheme
	}
	return theme
}

// SaveTheme stores the theme name.
func (s *SQLiteStore) SaveTheme(ctx context.Context, theme string) error {
	if !model.ValidThemes[theme] {
		return fmt.Errorf("unknown theme %q", theme)
	}
	if err := s.put(ctx, keyTheme, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// Stats returns snapshot statistics.
func (s *SQLiteStore) Stats(ctx context.Context) *Stats {
	st := &Stats{DBPath: s.dbPath, Theme: s.LoadTheme(ctx)}

	if info, err := os.Stat(s.dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	people := s.LoadPeople(ctx)
	st.People = len(people)
	for _, p := range people {
		if p.Pinned {
			st.Pinned++
		}
		st.Dates += len(p.Dates)
		st.Preferences += len(p.Preferences)
	}

	return st
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
