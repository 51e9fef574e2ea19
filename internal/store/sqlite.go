// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jobprep-bd/backend/internal/domain/profile"
	"github.com/jobprep-bd/backend/internal/domain/question"
	"github.com/jobprep-bd/backend/internal/domain/subcategory"
)

const schema = `
CREATE TABLE IF NOT EXISTS app_state (
    namespace  TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// SQLiteStore persists the three state namespaces as whole JSON aggregates in
// a single key-value table. There is no incremental write: every save
// serializes the full aggregate and replaces its row.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// load reads one namespace and deserializes it into v. Returns ErrNotFound
// when the namespace has never been written and ErrMalformed when the stored
// payload does not parse.
func (s *SQLiteStore) load(ctx context.Context, namespace string, v any) error {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM app_state WHERE namespace = ?", namespace,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("%w: namespace %s: %v", ErrMalformed, namespace, err)
	}
	return nil
}

// save overwrites one namespace with the JSON serialization of v.
func (s *SQLiteStore) save(ctx context.Context, namespace string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (namespace, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, namespace, string(payload), time.Now().UnixMilli())
	return err
}

// ============================================================================
// Questions
// ============================================================================

func (s *SQLiteStore) LoadQuestions(ctx context.Context) ([]question.Question, error) {
	var questions []question.Question
	if err := s.load(ctx, NamespaceQuestions, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *SQLiteStore) SaveQuestions(ctx context.Context, questions []question.Question) error {
	return s.save(ctx, NamespaceQuestions, questions)
}

// ============================================================================
// Subcategories
// ============================================================================

func (s *SQLiteStore) LoadSubCategories(ctx context.Context) (subcategory.Map, error) {
	var m subcategory.Map
	if err := s.load(ctx, NamespaceSubCategories, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *SQLiteStore) SaveSubCategories(ctx context.Context, m subcategory.Map) error {
	return s.save(ctx, NamespaceSubCategories, m)
}

// ============================================================================
// User profile
// ============================================================================

func (s *SQLiteStore) LoadProfile(ctx context.Context) (*profile.Profile, error) {
	var p profile.Profile
	if err := s.load(ctx, NamespaceUser, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLiteStore) SaveProfile(ctx context.Context, p *profile.Profile) error {
	return s.save(ctx, NamespaceUser, p)
}
