// Package storage persists completed-form drafts. Draft rows live in a
// SQLite database; secret field values go to the system keyring and
// are referenced from the row, never stored in clear.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Draft is a persisted snapshot of a completed form.
type Draft struct {
	ID          string            // uuid
	FormID      string            // definition id
	SubmittedAt time.Time         // completion time
	Values      map[string]string // field id → value (secret fields hold a keyring reference)
}

// DraftRepository defines the interface for draft persistence.
type DraftRepository interface {
	Save(d *Draft) error
	Get(id string) (*Draft, error)
	ListByForm(formID string) ([]*Draft, error)
	Delete(id string) error
	Close() error
}

// SQLiteDraftRepository implements DraftRepository using SQLite storage.
type SQLiteDraftRepository struct {
	db *sql.DB
}

// NewSQLiteDraftRepository creates a SQLite-based draft repository.
// Database location: ~/.formflow/formflow.db
func NewSQLiteDraftRepository() (*SQLiteDraftRepository, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	baseDir := filepath.Join(homeDir, ".formflow")
	dbPath := filepath.Join(baseDir, "formflow.db")

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .formflow directory: %w", err)
	}

	return NewSQLiteDraftRepositoryWithPath(dbPath)
}

// NewSQLiteDraftRepositoryWithPath creates a repository with a custom
// database path. Useful for testing.
func NewSQLiteDraftRepositoryWithPath(dbPath string) (*SQLiteDraftRepository, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := InitializeDatabase(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &SQLiteDraftRepository{db: db}, nil
}

// Close closes the database connection.
func (r *SQLiteDraftRepository) Close() error {
	return r.db.Close()
}

// Save persists a draft, updating it if the ID already exists.
func (r *SQLiteDraftRepository) Save(d *Draft) error {
	if d == nil {
		return fmt.Errorf("cannot save nil draft")
	}
	if d.ID == "" {
		return fmt.Errorf("cannot save draft without an id")
	}

	valuesJSON, err := json.Marshal(d.Values)
	if err != nil {
		return fmt.Errorf("failed to serialize draft values: %w", err)
	}

	query := `
		INSERT INTO drafts (id, form_id, submitted_at, draft_values)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			form_id = excluded.form_id,
			submitted_at = excluded.submitted_at,
			draft_values = excluded.draft_values`

	if _, err := r.db.Exec(query, d.ID, d.FormID, d.SubmittedAt, string(valuesJSON)); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Get retrieves a draft by ID. Returns an error if not found.
func (r *SQLiteDraftRepository) Get(id string) (*Draft, error) {
	row := r.db.QueryRow(
		`SELECT id, form_id, submitted_at, draft_values FROM drafts WHERE id = ?`, id)

	d, err := scanDraft(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("draft not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	return d, nil
}

// ListByForm returns all drafts for a form, most recent first.
func (r *SQLiteDraftRepository) ListByForm(formID string) ([]*Draft, error) {
	rows, err := r.db.Query(
		`SELECT id, form_id, submitted_at, draft_values FROM drafts
		 WHERE form_id = ? ORDER BY submitted_at DESC`, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to query drafts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var drafts []*Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drafts: %w", err)
	}
	return drafts, nil
}

// Delete removes a draft by ID. Deleting a missing draft is not an error.
func (r *SQLiteDraftRepository) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM drafts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// scannable covers *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...interface{}) error
}

func scanDraft(s scannable) (*Draft, error) {
	var d Draft
	var valuesJSON string
	if err := s.Scan(&d.ID, &d.FormID, &d.SubmittedAt, &valuesJSON); err != nil {
		return nil, err
	}
	if valuesJSON != "" {
		if err := json.Unmarshal([]byte(valuesJSON), &d.Values); err != nil {
			return nil, fmt.Errorf("failed to parse draft values: %w", err)
		}
	}
	return &d, nil
}
