package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/setupdoc"
	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/wppm-cli/internal/core/domain"
	"github.com/custodia-labs/wppm-cli/internal/core/ports/driven"
)

// Store owns the database connection.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens <dataDir>/sessions.db and applies pending migrations.
// If dataDir is empty, defaults to ~/.wppm/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".wppm", "data")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "sessions.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SessionStore returns a SessionStore backed by this store.
func (s *Store) SessionStore() driven.SessionStore {
	return &sessionStore{store: s}
}

// SchemaVersion returns the highest applied migration.
func (s *Store) SchemaVersion() (int, error) {
	var v int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}

func (s *Store) migrate(fsys fs.FS) error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	current, err := s.SchemaVersion()
	if err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}
	var ups []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".up.sql") {
			ups = append(ups, e.Name())
		}
	}
	sort.Strings(ups)

	for _, name := range ups {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil || version <= current {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// sessionStore implements driven.SessionStore.
type sessionStore struct {
	store *Store
}

var _ driven.SessionStore = (*sessionStore)(nil)

// Save stores or updates a session.
func (s *sessionStore) Save(ctx context.Context, session *domain.FitSession) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session id is required: %w", domain.ErrInvalidInput)
	}
	setup, err := setupdoc.Encode(setupdoc.FormatJSON, setupdoc.FromSession(session))
	if err != nil {
		return fmt.Errorf("encoding setup: %w", err)
	}

	now := time.Now().UTC()
	created, updated := session.CreatedAt, session.UpdatedAt
	if created.IsZero() {
		created = now
	}
	if updated.IsZero() {
		updated = now
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO sessions (id, name, setup, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			setup = excluded.setup,
			updated_at = excluded.updated_at
	`, session.ID, session.Name, string(setup), created.UTC(), updated.UTC())
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Get retrieves a session by ID.
func (s *sessionStore) Get(ctx context.Context, id string) (*domain.FitSession, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, setup, created_at, updated_at FROM sessions WHERE id = ?
	`, id)
	return scanSession(row)
}

// Delete removes a session.
func (s *sessionStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all sessions ordered by name.
func (s *sessionStore) List(ctx context.Context) ([]*domain.FitSession, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, setup, created_at, updated_at FROM sessions ORDER BY name, created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var out []*domain.FitSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, session)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*domain.FitSession, error) {
	var (
		id, name, setup      string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &setup, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	doc, err := setupdoc.Decode(setupdoc.FormatJSON, []byte(setup))
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	session, err := doc.ToSession()
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	session.ID = id
	session.Name = name
	session.CreatedAt = createdAt
	session.UpdatedAt = updatedAt
	return session, nil
}
