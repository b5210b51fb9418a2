package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/delve-engine/internal/entities"
	dlverr "github.com/KirkDiggler/delve-engine/internal/errors"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS delve_sessions (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	state      TEXT NOT NULL,
	depth      INTEGER NOT NULL,
	data       BLOB NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_delve_sessions_state ON delve_sessions (state);
`

// SQLiteRepoConfig holds configuration for the SQLite repository
type SQLiteRepoConfig struct {
	// Path to the database file. Required.
	Path string

	// TimeProvider stamps LastActive. Optional, defaults to wall clock.
	TimeProvider TimeProvider
}

// SQLiteRepository implements Repository on a single SQLite file
type SQLiteRepository struct {
	db           *sql.DB
	timeProvider TimeProvider
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens the database file and bootstraps the schema
func NewSQLiteRepository(cfg *SQLiteRepoConfig) (*SQLiteRepository, error) {
	if cfg == nil || strings.TrimSpace(cfg.Path) == "" {
		return nil, dlverr.InvalidArgument("database path is required")
	}

	dsn := filepath.Clean(cfg.Path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, dlverr.WrapWithCode(err, dlverr.CodeUnavailable, "failed to open sqlite database")
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, dlverr.WrapWithCode(err, dlverr.CodeUnavailable, "failed to ping sqlite database")
	}

	if _, err := db.Exec(sessionSchema); err != nil {
		_ = db.Close()
		return nil, dlverr.Wrap(err, "failed to bootstrap session schema")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	return &SQLiteRepository{
		db:           db,
		timeProvider: timeProvider,
	}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func isConstraintErr(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

// Create stores a new session
func (r *SQLiteRepository) Create(ctx context.Context, session *entities.DungeonSession) error {
	if session == nil {
		return dlverr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return dlverr.InvalidArgument("session ID cannot be empty")
	}

	now := r.timeProvider.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.LastActive = now

	data, err := json.Marshal(session)
	if err != nil {
		return dlverr.Wrapf(err, "failed to marshal session %s", session.ID)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO delve_sessions (id, name, state, depth, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.Name, string(session.State), session.Depth,
		data, toMillis(session.CreatedAt), toMillis(session.LastActive))
	if err != nil {
		if isConstraintErr(err) {
			return dlverr.Newf(dlverr.CodeAlreadyExists, "session %s already exists", session.ID)
		}
		return dlverr.Wrapf(err, "failed to insert session %s", session.ID)
	}

	return nil
}

// Get retrieves a session by ID
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*entities.DungeonSession, error) {
	if id == "" {
		return nil, dlverr.InvalidArgument("session ID cannot be empty")
	}

	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM delve_sessions WHERE id = ?`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dlverr.NotFoundf("session %s not found", id).
				WithMeta("session_id", id)
		}
		return nil, dlverr.Wrapf(err, "failed to query session %s", id)
	}

	var session entities.DungeonSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, dlverr.Wrapf(err, "failed to unmarshal session %s", id)
	}

	return &session, nil
}

// Update overwrites an existing session
func (r *SQLiteRepository) Update(ctx context.Context, session *entities.DungeonSession) error {
	if session == nil {
		return dlverr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return dlverr.InvalidArgument("session ID cannot be empty")
	}

	session.LastActive = r.timeProvider.Now()

	data, err := json.Marshal(session)
	if err != nil {
		return dlverr.Wrapf(err, "failed to marshal session %s", session.ID)
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE delve_sessions SET name = ?, state = ?, depth = ?, data = ?, updated_at = ?
		 WHERE id = ?`,
		session.Name, string(session.State), session.Depth,
		data, toMillis(session.LastActive), session.ID)
	if err != nil {
		return dlverr.Wrapf(err, "failed to update session %s", session.ID)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return dlverr.Wrap(err, "failed to read update result")
	}
	if affected == 0 {
		return dlverr.NotFoundf("session %s not found", session.ID).
			WithMeta("session_id", session.ID)
	}

	return nil
}

// Delete removes a session
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dlverr.InvalidArgument("session ID cannot be empty")
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM delve_sessions WHERE id = ?`, id); err != nil {
		return dlverr.Wrapf(err, "failed to delete session %s", id)
	}

	return nil
}

// ListActive retrieves all stored sessions, most recently touched first
func (r *SQLiteRepository) ListActive(ctx context.Context) ([]*entities.DungeonSession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM delve_sessions ORDER BY updated_at DESC`)
	if err != nil {
		return nil, dlverr.Wrap(err, "failed to list sessions")
	}
	defer func() { _ = rows.Close() }()

	var sessions []*entities.DungeonSession
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, dlverr.Wrap(err, "failed to scan session row")
		}

		var session entities.DungeonSession
		if err := json.Unmarshal(data, &session); err != nil {
			return nil, dlverr.Wrap(err, "failed to unmarshal session row")
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, dlverr.Wrap(err, "failed to iterate session rows")
	}

	return sessions, nil
}
