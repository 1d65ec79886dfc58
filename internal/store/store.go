package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"sync"
	"time"

	"log/slog"

	"github.com/harborworks/fleetdeck/internal/db"
)

// Collection kinds. One durable key per kind; the value is the whole
// JSON-serialized collection (a single object for the current-user pointer).
const (
	KindUsers         = "users"
	KindShips         = "ships"
	KindComponents    = "components"
	KindJobs          = "jobs"
	KindNotifications = "notifications"
	KindCurrentUser   = "current_user"
)

// Store is the key-value persistence adapter over the collections table.
// Load returns the raw value for a kind (nil when absent) and Save fully
// replaces it. Update runs a function against a single SQLite transaction so
// multi-collection cascades commit or roll back together.
type Store struct {
	conn   *db.DB
	logger *slog.Logger

	// serializes the load-mutate-save critical section; the store has a
	// single-writer model and the HTTP listener is concurrent.
	mu sync.Mutex
}

func New(conn *db.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Store{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

// Load returns the stored value for kind, or nil when the key is absent.
func (s *Store) Load(ctx context.Context, kind string) ([]byte, error) {
	row := s.conn.QueryRow(ctx, `SELECT data FROM collections WHERE kind = ?`, kind)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}
	return data, nil
}

// Save fully replaces the stored value for kind.
func (s *Store) Save(ctx context.Context, kind string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.conn.Exec(ctx, `INSERT OR REPLACE INTO collections (kind, data, updated) VALUES (?, ?, ?)`, kind, data, now()); err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}

// Delete removes the key entirely. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.conn.Exec(ctx, `DELETE FROM collections WHERE kind = ?`, kind); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}

// Tx exposes the same load/save contract inside one transaction.
type Tx struct {
	tx *sql.Tx
}

func (t *Tx) Load(ctx context.Context, kind string) ([]byte, error) {
	row := t.tx.QueryRowContext(ctx, `SELECT data FROM collections WHERE kind = ?`, kind)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}
	return data, nil
}

func (t *Tx) Save(ctx context.Context, kind string, data []byte) error {
	if _, err := t.tx.ExecContext(ctx, `INSERT OR REPLACE INTO collections (kind, data, updated) VALUES (?, ?, ?)`, kind, data, now()); err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}
	return nil
}

func (t *Tx) Delete(ctx context.Context, kind string) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM collections WHERE kind = ?`, kind); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}

// Update runs fn inside a single transaction, committing only when fn returns
// nil. Cascading mutations touching several collections go through here.
func (s *Store) Update(ctx context.Context, fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if err := fn(&Tx{tx: sqlTx}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			s.logger.Error("rollback failed", slog.Any("err", rbErr))
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
