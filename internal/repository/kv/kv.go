// Package kv implements the repository contracts over the collection store:
// every operation decodes a whole collection, scans it linearly in insertion
// order, and writes the full collection back. Mutations that touch several
// collections (cascading deletes, notification synthesis) run inside a single
// store transaction.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"github.com/harborworks/fleetdeck/internal/store"
	"github.com/harborworks/fleetdeck/internal/validate"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

// Repo implements the repository interfaces using the collection store.
type Repo struct {
	store     *store.Store
	logger    *slog.Logger
	validator *validate.Validator
	strict    bool
	nowFn     func() time.Time
}

// Ensure Repo implements the public interfaces.
var _ repository.UserRepo = (*Repo)(nil)
var _ repository.ShipRepo = (*Repo)(nil)
var _ repository.ComponentRepo = (*Repo)(nil)
var _ repository.JobRepo = (*Repo)(nil)
var _ repository.NotificationRepo = (*Repo)(nil)
var _ repository.SessionRepo = (*Repo)(nil)

func New(st *store.Store, logger *slog.Logger) *Repo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Repo{store: st, logger: logger, nowFn: func() time.Time { return time.Now().UTC() }}
}

// WithStrictRefs turns on referential and schema checks at the create
// boundary. Without it the repo keeps the permissive behavior of accepting
// dangling references.
func (r *Repo) WithStrictRefs(v *validate.Validator) *Repo {
	r.validator = v
	r.strict = v != nil
	return r
}

// WithClock overrides the time source. Test hook.
func (r *Repo) WithClock(fn func() time.Time) *Repo {
	if fn != nil {
		r.nowFn = fn
	}
	return r
}

// newID builds a collision-resistant identifier: kind prefix, millisecond
// timestamp, random suffix. There is no central sequence to draw from.
func (r *Repo) newID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, r.nowFn().UnixMilli(), uuid.NewString()[:8])
}

func (r *Repo) timestamp() string {
	return r.nowFn().Format(time.RFC3339)
}

// loader is satisfied by both the store and its transactions.
type loader interface {
	Load(ctx context.Context, kind string) ([]byte, error)
}

type saver interface {
	Save(ctx context.Context, kind string, data []byte) error
}

func loadList[T any](ctx context.Context, src loader, kind string) ([]T, error) {
	b, err := src.Load(ctx, kind)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return out, nil
}

func saveList[T any](ctx context.Context, dst saver, kind string, list []T) error {
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", kind, err)
	}
	return dst.Save(ctx, kind, b)
}

// checkSchema runs the embedded JSON Schema for entity against doc and folds
// any violations into reasons. No-op when strict refs are off.
func (r *Repo) checkSchema(ctx context.Context, entity string, doc any, reasons []string) ([]string, error) {
	if !r.strict {
		return reasons, nil
	}
	msgs, err := r.validator.Check(ctx, entity, doc)
	if err != nil {
		return nil, err
	}
	return append(reasons, msgs...), nil
}
