package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"

	"github.com/harborworks/fleetdeck/internal/store"
	"github.com/harborworks/fleetdeck/pkg/models"
)

// Login checks the email by exact match and the password by plain string
// equality, per the fixed seed-credential model. On success the current-user
// pointer is set; any mismatch returns false without saying which field failed.
func (r *Repo) Login(ctx context.Context, email, password string) (bool, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil || user.Password != password {
		return false, nil
	}

	b, err := json.Marshal(user)
	if err != nil {
		return false, fmt.Errorf("encode current user: %w", err)
	}
	if err := r.store.Save(ctx, store.KindCurrentUser, b); err != nil {
		return false, err
	}

	r.logger.Info("login", slog.String("user", user.ID), slog.String("role", string(user.Role)))
	return true, nil
}

// Logout clears the current-user pointer. Logging out with nobody logged in
// is a no-op.
func (r *Repo) Logout(ctx context.Context) error {
	return r.store.Delete(ctx, store.KindCurrentUser)
}

func (r *Repo) CurrentUser(ctx context.Context) (*models.User, error) {
	b, err := r.store.Load(ctx, store.KindCurrentUser)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, fmt.Errorf("decode current user: %w", err)
	}
	return &u, nil
}

// HasPermission is true iff a user is logged in and its role is in the set.
// It gates UI affordances only; the repositories never enforce it.
func (r *Repo) HasPermission(ctx context.Context, roles ...models.UserRole) (bool, error) {
	user, err := r.CurrentUser(ctx)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}

	for _, role := range roles {
		if user.Role == role {
			return true, nil
		}
	}
	return false, nil
}
