package kv

import (
	"context"

	"github.com/harborworks/fleetdeck/internal/store"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

func (r *Repo) ListUsers(ctx context.Context) ([]models.User, error) {
	return loadList[models.User](ctx, r.store, store.KindUsers)
}

func (r *Repo) ListUsersByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	users, err := loadList[models.User](ctx, r.store, store.KindUsers)
	if err != nil {
		return nil, err
	}

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *Repo) GetUser(ctx context.Context, id string) (*models.User, error) {
	users, err := loadList[models.User](ctx, r.store, store.KindUsers)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

// GetUserByEmail matches the stored email exactly, case included.
func (r *Repo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := loadList[models.User](ctx, r.store, store.KindUsers)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *Repo) CreateUser(ctx context.Context, u *models.User) (string, error) {
	u.ID = r.newID("user")

	err := r.store.Update(ctx, func(tx *store.Tx) error {
		users, err := loadList[models.User](ctx, tx, store.KindUsers)
		if err != nil {
			return err
		}
		return saveList(ctx, tx, store.KindUsers, append(users, *u))
	})
	if err != nil {
		return "", err
	}
	return u.ID, nil
}

func (r *Repo) UpdateUser(ctx context.Context, u *models.User) error {
	return r.store.Update(ctx, func(tx *store.Tx) error {
		users, err := loadList[models.User](ctx, tx, store.KindUsers)
		if err != nil {
			return err
		}

		for i := range users {
			if users[i].ID == u.ID {
				users[i] = *u
				return saveList(ctx, tx, store.KindUsers, users)
			}
		}
		return repository.ErrNotFound
	})
}

func (r *Repo) DeleteUser(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(tx *store.Tx) error {
		users, err := loadList[models.User](ctx, tx, store.KindUsers)
		if err != nil {
			return err
		}

		kept := users[:0]
		for _, u := range users {
			if u.ID != id {
				kept = append(kept, u)
			}
		}
		if len(kept) == len(users) {
			return repository.ErrNotFound
		}
		return saveList(ctx, tx, store.KindUsers, kept)
	})
}
