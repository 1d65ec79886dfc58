package kv

import (
	"context"

	"github.com/harborworks/fleetdeck/internal/store"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

func (r *Repo) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	return loadList[models.Notification](ctx, r.store, store.KindNotifications)
}

func (r *Repo) GetNotification(ctx context.Context, id string) (*models.Notification, error) {
	notifications, err := loadList[models.Notification](ctx, r.store, store.KindNotifications)
	if err != nil {
		return nil, err
	}

	for _, n := range notifications {
		if n.ID == id {
			return &n, nil
		}
	}
	return nil, nil
}

// CreateNotification assigns the identifier and timestamp; the timestamp is
// never mutated afterwards, only IsRead changes post-creation.
func (r *Repo) CreateNotification(ctx context.Context, n *models.Notification) (string, error) {
	n.ID = r.newID("notification")
	n.Timestamp = r.timestamp()

	err := r.store.Update(ctx, func(tx *store.Tx) error {
		notifications, err := loadList[models.Notification](ctx, tx, store.KindNotifications)
		if err != nil {
			return err
		}
		return saveList(ctx, tx, store.KindNotifications, append(notifications, *n))
	})
	if err != nil {
		return "", err
	}
	return n.ID, nil
}

func (r *Repo) MarkNotificationRead(ctx context.Context, id string) (*models.Notification, error) {
	var updated *models.Notification

	err := r.store.Update(ctx, func(tx *store.Tx) error {
		notifications, err := loadList[models.Notification](ctx, tx, store.KindNotifications)
		if err != nil {
			return err
		}

		for i := range notifications {
			if notifications[i].ID == id {
				notifications[i].IsRead = true
				n := notifications[i]
				updated = &n
				return saveList(ctx, tx, store.KindNotifications, notifications)
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repo) MarkAllNotificationsRead(ctx context.Context) error {
	return r.store.Update(ctx, func(tx *store.Tx) error {
		notifications, err := loadList[models.Notification](ctx, tx, store.KindNotifications)
		if err != nil {
			return err
		}

		for i := range notifications {
			notifications[i].IsRead = true
		}
		return saveList(ctx, tx, store.KindNotifications, notifications)
	})
}

func (r *Repo) DeleteNotification(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(tx *store.Tx) error {
		notifications, err := loadList[models.Notification](ctx, tx, store.KindNotifications)
		if err != nil {
			return err
		}

		kept := notifications[:0]
		for _, n := range notifications {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		if len(kept) == len(notifications) {
			return repository.ErrNotFound
		}
		return saveList(ctx, tx, store.KindNotifications, kept)
	})
}
