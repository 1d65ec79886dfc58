package kv

import (
	"context"

	"log/slog"

	"github.com/harborworks/fleetdeck/internal/store"
	"github.com/harborworks/fleetdeck/internal/validate"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

func (r *Repo) ListShips(ctx context.Context) ([]models.Ship, error) {
	return loadList[models.Ship](ctx, r.store, store.KindShips)
}

func (r *Repo) GetShip(ctx context.Context, id string) (*models.Ship, error) {
	ships, err := loadList[models.Ship](ctx, r.store, store.KindShips)
	if err != nil {
		return nil, err
	}

	for _, s := range ships {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *Repo) CreateShip(ctx context.Context, s *models.Ship) (string, error) {
	reasons, err := r.checkSchema(ctx, validate.EntityShip, s, nil)
	if err != nil {
		return "", err
	}
	if len(reasons) > 0 {
		return "", &repository.ValidationError{Entity: "ship", Reasons: reasons}
	}

	s.ID = r.newID("ship")

	err = r.store.Update(ctx, func(tx *store.Tx) error {
		ships, err := loadList[models.Ship](ctx, tx, store.KindShips)
		if err != nil {
			return err
		}
		return saveList(ctx, tx, store.KindShips, append(ships, *s))
	})
	if err != nil {
		return "", err
	}
	return s.ID, nil
}

func (r *Repo) UpdateShip(ctx context.Context, s *models.Ship) error {
	return r.store.Update(ctx, func(tx *store.Tx) error {
		ships, err := loadList[models.Ship](ctx, tx, store.KindShips)
		if err != nil {
			return err
		}

		for i := range ships {
			if ships[i].ID == s.ID {
				ships[i] = *s
				return saveList(ctx, tx, store.KindShips, ships)
			}
		}
		return repository.ErrNotFound
	})
}

// DeleteShip removes the ship, its components, and every job tagged with the
// ship. Filtering jobs by ship id independently covers jobs of the deleted
// components and jobs whose component was already gone. One transaction.
func (r *Repo) DeleteShip(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(tx *store.Tx) error {
		ships, err := loadList[models.Ship](ctx, tx, store.KindShips)
		if err != nil {
			return err
		}

		kept := ships[:0]
		for _, s := range ships {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		if len(kept) == len(ships) {
			return repository.ErrNotFound
		}
		if err := saveList(ctx, tx, store.KindShips, kept); err != nil {
			return err
		}

		components, err := loadList[models.ShipComponent](ctx, tx, store.KindComponents)
		if err != nil {
			return err
		}
		keptComponents := components[:0]
		for _, c := range components {
			if c.ShipID != id {
				keptComponents = append(keptComponents, c)
			}
		}
		if err := saveList(ctx, tx, store.KindComponents, keptComponents); err != nil {
			return err
		}

		jobs, err := loadList[models.Job](ctx, tx, store.KindJobs)
		if err != nil {
			return err
		}
		keptJobs := jobs[:0]
		for _, j := range jobs {
			if j.ShipID != id {
				keptJobs = append(keptJobs, j)
			}
		}
		if err := saveList(ctx, tx, store.KindJobs, keptJobs); err != nil {
			return err
		}

		r.logger.Info("ship deleted",
			slog.String("id", id),
			slog.Int("components", len(components)-len(keptComponents)),
			slog.Int("jobs", len(jobs)-len(keptJobs)),
		)
		return nil
	})
}
