package kv

import (
	"context"
	"fmt"

	"github.com/harborworks/fleetdeck/internal/store"
	"github.com/harborworks/fleetdeck/internal/validate"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

func (r *Repo) ListComponents(ctx context.Context) ([]models.ShipComponent, error) {
	return loadList[models.ShipComponent](ctx, r.store, store.KindComponents)
}

func (r *Repo) ListComponentsByShip(ctx context.Context, shipID string) ([]models.ShipComponent, error) {
	components, err := loadList[models.ShipComponent](ctx, r.store, store.KindComponents)
	if err != nil {
		return nil, err
	}

	out := make([]models.ShipComponent, 0, len(components))
	for _, c := range components {
		if c.ShipID == shipID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *Repo) GetComponent(ctx context.Context, id string) (*models.ShipComponent, error) {
	components, err := loadList[models.ShipComponent](ctx, r.store, store.KindComponents)
	if err != nil {
		return nil, err
	}

	for _, c := range components {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *Repo) CreateComponent(ctx context.Context, c *models.ShipComponent) (string, error) {
	reasons, err := r.checkSchema(ctx, validate.EntityComponent, c, nil)
	if err != nil {
		return "", err
	}
	if r.strict {
		ship, err := r.GetShip(ctx, c.ShipID)
		if err != nil {
			return "", err
		}
		if ship == nil {
			reasons = append(reasons, fmt.Sprintf("shipId %q does not reference a live ship", c.ShipID))
		}
	}
	if len(reasons) > 0 {
		return "", &repository.ValidationError{Entity: "component", Reasons: reasons}
	}

	c.ID = r.newID("component")

	err = r.store.Update(ctx, func(tx *store.Tx) error {
		components, err := loadList[models.ShipComponent](ctx, tx, store.KindComponents)
		if err != nil {
			return err
		}
		return saveList(ctx, tx, store.KindComponents, append(components, *c))
	})
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

func (r *Repo) UpdateComponent(ctx context.Context, c *models.ShipComponent) error {
	return r.store.Update(ctx, func(tx *store.Tx) error {
		components, err := loadList[models.ShipComponent](ctx, tx, store.KindComponents)
		if err != nil {
			return err
		}

		for i := range components {
			if components[i].ID == c.ID {
				components[i] = *c
				return saveList(ctx, tx, store.KindComponents, components)
			}
		}
		return repository.ErrNotFound
	})
}

// DeleteComponent removes the component and every job referencing it, in one
// transaction. Jobs of other components are untouched.
func (r *Repo) DeleteComponent(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(tx *store.Tx) error {
		components, err := loadList[models.ShipComponent](ctx, tx, store.KindComponents)
		if err != nil {
			return err
		}

		kept := components[:0]
		for _, c := range components {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(components) {
			return repository.ErrNotFound
		}
		if err := saveList(ctx, tx, store.KindComponents, kept); err != nil {
			return err
		}

		jobs, err := loadList[models.Job](ctx, tx, store.KindJobs)
		if err != nil {
			return err
		}
		keptJobs := jobs[:0]
		for _, j := range jobs {
			if j.ComponentID != id {
				keptJobs = append(keptJobs, j)
			}
		}
		return saveList(ctx, tx, store.KindJobs, keptJobs)
	})
}
