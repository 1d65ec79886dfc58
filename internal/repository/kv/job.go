package kv

import (
	"context"
	"fmt"

	"github.com/harborworks/fleetdeck/internal/store"
	"github.com/harborworks/fleetdeck/internal/validate"
	"github.com/harborworks/fleetdeck/pkg/models"
	"github.com/harborworks/fleetdeck/pkg/repository"
)

func (r *Repo) ListJobs(ctx context.Context) ([]models.Job, error) {
	return loadList[models.Job](ctx, r.store, store.KindJobs)
}

func (r *Repo) ListJobsByShip(ctx context.Context, shipID string) ([]models.Job, error) {
	return r.filterJobs(ctx, func(j models.Job) bool { return j.ShipID == shipID })
}

func (r *Repo) ListJobsByComponent(ctx context.Context, componentID string) ([]models.Job, error) {
	return r.filterJobs(ctx, func(j models.Job) bool { return j.ComponentID == componentID })
}

func (r *Repo) ListJobsByEngineer(ctx context.Context, engineerID string) ([]models.Job, error) {
	return r.filterJobs(ctx, func(j models.Job) bool { return j.AssignedEngineerID == engineerID })
}

func (r *Repo) filterJobs(ctx context.Context, keep func(models.Job) bool) ([]models.Job, error) {
	jobs, err := loadList[models.Job](ctx, r.store, store.KindJobs)
	if err != nil {
		return nil, err
	}

	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if keep(j) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *Repo) GetJob(ctx context.Context, id string) (*models.Job, error) {
	jobs, err := loadList[models.Job](ctx, r.store, store.KindJobs)
	if err != nil {
		return nil, err
	}

	for _, j := range jobs {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, nil
}

// CreateJob stores the job with repository-assigned timestamps and emits the
// "Job Created" notification in the same transaction.
func (r *Repo) CreateJob(ctx context.Context, j *models.Job) (string, error) {
	reasons, err := r.checkSchema(ctx, validate.EntityJob, j, nil)
	if err != nil {
		return "", err
	}
	if r.strict {
		ship, err := r.GetShip(ctx, j.ShipID)
		if err != nil {
			return "", err
		}
		if ship == nil {
			reasons = append(reasons, fmt.Sprintf("shipId %q does not reference a live ship", j.ShipID))
		}

		component, err := r.GetComponent(ctx, j.ComponentID)
		if err != nil {
			return "", err
		}
		if component == nil {
			reasons = append(reasons, fmt.Sprintf("componentId %q does not reference a live component", j.ComponentID))
		} else if component.ShipID != j.ShipID {
			reasons = append(reasons, fmt.Sprintf("component %q belongs to ship %q, not %q", j.ComponentID, component.ShipID, j.ShipID))
		}
	}
	if len(reasons) > 0 {
		return "", &repository.ValidationError{Entity: "job", Reasons: reasons}
	}

	j.ID = r.newID("job")
	ts := r.timestamp()
	j.CreatedAt = ts
	j.UpdatedAt = ts

	err = r.store.Update(ctx, func(tx *store.Tx) error {
		jobs, err := loadList[models.Job](ctx, tx, store.KindJobs)
		if err != nil {
			return err
		}
		if err := saveList(ctx, tx, store.KindJobs, append(jobs, *j)); err != nil {
			return err
		}

		msg := fmt.Sprintf("New %s job created for %s", j.Type, r.shipName(ctx, tx, j.ShipID))
		return r.appendNotification(ctx, tx, models.NotifyJobCreated, msg, j.ID)
	})
	if err != nil {
		return "", err
	}
	return j.ID, nil
}

// UpdateJob replaces the stored record, always refreshing UpdatedAt and
// keeping the original CreatedAt. A status change emits exactly one
// notification; other field changes emit none.
func (r *Repo) UpdateJob(ctx context.Context, j *models.Job) error {
	return r.store.Update(ctx, func(tx *store.Tx) error {
		jobs, err := loadList[models.Job](ctx, tx, store.KindJobs)
		if err != nil {
			return err
		}

		for i := range jobs {
			if jobs[i].ID != j.ID {
				continue
			}

			statusChanged := jobs[i].Status != j.Status

			j.CreatedAt = jobs[i].CreatedAt
			j.UpdatedAt = r.timestamp()
			jobs[i] = *j
			if err := saveList(ctx, tx, store.KindJobs, jobs); err != nil {
				return err
			}

			if statusChanged {
				ship := r.shipName(ctx, tx, j.ShipID)
				if j.Status == models.JobCompleted {
					msg := fmt.Sprintf("%s job for %s has been completed", j.Type, ship)
					return r.appendNotification(ctx, tx, models.NotifyJobCompleted, msg, j.ID)
				}
				msg := fmt.Sprintf("%s job for %s updated to %s", j.Type, ship, j.Status)
				return r.appendNotification(ctx, tx, models.NotifyJobUpdated, msg, j.ID)
			}
			return nil
		}
		return repository.ErrNotFound
	})
}

func (r *Repo) DeleteJob(ctx context.Context, id string) error {
	return r.store.Update(ctx, func(tx *store.Tx) error {
		jobs, err := loadList[models.Job](ctx, tx, store.KindJobs)
		if err != nil {
			return err
		}

		kept := jobs[:0]
		for _, j := range jobs {
			if j.ID != id {
				kept = append(kept, j)
			}
		}
		if len(kept) == len(jobs) {
			return repository.ErrNotFound
		}
		return saveList(ctx, tx, store.KindJobs, kept)
	})
}

// shipName resolves a ship's name for notification text. A dangling ship id
// reads as "Unknown Ship" rather than failing the mutation.
func (r *Repo) shipName(ctx context.Context, tx *store.Tx, shipID string) string {
	ships, err := loadList[models.Ship](ctx, tx, store.KindShips)
	if err != nil {
		return "Unknown Ship"
	}
	for _, s := range ships {
		if s.ID == shipID {
			return s.Name
		}
	}
	return "Unknown Ship"
}

func (r *Repo) appendNotification(ctx context.Context, tx *store.Tx, typ models.NotificationType, msg, jobID string) error {
	notifications, err := loadList[models.Notification](ctx, tx, store.KindNotifications)
	if err != nil {
		return err
	}

	n := models.Notification{
		ID:            r.newID("notification"),
		Type:          typ,
		Message:       msg,
		Timestamp:     r.timestamp(),
		IsRead:        false,
		RelatedEntity: &models.EntityRef{Kind: "Job", ID: jobID},
	}
	return saveList(ctx, tx, store.KindNotifications, append(notifications, n))
}
