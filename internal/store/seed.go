package store

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"time"

	"log/slog"

	"github.com/harborworks/fleetdeck/pkg/models"
)

// Seed populates empty collections from the embedded seed files. A kind is
// seeded only when its key is entirely absent, so re-running at every startup
// is safe. Seed jobs get their repository-assigned timestamps here.
func (s *Store) Seed(ctx context.Context, seedFS embed.FS) error {
	for _, kind := range []string{KindUsers, KindShips, KindComponents, KindJobs, KindNotifications} {
		existing, err := s.Load(ctx, kind)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		b, err := fs.ReadFile(seedFS, path.Join("seed", kind+".json"))
		if err != nil {
			return fmt.Errorf("read seed %s: %w", kind, err)
		}

		if kind == KindJobs {
			var jobs []models.Job
			if err := json.Unmarshal(b, &jobs); err != nil {
				return fmt.Errorf("decode seed %s: %w", kind, err)
			}
			ts := time.Now().UTC().Format(time.RFC3339)
			for i := range jobs {
				jobs[i].CreatedAt = ts
				jobs[i].UpdatedAt = ts
			}
			if b, err = json.Marshal(jobs); err != nil {
				return fmt.Errorf("encode seed %s: %w", kind, err)
			}
		} else if !json.Valid(b) {
			return fmt.Errorf("seed %s: invalid JSON", kind)
		}

		if err := s.Save(ctx, kind, b); err != nil {
			return err
		}
		s.logger.Info("seeded collection", slog.String("kind", kind))
	}

	return nil
}
