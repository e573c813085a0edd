// Package jobs persists Job records as one stored collection.
package jobs

import (
	"context"

	"github.com/avelkovs/fleetdesk/internal/logging"
	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/collection"
	"github.com/avelkovs/fleetdesk/internal/storage"
)

// StoreRepository implements Repository over a storage.Store.
type StoreRepository struct {
	c *collection.Collection[models.Job]
}

func NewStoreRepository(store storage.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{
		c: collection.New[models.Job](store, storage.CollectionJobs, log),
	}
}

func (r *StoreRepository) List(ctx context.Context) ([]models.Job, error) {
	return r.c.Load(ctx)
}

// Upsert stores the job and reports whether it was appended (created) rather
// than replaced in place. A supplied id that matches no stored job is treated
// as a create.
func (r *StoreRepository) Upsert(ctx context.Context, job models.Job) (models.Job, bool, error) {
	items, err := r.c.Load(ctx)
	if err != nil {
		return models.Job{}, false, err
	}

	if job.ID == "" {
		job.ID = models.NewID(models.JobIDPrefix)
	}

	created := true
	for i := range items {
		if items[i].ID == job.ID {
			items[i] = job
			created = false
			break
		}
	}
	if created {
		items = append(items, job)
	}

	if err := r.c.Save(ctx, items); err != nil {
		return models.Job{}, false, err
	}
	return job, created, nil
}

func (r *StoreRepository) Remove(ctx context.Context, id string) error {
	items, err := r.c.Load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, j := range items {
		if j.ID != id {
			kept = append(kept, j)
		}
	}

	return r.c.Save(ctx, kept)
}
