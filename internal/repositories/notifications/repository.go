// Package notifications persists Notification records as one stored
// collection ordered most-recent-first.
package notifications

import (
	"context"

	"github.com/avelkovs/fleetdesk/internal/logging"
	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/collection"
	"github.com/avelkovs/fleetdesk/internal/storage"
)

// StoreRepository implements Repository over a storage.Store.
type StoreRepository struct {
	c *collection.Collection[models.Notification]
}

func NewStoreRepository(store storage.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{
		c: collection.New[models.Notification](store, storage.CollectionNotifications, log),
	}
}

func (r *StoreRepository) List(ctx context.Context) ([]models.Notification, error) {
	return r.c.Load(ctx)
}

func (r *StoreRepository) Add(ctx context.Context, n models.Notification) (models.Notification, error) {
	items, err := r.c.Load(ctx)
	if err != nil {
		return models.Notification{}, err
	}

	if n.ID == "" {
		n.ID = models.NewID(models.NotificationIDPrefix)
	}

	items = append([]models.Notification{n}, items...)

	if err := r.c.Save(ctx, items); err != nil {
		return models.Notification{}, err
	}
	return n, nil
}

func (r *StoreRepository) MarkRead(ctx context.Context, id string) error {
	items, err := r.c.Load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Read = true
		}
	}

	return r.c.Save(ctx, items)
}

func (r *StoreRepository) MarkAllRead(ctx context.Context) error {
	items, err := r.c.Load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		items[i].Read = true
	}

	return r.c.Save(ctx, items)
}
