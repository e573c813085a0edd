// Package ships persists Ship records as one stored collection.
package ships

import (
	"context"

	"github.com/avelkovs/fleetdesk/internal/logging"
	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/collection"
	"github.com/avelkovs/fleetdesk/internal/storage"
)

// StoreRepository implements Repository over a storage.Store.
type StoreRepository struct {
	c *collection.Collection[models.Ship]
}

func NewStoreRepository(store storage.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{
		c: collection.New[models.Ship](store, storage.CollectionShips, log),
	}
}

func (r *StoreRepository) List(ctx context.Context) ([]models.Ship, error) {
	return r.c.Load(ctx)
}

func (r *StoreRepository) Upsert(ctx context.Context, ship models.Ship) (models.Ship, error) {
	items, err := r.c.Load(ctx)
	if err != nil {
		return models.Ship{}, err
	}

	if ship.ID == "" {
		ship.ID = models.NewID(models.ShipIDPrefix)
		items = append(items, ship)
	} else {
		found := false
		for i := range items {
			if items[i].ID == ship.ID {
				items[i] = ship
				found = true
				break
			}
		}
		if !found {
			items = append(items, ship)
		}
	}

	if err := r.c.Save(ctx, items); err != nil {
		return models.Ship{}, err
	}
	return ship, nil
}

func (r *StoreRepository) Remove(ctx context.Context, id string) error {
	items, err := r.c.Load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, s := range items {
		if s.ID != id {
			kept = append(kept, s)
		}
	}

	return r.c.Save(ctx, kept)
}
