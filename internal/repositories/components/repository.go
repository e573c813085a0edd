// Package components persists Component records as one stored collection.
package components

import (
	"context"

	"github.com/avelkovs/fleetdesk/internal/logging"
	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/collection"
	"github.com/avelkovs/fleetdesk/internal/storage"
)

// StoreRepository implements Repository over a storage.Store.
type StoreRepository struct {
	c *collection.Collection[models.Component]
}

func NewStoreRepository(store storage.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{
		c: collection.New[models.Component](store, storage.CollectionComponents, log),
	}
}

func (r *StoreRepository) List(ctx context.Context) ([]models.Component, error) {
	return r.c.Load(ctx)
}

func (r *StoreRepository) ListByShip(ctx context.Context, shipID string) ([]models.Component, error) {
	items, err := r.c.Load(ctx)
	if err != nil {
		return nil, err
	}

	var result []models.Component
	for _, c := range items {
		if c.ShipID == shipID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *StoreRepository) Upsert(ctx context.Context, component models.Component) (models.Component, error) {
	items, err := r.c.Load(ctx)
	if err != nil {
		return models.Component{}, err
	}

	if component.ID == "" {
		component.ID = models.NewID(models.ComponentIDPrefix)
		items = append(items, component)
	} else {
		found := false
		for i := range items {
			if items[i].ID == component.ID {
				items[i] = component
				found = true
				break
			}
		}
		if !found {
			items = append(items, component)
		}
	}

	if err := r.c.Save(ctx, items); err != nil {
		return models.Component{}, err
	}
	return component, nil
}

func (r *StoreRepository) Remove(ctx context.Context, id string) error {
	items, err := r.c.Load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, c := range items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	return r.c.Save(ctx, kept)
}
