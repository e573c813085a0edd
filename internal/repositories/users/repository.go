// Package users reads the seeded user accounts. Users are immutable; there
// is no write path.
package users

import (
	"context"

	"github.com/avelkovs/fleetdesk/internal/logging"
	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/collection"
	"github.com/avelkovs/fleetdesk/internal/storage"
)

// Repository describes read access to the user collection.
type Repository interface {
	List(ctx context.Context) ([]models.User, error)
}

// StoreRepository implements Repository over a storage.Store.
type StoreRepository struct {
	c *collection.Collection[models.User]
}

func NewStoreRepository(store storage.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{
		c: collection.New[models.User](store, storage.CollectionUsers, log),
	}
}

func (r *StoreRepository) List(ctx context.Context) ([]models.User, error) {
	return r.c.Load(ctx)
}
