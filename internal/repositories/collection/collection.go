// Package collection provides the shared JSON codec between entity
// repositories and the persistence store. A stored collection is one JSON
// array replaced as a unit on every mutation.
package collection

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avelkovs/fleetdesk/internal/logging"
	"github.com/avelkovs/fleetdesk/internal/storage"
)

// Collection binds an element type to a named stored collection.
type Collection[T any] struct {
	store storage.Store
	name  string
	log   logging.Logger
}

func New[T any](store storage.Store, name string, log logging.Logger) *Collection[T] {
	return &Collection[T]{store: store, name: name, log: log}
}

// Load reads and decodes the stored collection. An unwritten collection
// yields an empty slice. A value that fails to decode is logged and treated
// as empty; the bad value is replaced on the next Save.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.store.ReadCollection(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("failed to load collection[%s]: %w", c.name, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn(ctx, "stored collection is corrupted, treating as empty",
			"collection", c.name, "error", err)
		return nil, nil
	}
	return items, nil
}

// Save encodes items and replaces the stored collection. A nil slice is
// persisted as an empty JSON array.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection[%s]: %w", c.name, err)
	}

	if err := c.store.WriteCollection(ctx, c.name, data); err != nil {
		return fmt.Errorf("failed to save collection[%s]: %w", c.name, err)
	}
	return nil
}
