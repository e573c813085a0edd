package ships

import (
	"context"

	"github.com/avelkovs/fleetdesk/internal/models"
)

// Repository describes persistence operations for Ship records.
type Repository interface {
	// List returns the stored ships in store order.
	List(ctx context.Context) ([]models.Ship, error)

	// Upsert creates the ship (generating an id when empty) or replaces the
	// stored ship with the same id. Returns the stored record.
	Upsert(ctx context.Context, ship models.Ship) (models.Ship, error)

	// Remove deletes the ship with the given id. Removing an absent id is a
	// no-op, not an error. Components and jobs of the ship are not touched.
	Remove(ctx context.Context, id string) error
}
