package components

import (
	"context"

	"github.com/avelkovs/fleetdesk/internal/models"
)

// Repository describes persistence operations for Component records.
type Repository interface {
	// List returns the stored components in store order.
	List(ctx context.Context) ([]models.Component, error)

	// ListByShip returns the components whose ShipID matches shipID.
	ListByShip(ctx context.Context, shipID string) ([]models.Component, error)

	// Upsert creates the component (generating an id when empty) or replaces
	// the stored component with the same id. Returns the stored record.
	Upsert(ctx context.Context, component models.Component) (models.Component, error)

	// Remove deletes the component with the given id. Removing an absent id
	// is a no-op, not an error.
	Remove(ctx context.Context, id string) error
}
