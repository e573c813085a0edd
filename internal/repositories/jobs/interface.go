package jobs

import (
	"context"

	"github.com/avelkovs/fleetdesk/internal/models"
)

// Repository describes persistence operations for Job records. Notification
// side effects belong to the services layer, not here.
type Repository interface {
	// List returns the stored jobs in store order.
	List(ctx context.Context) ([]models.Job, error)

	// Upsert creates the job (generating an id when empty) or replaces the
	// stored job with the same id. Returns the stored record and whether it
	// was newly created.
	Upsert(ctx context.Context, job models.Job) (models.Job, bool, error)

	// Remove deletes the job with the given id. Removing an absent id is a
	// no-op, not an error.
	Remove(ctx context.Context, id string) error
}
