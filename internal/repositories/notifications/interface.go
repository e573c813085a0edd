package notifications

import (
	"context"

	"github.com/avelkovs/fleetdesk/internal/models"
)

// Repository describes persistence operations for Notification records.
// Notifications are never deleted by the core.
type Repository interface {
	// List returns notifications in stored order, which is most-recent-first
	// because Add prepends.
	List(ctx context.Context) ([]models.Notification, error)

	// Add prepends the notification (generating an id when empty) and
	// returns the stored record.
	Add(ctx context.Context, n models.Notification) (models.Notification, error)

	// MarkRead sets read=true on the matching record. No-op when absent.
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead sets read=true on every stored record.
	MarkAllRead(ctx context.Context) error
}
