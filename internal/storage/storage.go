// Package storage provides the FleetDesk persistence store: named entity
// collections plus a singleton session slot, each serialized and replaced as
// a unit. Backends must preserve whole-collection-replace semantics; there is
// no partial update at this layer.
package storage

import "context"

// Collection names persisted by the store.
const (
	CollectionUsers         = "users"
	CollectionShips         = "ships"
	CollectionComponents    = "components"
	CollectionJobs          = "jobs"
	CollectionNotifications = "notifications"
)

// Store is the key-value persistence contract. Reads of an absent key return
// (nil, nil); writes fully replace the stored value. The session slot is
// distinct from the users collection.
type Store interface {
	// ReadCollection returns the serialized collection, or nil when the
	// collection has never been written.
	ReadCollection(ctx context.Context, name string) ([]byte, error)

	// WriteCollection replaces the stored value for the collection.
	WriteCollection(ctx context.Context, name string, data []byte) error

	// ReadSession returns the serialized current-user record, or nil when
	// no session is stored.
	ReadSession(ctx context.Context) ([]byte, error)

	// WriteSession replaces the stored session record.
	WriteSession(ctx context.Context, data []byte) error

	// ClearSession removes the stored session record. Clearing an absent
	// session is not an error.
	ClearSession(ctx context.Context) error
}
