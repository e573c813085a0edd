// Package session persists the singleton current-user record, held apart
// from the users collection.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avelkovs/fleetdesk/internal/logging"
	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/storage"
)

// Repository describes access to the stored session.
type Repository interface {
	// Get returns the current user, or nil when no session is stored.
	Get(ctx context.Context) (*models.User, error)

	// Set replaces the stored session with user.
	Set(ctx context.Context, user models.User) error

	// Clear removes the stored session. Clearing an absent session is not
	// an error.
	Clear(ctx context.Context) error
}

// StoreRepository implements Repository over a storage.Store.
type StoreRepository struct {
	store storage.Store
	log   logging.Logger
}

func NewStoreRepository(store storage.Store, log logging.Logger) *StoreRepository {
	return &StoreRepository{store: store, log: log}
}

func (r *StoreRepository) Get(ctx context.Context) (*models.User, error) {
	raw, err := r.store.ReadSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		r.log.Warn(ctx, "stored session is corrupted, treating as absent", "error", err)
		return nil, nil
	}
	return &user, nil
}

func (r *StoreRepository) Set(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := r.store.WriteSession(ctx, data); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (r *StoreRepository) Clear(ctx context.Context) error {
	return r.store.ClearSession(ctx)
}
