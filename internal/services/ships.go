package services

import (
	"context"

	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/ships"
)

// ShipService exposes ship CRUD to the UI layer.
type ShipService interface {
	List(ctx context.Context) ([]models.Ship, error)
	Upsert(ctx context.Context, ship models.Ship) (models.Ship, error)
	Remove(ctx context.Context, id string) error
}

type shipService struct {
	repo ships.Repository
}

func NewShipService(repo ships.Repository) ShipService {
	return &shipService{repo: repo}
}

func (s *shipService) List(ctx context.Context) ([]models.Ship, error) {
	return s.repo.List(ctx)
}

func (s *shipService) Upsert(ctx context.Context, ship models.Ship) (models.Ship, error) {
	return s.repo.Upsert(ctx, ship)
}

// Remove deletes the ship only. Components and jobs referencing it are kept;
// their shipId then resolves to "N/A" on display.
func (s *shipService) Remove(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
