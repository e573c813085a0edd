package services

import (
	"context"
	"time"

	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/components"
)

// ComponentService exposes component CRUD and the derived overdue view.
type ComponentService interface {
	List(ctx context.Context) ([]models.Component, error)
	ListByShip(ctx context.Context, shipID string) ([]models.Component, error)
	ListOverdue(ctx context.Context, now time.Time) ([]models.Component, error)
	Upsert(ctx context.Context, component models.Component) (models.Component, error)
	Remove(ctx context.Context, id string) error
}

type componentService struct {
	repo components.Repository
}

func NewComponentService(repo components.Repository) ComponentService {
	return &componentService{repo: repo}
}

func (s *componentService) List(ctx context.Context) ([]models.Component, error) {
	return s.repo.List(ctx)
}

func (s *componentService) ListByShip(ctx context.Context, shipID string) ([]models.Component, error) {
	return s.repo.ListByShip(ctx, shipID)
}

// ListOverdue returns components whose last maintenance lies more than six
// months before now. Overdue is computed here on read, never stored.
func (s *componentService) ListOverdue(ctx context.Context, now time.Time) ([]models.Component, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var overdue []models.Component
	for _, c := range items {
		if c.Overdue(now) {
			overdue = append(overdue, c)
		}
	}
	return overdue, nil
}

func (s *componentService) Upsert(ctx context.Context, component models.Component) (models.Component, error) {
	return s.repo.Upsert(ctx, component)
}

func (s *componentService) Remove(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
