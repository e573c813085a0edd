package services

import (
	"context"

	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/notifications"
)

// NotificationService exposes the notification feed to the UI layer.
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

type notificationService struct {
	repo notifications.Repository
}

func NewNotificationService(repo notifications.Repository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	return s.repo.List(ctx)
}

func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllRead(ctx)
}
