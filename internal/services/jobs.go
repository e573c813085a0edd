package services

import (
	"context"
	"fmt"
	"time"

	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/jobs"
	"github.com/avelkovs/fleetdesk/internal/repositories/notifications"
)

// JobService exposes job CRUD. Every successful upsert synchronously emits
// notification records; a failed upsert emits nothing.
type JobService interface {
	List(ctx context.Context) ([]models.Job, error)
	Upsert(ctx context.Context, job models.Job) (models.Job, error)
	Remove(ctx context.Context, id string) error
	ScheduledOn(ctx context.Context, date string) ([]models.Job, error)
}

type jobService struct {
	repo          jobs.Repository
	notifications notifications.Repository
	now           func() time.Time
}

func NewJobService(repo jobs.Repository, n notifications.Repository) JobService {
	return &jobService{repo: repo, notifications: n, now: time.Now}
}

func (s *jobService) List(ctx context.Context) ([]models.Job, error) {
	return s.repo.List(ctx)
}

// Upsert persists the job, then emits notifications. A create emits one
// job_created record. An update emits a job_completed record first when the
// new status is Completed, then always a job_updated record; each call
// prepends, so the stored head order is [job_updated, job_completed, ...].
func (s *jobService) Upsert(ctx context.Context, job models.Job) (models.Job, error) {
	stored, created, err := s.repo.Upsert(ctx, job)
	if err != nil {
		return models.Job{}, err
	}

	if created {
		if err := s.notify(ctx, models.NotificationJobCreated,
			fmt.Sprintf("New job created: %s for %s", stored.Type, stored.ComponentID)); err != nil {
			return models.Job{}, err
		}
		return stored, nil
	}

	if stored.Status == models.JobStatusCompleted {
		if err := s.notify(ctx, models.NotificationJobCompleted,
			fmt.Sprintf("Job completed: %s", stored.Type)); err != nil {
			return models.Job{}, err
		}
	}

	if err := s.notify(ctx, models.NotificationJobUpdated,
		fmt.Sprintf("Job updated: %s - Status: %s", stored.Type, stored.Status)); err != nil {
		return models.Job{}, err
	}

	return stored, nil
}

// Remove deletes the job. No notification is emitted for deletion.
func (s *jobService) Remove(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}

// ScheduledOn returns the jobs whose scheduledDate equals date (calendar view).
func (s *jobService) ScheduledOn(ctx context.Context, date string) ([]models.Job, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var result []models.Job
	for _, j := range items {
		if j.ScheduledDate == date {
			result = append(result, j)
		}
	}
	return result, nil
}

func (s *jobService) notify(ctx context.Context, t models.NotificationType, msg string) error {
	_, err := s.notifications.Add(ctx, models.Notification{
		Type:      t,
		Message:   msg,
		Read:      false,
		Timestamp: s.now().UTC(),
	})
	return err
}
