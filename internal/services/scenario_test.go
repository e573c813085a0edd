package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelkovs/fleetdesk/internal/logging"
	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/components"
	"github.com/avelkovs/fleetdesk/internal/repositories/jobs"
	"github.com/avelkovs/fleetdesk/internal/repositories/notifications"
	"github.com/avelkovs/fleetdesk/internal/repositories/ships"
	"github.com/avelkovs/fleetdesk/internal/storage"
)

// The full create-ship → create-component → create-job → complete-job flow
// against a real sqlite store.
func TestScenario_ShipToCompletedJob(t *testing.T) {
	ctx := context.Background()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	store, err := storage.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, NewBootstrap(store, log).Initialize(ctx))

	shipSvc := NewShipService(ships.NewStoreRepository(store, log))
	componentSvc := NewComponentService(components.NewStoreRepository(store, log))
	notificationRepo := notifications.NewStoreRepository(store, log)
	jobSvc := NewJobService(jobs.NewStoreRepository(store, log), notificationRepo)
	notificationSvc := NewNotificationService(notificationRepo)

	ship, err := shipSvc.Upsert(ctx, models.Ship{
		Name: "Test Ship", IMO: "1234567", Flag: "X", Status: models.ShipStatusActive,
	})
	require.NoError(t, err)
	require.NotEmpty(t, ship.ID)

	component, err := componentSvc.Upsert(ctx, models.Component{
		ShipID: ship.ID, Name: "Auxiliary Pump", SerialNumber: "AP-0001",
		InstallDate: "2024-01-01", LastMaintenanceDate: "2025-01-01",
	})
	require.NoError(t, err)

	byShip, err := componentSvc.ListByShip(ctx, ship.ID)
	require.NoError(t, err)
	require.Len(t, byShip, 1)
	assert.Equal(t, component.ID, byShip[0].ID)

	feedBefore, err := notificationSvc.List(ctx)
	require.NoError(t, err)

	job, err := jobSvc.Upsert(ctx, models.Job{
		ComponentID: component.ID, ShipID: ship.ID, Type: "Overhaul",
		Priority: models.JobPriorityMedium, Status: models.JobStatusOpen,
		AssignedEngineerID: "3", ScheduledDate: "2025-07-01",
	})
	require.NoError(t, err)

	feedAfterCreate, err := notificationSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, feedAfterCreate, len(feedBefore)+1)
	assert.Equal(t, models.NotificationJobCreated, feedAfterCreate[0].Type)

	job.Status = models.JobStatusCompleted
	_, err = jobSvc.Upsert(ctx, job)
	require.NoError(t, err)

	feedAfterComplete, err := notificationSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, feedAfterComplete, len(feedAfterCreate)+2)
	assert.Equal(t, models.NotificationJobUpdated, feedAfterComplete[0].Type)
	assert.Equal(t, models.NotificationJobCompleted, feedAfterComplete[1].Type)

	jobList, err := jobSvc.List(ctx)
	require.NoError(t, err)

	var stored *models.Job
	for i := range jobList {
		if jobList[i].ID == job.ID {
			stored = &jobList[i]
		}
	}
	require.NotNil(t, stored)
	assert.Equal(t, models.JobStatusCompleted, stored.Status)
}
