package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelkovs/fleetdesk/internal/models"
)

func TestJobUpsert_CreateEmitsSingleCreatedNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.fixedNow(t, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC))

	job, err := env.jobs.Upsert(ctx, models.Job{
		ComponentID: "c1",
		ShipID:      "s1",
		Type:        "Inspection",
		Priority:    models.JobPriorityHigh,
		Status:      models.JobStatusOpen,
	})
	require.NoError(t, err)
	require.NotEmpty(t, job.ID)

	feed, err := env.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, models.NotificationJobCreated, feed[0].Type)
	assert.Equal(t, "New job created: Inspection for c1", feed[0].Message)
	assert.False(t, feed[0].Read)
	assert.Equal(t, time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC), feed[0].Timestamp)
	assert.NotEqual(t, job.ID, feed[0].ID)
}

func TestJobUpsert_UpdateEmitsUpdatedNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, err := env.jobs.Upsert(ctx, models.Job{Type: "Repair", Status: models.JobStatusOpen})
	require.NoError(t, err)

	job.Status = models.JobStatusInProgress
	_, err = env.jobs.Upsert(ctx, job)
	require.NoError(t, err)

	feed, err := env.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, models.NotificationJobUpdated, feed[0].Type)
	assert.Equal(t, "Job updated: Repair - Status: In Progress", feed[0].Message)
	assert.Equal(t, models.NotificationJobCreated, feed[1].Type)
}

func TestJobUpsert_CompletionEmitsUpdatedThenCompletedAtHead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, err := env.jobs.Upsert(ctx, models.Job{Type: "Inspection", Status: models.JobStatusOpen})
	require.NoError(t, err)

	before, err := env.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, before, 1)

	job.Status = models.JobStatusCompleted
	_, err = env.jobs.Upsert(ctx, job)
	require.NoError(t, err)

	feed, err := env.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 3)

	// completed is generated first, updated second; each prepends
	assert.Equal(t, models.NotificationJobUpdated, feed[0].Type)
	assert.Equal(t, "Job updated: Inspection - Status: Completed", feed[0].Message)
	assert.Equal(t, models.NotificationJobCompleted, feed[1].Type)
	assert.Equal(t, "Job completed: Inspection", feed[1].Message)
	assert.Equal(t, models.NotificationJobCreated, feed[2].Type)

	jobList, err := env.jobs.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobList, 1)
	assert.Equal(t, models.JobStatusCompleted, jobList[0].Status)
}

func TestJobRemove_EmitsNoNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, err := env.jobs.Upsert(ctx, models.Job{Type: "Inspection"})
	require.NoError(t, err)

	before, err := env.notifications.List(ctx)
	require.NoError(t, err)

	require.NoError(t, env.jobs.Remove(ctx, job.ID))

	after, err := env.notifications.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))

	jobList, err := env.jobs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobList)
}

func TestScheduledOn_FiltersByDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NoError(t, env.bootstrap.Initialize(ctx))

	onFifth, err := env.jobs.ScheduledOn(ctx, "2025-05-05")
	require.NoError(t, err)
	require.Len(t, onFifth, 1)
	assert.Equal(t, "j1", onFifth[0].ID)

	none, err := env.jobs.ScheduledOn(ctx, "2030-01-01")
	require.NoError(t, err)
	assert.Empty(t, none)
}
