package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/avelkovs/fleetdesk/internal/logging"
	"github.com/avelkovs/fleetdesk/internal/repositories/components"
	"github.com/avelkovs/fleetdesk/internal/repositories/jobs"
	"github.com/avelkovs/fleetdesk/internal/repositories/notifications"
	"github.com/avelkovs/fleetdesk/internal/repositories/session"
	"github.com/avelkovs/fleetdesk/internal/repositories/ships"
	"github.com/avelkovs/fleetdesk/internal/repositories/users"
	"github.com/avelkovs/fleetdesk/internal/storage"
)

// testEnv wires every service over a fresh in-memory store.
type testEnv struct {
	store         *storage.MemoryStore
	bootstrap     *Bootstrap
	auth          AuthService
	ships         ShipService
	components    ComponentService
	jobs          JobService
	notifications NotificationService
	stats         StatsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := storage.NewMemoryStore()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	shipRepo := ships.NewStoreRepository(store, log)
	componentRepo := components.NewStoreRepository(store, log)
	jobRepo := jobs.NewStoreRepository(store, log)
	notificationRepo := notifications.NewStoreRepository(store, log)
	userRepo := users.NewStoreRepository(store, log)
	sessionRepo := session.NewStoreRepository(store, log)

	return &testEnv{
		store:         store,
		bootstrap:     NewBootstrap(store, log),
		auth:          NewAuthService(userRepo, sessionRepo),
		ships:         NewShipService(shipRepo),
		components:    NewComponentService(componentRepo),
		jobs:          NewJobService(jobRepo, notificationRepo),
		notifications: NewNotificationService(notificationRepo),
		stats:         NewStatsService(shipRepo, componentRepo, jobRepo),
	}
}

// fixedNow pins the job service clock for deterministic timestamps.
func (e *testEnv) fixedNow(t *testing.T, now time.Time) {
	t.Helper()
	e.jobs.(*jobService).now = func() time.Time { return now }
}
