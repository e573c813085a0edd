// Package cli implements the interactive FleetDesk console: a small REPL
// over the application services with role-gated commands.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/avelkovs/fleetdesk/internal/config"
	"github.com/avelkovs/fleetdesk/internal/logging"
	"github.com/avelkovs/fleetdesk/internal/repositories/components"
	"github.com/avelkovs/fleetdesk/internal/repositories/jobs"
	"github.com/avelkovs/fleetdesk/internal/repositories/notifications"
	"github.com/avelkovs/fleetdesk/internal/repositories/session"
	"github.com/avelkovs/fleetdesk/internal/repositories/ships"
	"github.com/avelkovs/fleetdesk/internal/repositories/users"
	"github.com/avelkovs/fleetdesk/internal/services"
	"github.com/avelkovs/fleetdesk/internal/storage"
)

type App struct {
	config        *config.Config
	log           logging.Logger
	store         *storage.SQLiteStore
	auth          services.AuthService
	ships         services.ShipService
	components    services.ComponentService
	jobs          services.JobService
	notifications services.NotificationService
	stats         services.StatsService
	users         users.Repository

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local store, seeds it when empty, and wires the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.OpenSQLite(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	if err := services.NewBootstrap(store, log).Initialize(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	shipRepo := ships.NewStoreRepository(store, log)
	componentRepo := components.NewStoreRepository(store, log)
	jobRepo := jobs.NewStoreRepository(store, log)
	notificationRepo := notifications.NewStoreRepository(store, log)
	userRepo := users.NewStoreRepository(store, log)
	sessionRepo := session.NewStoreRepository(store, log)

	return &App{
		config:        c,
		log:           log,
		store:         store,
		auth:          services.NewAuthService(userRepo, sessionRepo),
		ships:         services.NewShipService(shipRepo),
		components:    services.NewComponentService(componentRepo),
		jobs:          services.NewJobService(jobRepo, notificationRepo),
		notifications: services.NewNotificationService(notificationRepo),
		stats:         services.NewStatsService(shipRepo, componentRepo, jobRepo),
		users:         userRepo,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

// Run drives the REPL until exit or EOF, then releases the store.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}
