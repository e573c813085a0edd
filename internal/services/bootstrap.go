// Package services contains the FleetDesk application services: idempotent
// store seeding, the session/role gate, entity CRUD, the notification
// side-effect generator for job mutations, and dashboard aggregates.
package services

import (
	"context"
	"fmt"

	"github.com/avelkovs/fleetdesk/internal/logging"
	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/collection"
	"github.com/avelkovs/fleetdesk/internal/storage"
)

var seedUsers = []models.User{
	{ID: "1", Role: models.RoleAdmin, Email: "admin@entnt.in", Password: "admin123"},
	{ID: "2", Role: models.RoleInspector, Email: "inspector@entnt.in", Password: "inspect123"},
	{ID: "3", Role: models.RoleEngineer, Email: "engineer@entnt.in", Password: "engine123"},
}

var seedShips = []models.Ship{
	{ID: "s1", Name: "Ever Given", IMO: "9811000", Flag: "Panama", Status: models.ShipStatusActive},
	{ID: "s2", Name: "Maersk Alabama", IMO: "9164263", Flag: "USA", Status: models.ShipStatusUnderMaintenance},
}

var seedComponents = []models.Component{
	{ID: "c1", ShipID: "s1", Name: "Main Engine", SerialNumber: "ME-1234", InstallDate: "2020-01-10", LastMaintenanceDate: "2024-03-12"},
	{ID: "c2", ShipID: "s2", Name: "Radar", SerialNumber: "RAD-5678", InstallDate: "2021-07-18", LastMaintenanceDate: "2023-12-01"},
}

var seedJobs = []models.Job{
	{ID: "j1", ComponentID: "c1", ShipID: "s1", Type: "Inspection", Priority: models.JobPriorityHigh, Status: models.JobStatusOpen, AssignedEngineerID: "3", ScheduledDate: "2025-05-05"},
	{ID: "j2", ComponentID: "c2", ShipID: "s2", Type: "Inspection", Priority: models.JobPriorityHigh, Status: models.JobStatusOpen, AssignedEngineerID: "3", ScheduledDate: "2025-05-06"},
}

// Bootstrap seeds the store on first start.
type Bootstrap struct {
	store storage.Store
	log   logging.Logger
}

func NewBootstrap(store storage.Store, log logging.Logger) *Bootstrap {
	return &Bootstrap{store: store, log: log}
}

// Initialize populates the store with the fixed seed data unless a users
// collection already exists. It is safe to call on every start: a seeded
// store is left untouched.
func (b *Bootstrap) Initialize(ctx context.Context) error {
	raw, err := b.store.ReadCollection(ctx, storage.CollectionUsers)
	if err != nil {
		return fmt.Errorf("failed to check store state: %w", err)
	}
	if raw != nil {
		return nil
	}

	b.log.Info(ctx, "seeding empty store")

	if err := collection.New[models.User](b.store, storage.CollectionUsers, b.log).Save(ctx, seedUsers); err != nil {
		return err
	}
	if err := collection.New[models.Ship](b.store, storage.CollectionShips, b.log).Save(ctx, seedShips); err != nil {
		return err
	}
	if err := collection.New[models.Component](b.store, storage.CollectionComponents, b.log).Save(ctx, seedComponents); err != nil {
		return err
	}
	if err := collection.New[models.Job](b.store, storage.CollectionJobs, b.log).Save(ctx, seedJobs); err != nil {
		return err
	}
	return collection.New[models.Notification](b.store, storage.CollectionNotifications, b.log).Save(ctx, nil)
}
