package services

import "github.com/avelkovs/fleetdesk/internal/models"

// NotAvailable is the display placeholder for a dangling reference. Dangling
// shipId/componentId/assignedEngineerId values are valid stored state and
// must never fail a read.
const NotAvailable = "N/A"

// ShipName resolves a ship id to its name, or NotAvailable.
func ShipName(all []models.Ship, id string) string {
	for _, s := range all {
		if s.ID == id {
			return s.Name
		}
	}
	return NotAvailable
}

// ComponentName resolves a component id to its name, or NotAvailable.
func ComponentName(all []models.Component, id string) string {
	for _, c := range all {
		if c.ID == id {
			return c.Name
		}
	}
	return NotAvailable
}

// EngineerEmail resolves a user id to its email, or NotAvailable.
func EngineerEmail(all []models.User, id string) string {
	for _, u := range all {
		if u.ID == id {
			return u.Email
		}
	}
	return NotAvailable
}
