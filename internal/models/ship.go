package models

// ShipStatus is the operational state of a ship.
type ShipStatus string

const (
	ShipStatusActive           ShipStatus = "Active"
	ShipStatusUnderMaintenance ShipStatus = "Under Maintenance"
	ShipStatusInactive         ShipStatus = "Inactive"
)

// Ship is a vessel in the fleet. IMO is the registry identifier, treated as
// an opaque string. Deleting a ship does not cascade to its components or
// jobs; orphaned child records are a valid state.
type Ship struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	IMO    string     `json:"imo"`
	Flag   string     `json:"flag"`
	Status ShipStatus `json:"status"`
}
