package models

import "time"

// DateLayout is the calendar-date format used by installDate,
// lastMaintenanceDate, and scheduledDate fields.
const DateLayout = "2006-01-02"

// overdueAfterMonths is how long a component may go without maintenance
// before it is considered overdue.
const overdueAfterMonths = 6

// Component is a piece of equipment installed on a ship. ShipID is not
// validated against the ships collection; a dangling reference resolves to
// "N/A" on display.
type Component struct {
	ID                  string `json:"id"`
	ShipID              string `json:"shipId"`
	Name                string `json:"name"`
	SerialNumber        string `json:"serialNumber"`
	InstallDate         string `json:"installDate"`
	LastMaintenanceDate string `json:"lastMaintenanceDate"`
}

// Overdue reports whether the component's last maintenance date lies more
// than six months before now. The status is computed on read, never stored.
// An empty or unparseable date is not overdue.
func (c Component) Overdue(now time.Time) bool {
	last, err := time.Parse(DateLayout, c.LastMaintenanceDate)
	if err != nil {
		return false
	}
	return last.Before(now.AddDate(0, -overdueAfterMonths, 0))
}
