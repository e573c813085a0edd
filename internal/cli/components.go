package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/services"
)

func (a *App) ListComponents(ctx context.Context, args []string) {
	var componentList []models.Component
	var err error
	if len(args) == 1 {
		componentList, err = a.components.ListByShip(ctx, args[0])
	} else {
		componentList, err = a.components.List(ctx)
	}
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(componentList) == 0 {
		fmt.Fprintln(a.out, "No components")
		return
	}

	shipList, err := a.ships.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	for _, c := range componentList {
		fmt.Fprintf(a.out, "%s\t%s\tS/N %s\tship=%s\tlast maintenance %s\n",
			c.ID, c.Name, c.SerialNumber, services.ShipName(shipList, c.ShipID), c.LastMaintenanceDate)
	}
}

func (a *App) ListOverdueComponents(ctx context.Context) {
	overdue, err := a.components.ListOverdue(ctx, time.Now())
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(overdue) == 0 {
		fmt.Fprintln(a.out, "No overdue components")
		return
	}
	for _, c := range overdue {
		fmt.Fprintf(a.out, "%s\t%s\tlast maintenance %s\n", c.ID, c.Name, c.LastMaintenanceDate)
	}
}
