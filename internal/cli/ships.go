package cli

import (
	"context"
	"fmt"

	"github.com/avelkovs/fleetdesk/internal/models"
)

// can checks the current session against the role table and prints a denial
// message when the action is not permitted.
func (a *App) can(ctx context.Context, action models.Action) bool {
	ok, err := a.auth.Can(ctx, action)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return false
	}
	if !ok {
		fmt.Fprintln(a.out, "Permission denied")
	}
	return ok
}

func (a *App) ListShips(ctx context.Context) {
	shipList, err := a.ships.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(shipList) == 0 {
		fmt.Fprintln(a.out, "No ships")
		return
	}
	for _, s := range shipList {
		fmt.Fprintf(a.out, "%s\t%s\tIMO %s\t%s\t%s\n", s.ID, s.Name, s.IMO, s.Flag, s.Status)
	}
}

func (a *App) AddShip(ctx context.Context) {
	if !a.can(ctx, models.ActionCreateShip) {
		return
	}

	name, err := GetSimpleText(a.reader, "Ship name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	imo, err := GetSimpleText(a.reader, "IMO number", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	flag, err := GetSimpleText(a.reader, "Flag", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	ship, err := a.ships.Upsert(ctx, models.Ship{
		Name: name, IMO: imo, Flag: flag, Status: models.ShipStatusActive,
	})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Created ship %s\n", ship.ID)
}

func (a *App) DeleteShip(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: delship <id>")
		return
	}
	if !a.can(ctx, models.ActionDeleteShip) {
		return
	}

	if err := a.ships.Remove(ctx, args[0]); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Deleted ship %s (components and jobs are kept)\n", args[0])
}
