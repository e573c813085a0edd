package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus(ctx context.Context) string {
	user, err := a.auth.Current(ctx)
	if err != nil || user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.Email, user.Role)
}

// Root runs the command loop until "exit" or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to FleetDesk (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "fleet %s> ", a.getStatus(ctx))

		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.Help(ctx)

		case "login":
			a.Login(ctx)

		case "logout":
			a.Logout(ctx)

		case "whoami":
			a.WhoAmI(ctx)

		case "ships":
			a.ListShips(ctx)

		case "addship":
			a.AddShip(ctx)

		case "delship":
			a.DeleteShip(ctx, args)

		case "components":
			a.ListComponents(ctx, args)

		case "overdue":
			a.ListOverdueComponents(ctx)

		case "jobs":
			a.ListJobs(ctx)

		case "addjob":
			a.AddJob(ctx)

		case "complete":
			a.CompleteJob(ctx, args)

		case "calendar":
			a.Calendar(ctx, args)

		case "notifications":
			a.ListNotifications(ctx)

		case "read":
			a.MarkNotificationRead(ctx, args)

		case "readall":
			a.MarkAllNotificationsRead(ctx)

		case "stats":
			a.Stats(ctx)

		case "exit":
			return

		default:
			fmt.Fprintf(a.out, "Unknown command: %s\n", cmd)
		}
	}
}

func (a *App) Help(ctx context.Context) {
	user, err := a.auth.Current(ctx)
	if err == nil && user != nil {
		fmt.Fprintln(a.out, "Available commands: ships, addship, delship, components, overdue, jobs, addjob, complete, calendar, notifications, read, readall, stats, whoami, logout, exit")
		return
	}
	fmt.Fprintln(a.out, "Available commands: login, exit")
}

func (a *App) WhoAmI(ctx context.Context) {
	user, err := a.auth.Current(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return
	}
	fmt.Fprintf(a.out, "%s (%s)\n", user.Email, user.Role)
	fmt.Fprintf(a.out, "Allowed actions: %v\n", user.Role.AllowedActions())
}
