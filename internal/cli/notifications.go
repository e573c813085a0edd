package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) ListNotifications(ctx context.Context) {
	feed, err := a.notifications.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(feed) == 0 {
		fmt.Fprintln(a.out, "No notifications")
		return
	}

	for _, n := range feed {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s\t[%s]\t%s\t%s\n",
			marker, n.ID, n.Type, n.Message, n.Timestamp.Format(time.RFC3339))
	}
}

func (a *App) MarkNotificationRead(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: read <id>")
		return
	}

	if err := a.notifications.MarkRead(ctx, args[0]); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Marked as read")
}

func (a *App) MarkAllNotificationsRead(ctx context.Context) {
	if err := a.notifications.MarkAllRead(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "All notifications marked as read")
}
