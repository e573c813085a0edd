package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) Stats(ctx context.Context) {
	sum, err := a.stats.Summary(ctx, time.Now())
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintf(a.out, "Ships: %d\n", sum.TotalShips)
	fmt.Fprintf(a.out, "Overdue components: %d\n", sum.OverdueComponents)
	fmt.Fprintf(a.out, "Jobs in progress: %d\n", sum.JobsInProgress)
	fmt.Fprintf(a.out, "Jobs completed: %d\n", sum.JobsCompleted)
}
