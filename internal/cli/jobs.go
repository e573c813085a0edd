package cli

import (
	"context"
	"fmt"

	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/services"
)

func (a *App) ListJobs(ctx context.Context) {
	jobList, err := a.jobs.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(jobList) == 0 {
		fmt.Fprintln(a.out, "No jobs")
		return
	}

	shipList, err := a.ships.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	componentList, err := a.components.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	userList, err := a.users.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	for _, j := range jobList {
		fmt.Fprintf(a.out, "%s\t%s\t%s/%s\t%s\t%s\tengineer=%s\tscheduled %s\n",
			j.ID, j.Type,
			services.ShipName(shipList, j.ShipID),
			services.ComponentName(componentList, j.ComponentID),
			j.Priority, j.Status,
			services.EngineerEmail(userList, j.AssignedEngineerID),
			j.ScheduledDate)
	}
}

func (a *App) AddJob(ctx context.Context) {
	if !a.can(ctx, models.ActionCreateJob) {
		return
	}

	componentID, err := GetSimpleText(a.reader, "Component id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	shipID, err := GetSimpleText(a.reader, "Ship id", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	jobType, err := GetSimpleText(a.reader, "Job type", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	scheduled, err := GetSimpleText(a.reader, "Scheduled date (YYYY-MM-DD)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	job, err := a.jobs.Upsert(ctx, models.Job{
		ComponentID:   componentID,
		ShipID:        shipID,
		Type:          jobType,
		Priority:      models.JobPriorityMedium,
		Status:        models.JobStatusOpen,
		ScheduledDate: scheduled,
	})
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Created job %s\n", job.ID)
}

func (a *App) CompleteJob(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: complete <id>")
		return
	}
	if !a.can(ctx, models.ActionEditJob) {
		return
	}

	jobList, err := a.jobs.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	for _, j := range jobList {
		if j.ID == args[0] {
			j.Status = models.JobStatusCompleted
			if _, err := a.jobs.Upsert(ctx, j); err != nil {
				fmt.Fprintf(a.out, "error: %v\n", err)
				return
			}
			fmt.Fprintf(a.out, "Job %s completed\n", j.ID)
			return
		}
	}
	fmt.Fprintf(a.out, "Job %s not found\n", args[0])
}

func (a *App) Calendar(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: calendar <YYYY-MM-DD>")
		return
	}

	jobList, err := a.jobs.ScheduledOn(ctx, args[0])
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(jobList) == 0 {
		fmt.Fprintf(a.out, "No jobs scheduled on %s\n", args[0])
		return
	}
	for _, j := range jobList {
		fmt.Fprintf(a.out, "%s\t%s\t%s\t%s\n", j.ID, j.Type, j.Priority, j.Status)
	}
}
