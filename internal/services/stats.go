package services

import (
	"context"
	"time"

	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/repositories/components"
	"github.com/avelkovs/fleetdesk/internal/repositories/jobs"
	"github.com/avelkovs/fleetdesk/internal/repositories/ships"
)

// Summary holds the dashboard KPI counters.
type Summary struct {
	TotalShips        int
	OverdueComponents int
	JobsInProgress    int
	JobsCompleted     int
}

// StatsService aggregates dashboard counters from the stored collections.
type StatsService interface {
	Summary(ctx context.Context, now time.Time) (Summary, error)
}

type statsService struct {
	ships      ships.Repository
	components components.Repository
	jobs       jobs.Repository
}

func NewStatsService(s ships.Repository, c components.Repository, j jobs.Repository) StatsService {
	return &statsService{ships: s, components: c, jobs: j}
}

func (s *statsService) Summary(ctx context.Context, now time.Time) (Summary, error) {
	var sum Summary

	allShips, err := s.ships.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	sum.TotalShips = len(allShips)

	allComponents, err := s.components.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	for _, c := range allComponents {
		if c.Overdue(now) {
			sum.OverdueComponents++
		}
	}

	allJobs, err := s.jobs.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	for _, j := range allJobs {
		switch j.Status {
		case models.JobStatusInProgress:
			sum.JobsInProgress++
		case models.JobStatusCompleted:
			sum.JobsCompleted++
		}
	}

	return sum, nil
}
