package usecase

import (
	"context"
	"log/slog"
	"time"

	"ResearchCatalog/internal/ports"
)

// DailyJob is a use case run once per scheduler trigger.
type DailyJob interface {
	ProcessDay(ctx context.Context, day time.Time) error
}

// Scheduler wires the ticker driver with a daily job.
type Scheduler struct {
	driver ports.Scheduler
	job    DailyJob
	loc    *time.Location
	logger *slog.Logger
}

// NewScheduler returns a helper to start/stop recurring jobs. Triggers are
// converted to loc before reaching the job.
func NewScheduler(driver ports.Scheduler, job DailyJob, loc *time.Location, logger *slog.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{driver: driver, job: job, loc: loc, logger: logger}
}

// Start registers the job with the provided scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.job == nil {
		return nil
	}

	run := func(trigger time.Time) {
		if err := s.job.ProcessDay(ctx, trigger.In(s.loc)); err != nil && s.logger != nil {
			s.logger.Error("scheduled job failed", "error", err)
		}
	}

	return s.driver.Start(ctx, run)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
