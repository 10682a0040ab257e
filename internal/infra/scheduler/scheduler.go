package scheduler

import (
	"context"
	"time"

	"homework_status_bot/internal/app" // For PollingService interface

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// fallbackInterval is used when the schedule yields no future run time.
const fallbackInterval = 10 * time.Minute

// PollScheduler repeats polling cycles one after another. The next cycle
// starts at schedule.Next(end of the previous one), so cycles never overlap.
type PollScheduler struct {
	service  app.PollingService
	schedule cron.Schedule
	logger   *logrus.Entry
	now      func() time.Time
}

func NewPollScheduler(service app.PollingService, schedule cron.Schedule, logger *logrus.Entry) *PollScheduler {
	return &PollScheduler{
		service:  service,
		schedule: schedule,
		logger:   logger,
		now:      time.Now,
	}
}

// ParseSchedule parses a standard cron spec, "@every 10m" included.
func ParseSchedule(spec string) (cron.Schedule, error) {
	return cron.ParseStandard(spec)
}

// Run blocks until ctx is cancelled. Cycle errors never stop the loop.
func (s *PollScheduler) Run(ctx context.Context) {
	s.logger.Info("Starting poll scheduler")

	for ctx.Err() == nil {
		if err := s.service.RunCycle(ctx); err != nil {
			s.logger.WithError(err).Debug("Cycle finished with error, will retry on schedule")
		}

		now := s.now()
		next := s.schedule.Next(now)
		if next.IsZero() || !next.After(now) {
			s.logger.WithField("fallback", fallbackInterval.String()).Warn("Schedule has no future run, using fallback interval")
			next = now.Add(fallbackInterval)
		}
		s.logger.WithField("next_run", next.Format(time.RFC3339)).Debug("Waiting for next cycle")

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
		case <-timer.C:
		}
	}

	s.logger.Info("Poll scheduler stopped")
}
