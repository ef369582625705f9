package scheduler

import (
	"context"
	"log/slog"
	"time"

	"newsreel/internal/domain"
)

// Runner is one schedulable unit of pipeline work.
type Runner interface {
	Name() string
	Run(ctx context.Context) (*domain.StageStats, error)
}

// Trigger binds a runner to its own cadence.
type Trigger struct {
	runner   Runner
	interval time.Duration
	nextDue  time.Time
}

// Scheduler drives all stage triggers on one cooperative loop: each tick it
// runs every due trigger to completion before sleeping again. Stages share
// nothing here; the record store's status predicates partition the work, so
// runners may equally be driven from separate goroutines.
type Scheduler struct {
	triggers   []*Trigger
	tick       time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		tick:       time.Second,
		runTimeout: 30 * time.Minute,
		logger:     logger,
	}
}

// Add registers a runner on its own interval. The first run happens on the
// first tick after Start.
func (s *Scheduler) Add(runner Runner, interval time.Duration) {
	s.triggers = append(s.triggers, &Trigger{
		runner:   runner,
		interval: interval,
	})
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "triggers", len(s.triggers))

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case now := <-ticker.C:
			s.runDue(ctx, now)
		}
	}
}

func (s *Scheduler) runDue(ctx context.Context, now time.Time) {
	for _, trigger := range s.triggers {
		if now.Before(trigger.nextDue) {
			continue
		}

		s.runOne(ctx, trigger)

		// Next due is measured from completion so a slow stage does not
		// immediately re-fire.
		trigger.nextDue = time.Now().Add(trigger.interval)

		if ctx.Err() != nil {
			return
		}
	}
}

func (s *Scheduler) runOne(ctx context.Context, trigger *Trigger) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if _, err := trigger.runner.Run(runCtx); err != nil {
		s.logger.Error("stage run failed", "stage", trigger.runner.Name(), "error", err)
	}
}
