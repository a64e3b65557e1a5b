package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 30 * time.Second

type Scheduler struct {
	cron     *cron.Cron
	archiver *SnapshotArchiver
	schedule string
	logger   *slog.Logger
}

// NewScheduler creates a cron with seconds precision. schedule uses the six
// field format, e.g. "0 */15 * * * *".
func NewScheduler(archiver *SnapshotArchiver, schedule string, logger *slog.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	return &Scheduler{
		cron:     c,
		archiver: archiver,
		schedule: schedule,
		logger:   logger,
	}
}

// Start registers the snapshot job and starts the cron.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runSnapshot); err != nil {
		return fmt.Errorf("invalid snapshot schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.logger.Info("snapshot scheduler started", slog.String("schedule", s.schedule))
	return nil
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("snapshot scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("snapshot scheduler stop timed out")
	}
}

// RunNow triggers the snapshot job synchronously.
func (s *Scheduler) RunNow() {
	s.runSnapshot()
}

func (s *Scheduler) runSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.archiver.Archive(ctx); err != nil {
		s.logger.Error("scheduled snapshot failed", slog.Any("error", err))
	}
}
