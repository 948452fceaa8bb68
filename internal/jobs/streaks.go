package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/studyhive/studyhive-lambda/internal/config"
	"github.com/studyhive/studyhive-lambda/internal/progress"
)

// Scheduler runs the recurring maintenance jobs. It is only started when the
// service runs as a long-lived process; on Lambda the jobs are expected to be
// triggered by scheduled events instead.
type Scheduler struct {
	cron         *cron.Cron
	progressRepo progress.Repository
}

func NewScheduler(progressRepo progress.Repository) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		progressRepo: progressRepo,
	}
}

// Start registers the jobs and launches the cron loop in its own goroutine.
func (s *Scheduler) Start() error {
	// Shortly after midnight UTC, so "yesterday" is fully over everywhere
	// the timestamps are written.
	if _, err := s.cron.AddFunc("0 5 * * *", s.expireStaleStreaks); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// expireStaleStreaks zeroes the current streak of every user who did not log
// in yesterday or today. Best streaks are never touched.
func (s *Scheduler) expireStaleStreaks() {
	log := config.WithContext(context.Background())

	cutoff := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	affected, err := s.progressRepo.ExpireStaleStreaks(cutoff)
	if err != nil {
		log.WithError(err).Error("Failed to expire stale streaks")
		return
	}

	log.Infof("Expired streaks for %d users", affected)
}
