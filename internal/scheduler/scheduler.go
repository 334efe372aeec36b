package scheduler

import (
	"context"
	"log/slog"
	"time"

	"newsdesk/internal/domain"
)

// BulkSyncer runs a full sync pass over every active source.
type BulkSyncer interface {
	SyncAllUsers(ctx context.Context, sink domain.ProgressSink) (*domain.BulkStats, error)
}

type Scheduler struct {
	syncer   BulkSyncer
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer BulkSyncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	// A pass never outlives its own interval.
	syncCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if _, err := s.syncer.SyncAllUsers(syncCtx, nil); err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}
