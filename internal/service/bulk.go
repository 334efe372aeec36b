package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"newsdesk/internal/domain"
)

// BulkSyncService runs all of a user's active sources sequentially,
// streaming progress events to the sink. One failing source never stops
// the run; cancellation between sources does.
type BulkSyncService struct {
	sources SourceStore
	syncer  Syncer
	logger  *slog.Logger
}

func NewBulkSyncService(sources SourceStore, syncer Syncer, logger *slog.Logger) *BulkSyncService {
	return &BulkSyncService{
		sources: sources,
		syncer:  syncer,
		logger:  logger.With("component", "bulk"),
	}
}

// SyncAllUsers syncs the active sources of every user that has any. Used by
// the background scheduler, where no client is listening for progress.
func (s *BulkSyncService) SyncAllUsers(ctx context.Context, sink domain.ProgressSink) (*domain.BulkStats, error) {
	startTime := time.Now()

	userIDs, err := s.sources.ListActiveUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	total := &domain.BulkStats{}
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			total.Duration = time.Since(startTime)
			return total, err
		}

		stats, err := s.SyncAll(ctx, userID, sink)
		if stats != nil {
			total.Sources += stats.Sources
			total.New += stats.New
			total.Skipped += stats.Skipped
			total.Errors += stats.Errors
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return total, err
			}
			s.logger.Warn("user sync failed", "user_id", userID, "error", err)
		}
	}
	total.Duration = time.Since(startTime)
	return total, nil
}

// SyncAll syncs every active source of the user, in stored order.
func (s *BulkSyncService) SyncAll(ctx context.Context, userID string, sink domain.ProgressSink) (*domain.BulkStats, error) {
	startTime := time.Now()

	sources, err := s.sources.ListActiveByUser(ctx, userID)
	if err != nil {
		emit(sink, domain.ProgressEvent{Type: domain.EventTypeError, Error: err.Error()})
		return nil, err
	}

	bulk := &domain.BulkStats{Sources: len(sources)}
	emit(sink, domain.ProgressEvent{Type: domain.EventTypeStart, TotalSources: len(sources)})

	for i := range sources {
		src := &sources[i]

		if err := ctx.Err(); err != nil {
			emit(sink, domain.ProgressEvent{Type: domain.EventTypeError, Error: err.Error()})
			bulk.Duration = time.Since(startTime)
			return bulk, err
		}

		emit(sink, domain.ProgressEvent{
			Type:         domain.EventTypeSourceStart,
			SourceID:     src.ID,
			SourceName:   src.Name,
			SourceIndex:  i + 1,
			TotalSources: len(sources),
		})

		stats, err := s.syncer.SyncSource(ctx, src.ID, sink)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				emit(sink, domain.ProgressEvent{Type: domain.EventTypeError, SourceID: src.ID, Error: err.Error()})
				bulk.Duration = time.Since(startTime)
				return bulk, err
			}

			bulk.Errors++
			s.logger.Warn("source sync failed", "source_id", src.ID, "error", err)
			emit(sink, domain.ProgressEvent{
				Type:       domain.EventTypeSourceDone,
				SourceID:   src.ID,
				SourceName: src.Name,
				ErrorCount: 1,
				Error:      err.Error(),
			})
			continue
		}

		bulk.New += stats.New
		bulk.Skipped += stats.Skipped
		bulk.Errors += stats.Errors
		emit(sink, domain.ProgressEvent{
			Type:       domain.EventTypeSourceDone,
			SourceID:   src.ID,
			SourceName: src.Name,
			NewCount:   stats.New,
			SkipCount:  stats.Skipped,
			ErrorCount: stats.Errors,
		})
	}

	bulk.Duration = time.Since(startTime)
	emit(sink, domain.ProgressEvent{
		Type:       domain.EventTypeDone,
		NewCount:   bulk.New,
		SkipCount:  bulk.Skipped,
		ErrorCount: bulk.Errors,
	})

	s.logger.Info("bulk sync completed",
		"sources", bulk.Sources,
		"new", bulk.New,
		"skipped", bulk.Skipped,
		"errors", bulk.Errors,
		"duration", bulk.Duration,
	)
	return bulk, nil
}
