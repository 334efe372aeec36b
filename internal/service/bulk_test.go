package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsdesk/internal/domain"
	"newsdesk/internal/service/mocks"
)

type BulkSyncTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	sources *mocks.MockSourceStore
	syncer  *mocks.MockSyncer

	service *BulkSyncService
	events  []domain.ProgressEvent
}

func (s *BulkSyncTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sources = mocks.NewMockSourceStore(s.ctrl)
	s.syncer = mocks.NewMockSyncer(s.ctrl)
	s.events = nil

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewBulkSyncService(s.sources, s.syncer, logger)
}

func (s *BulkSyncTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBulkSyncTestSuite(t *testing.T) {
	suite.Run(t, new(BulkSyncTestSuite))
}

func (s *BulkSyncTestSuite) sink(e domain.ProgressEvent) {
	s.events = append(s.events, e)
}

func (s *BulkSyncTestSuite) eventTypes() []domain.ProgressEventType {
	types := make([]domain.ProgressEventType, 0, len(s.events))
	for _, e := range s.events {
		types = append(types, e.Type)
	}
	return types
}

func (s *BulkSyncTestSuite) TestSyncAll() {
	ctx := context.Background()
	sources := []domain.Source{
		{ID: "src-1", Name: "Newsletters"},
		{ID: "src-2", Name: "Tech Blog"},
	}

	s.sources.EXPECT().ListActiveByUser(ctx, "user-1").Return(sources, nil)
	s.syncer.EXPECT().SyncSource(gomock.Any(), "src-1", gomock.Any()).
		Return(&domain.SyncStats{New: 3, Skipped: 1}, nil)
	s.syncer.EXPECT().SyncSource(gomock.Any(), "src-2", gomock.Any()).
		Return(&domain.SyncStats{New: 2, Errors: 1}, nil)

	stats, err := s.service.SyncAll(ctx, "user-1", s.sink)
	s.Require().NoError(err)

	s.Equal(2, stats.Sources)
	s.Equal(5, stats.New)
	s.Equal(1, stats.Skipped)
	s.Equal(1, stats.Errors)

	s.Equal([]domain.ProgressEventType{
		domain.EventTypeStart,
		domain.EventTypeSourceStart,
		domain.EventTypeSourceDone,
		domain.EventTypeSourceStart,
		domain.EventTypeSourceDone,
		domain.EventTypeDone,
	}, s.eventTypes())

	done := s.events[len(s.events)-1]
	s.Equal(5, done.NewCount)
	s.Equal(1, done.SkipCount)
	s.Equal(1, done.ErrorCount)
}

func (s *BulkSyncTestSuite) TestSyncAll_SourceFailureIsolated() {
	ctx := context.Background()
	sources := []domain.Source{
		{ID: "src-1", Name: "Broken"},
		{ID: "src-2", Name: "Fine"},
	}

	s.sources.EXPECT().ListActiveByUser(ctx, "user-1").Return(sources, nil)
	s.syncer.EXPECT().SyncSource(gomock.Any(), "src-1", gomock.Any()).
		Return(nil, errors.New("scrape failed"))
	s.syncer.EXPECT().SyncSource(gomock.Any(), "src-2", gomock.Any()).
		Return(&domain.SyncStats{New: 1}, nil)

	stats, err := s.service.SyncAll(ctx, "user-1", s.sink)
	s.Require().NoError(err)

	s.Equal(1, stats.New)
	s.Equal(1, stats.Errors)

	// The failed source still gets a source_done carrying its error.
	var failedDone *domain.ProgressEvent
	for i := range s.events {
		if s.events[i].Type == domain.EventTypeSourceDone && s.events[i].SourceID == "src-1" {
			failedDone = &s.events[i]
		}
	}
	s.Require().NotNil(failedDone)
	s.Equal("scrape failed", failedDone.Error)
}

func (s *BulkSyncTestSuite) TestSyncAll_CancellationStopsBetweenSources() {
	ctx, cancel := context.WithCancel(context.Background())
	sources := []domain.Source{
		{ID: "src-1", Name: "First"},
		{ID: "src-2", Name: "Never reached"},
	}

	s.sources.EXPECT().ListActiveByUser(gomock.Any(), "user-1").Return(sources, nil)
	s.syncer.EXPECT().SyncSource(gomock.Any(), "src-1", gomock.Any()).
		DoAndReturn(func(context.Context, string, domain.ProgressSink) (*domain.SyncStats, error) {
			cancel()
			return &domain.SyncStats{New: 1}, nil
		})

	stats, err := s.service.SyncAll(ctx, "user-1", s.sink)
	s.ErrorIs(err, context.Canceled)
	s.Equal(1, stats.New)

	types := s.eventTypes()
	s.Equal(domain.EventTypeError, types[len(types)-1])
	s.NotContains(types, domain.EventTypeDone)
}

func (s *BulkSyncTestSuite) TestSyncAll_CancellationMidSource() {
	ctx := context.Background()
	sources := []domain.Source{{ID: "src-1", Name: "First"}}

	s.sources.EXPECT().ListActiveByUser(ctx, "user-1").Return(sources, nil)
	s.syncer.EXPECT().SyncSource(gomock.Any(), "src-1", gomock.Any()).
		Return(nil, context.Canceled)

	_, err := s.service.SyncAll(ctx, "user-1", s.sink)
	s.ErrorIs(err, context.Canceled)
}

func (s *BulkSyncTestSuite) TestSyncAllUsers() {
	ctx := context.Background()

	s.sources.EXPECT().ListActiveUserIDs(ctx).Return([]string{"user-1", "user-2"}, nil)
	s.sources.EXPECT().ListActiveByUser(ctx, "user-1").
		Return([]domain.Source{{ID: "src-1", Name: "Newsletters"}}, nil)
	s.sources.EXPECT().ListActiveByUser(ctx, "user-2").
		Return([]domain.Source{{ID: "src-2", Name: "Tech Blog"}}, nil)
	s.syncer.EXPECT().SyncSource(gomock.Any(), "src-1", gomock.Any()).
		Return(&domain.SyncStats{New: 2}, nil)
	s.syncer.EXPECT().SyncSource(gomock.Any(), "src-2", gomock.Any()).
		Return(&domain.SyncStats{New: 1, Skipped: 4}, nil)

	stats, err := s.service.SyncAllUsers(ctx, nil)
	s.Require().NoError(err)

	s.Equal(2, stats.Sources)
	s.Equal(3, stats.New)
	s.Equal(4, stats.Skipped)
	s.Equal(0, stats.Errors)
}

func (s *BulkSyncTestSuite) TestSyncAllUsers_UserFailureIsolated() {
	ctx := context.Background()

	s.sources.EXPECT().ListActiveUserIDs(ctx).Return([]string{"user-1", "user-2"}, nil)
	s.sources.EXPECT().ListActiveByUser(ctx, "user-1").
		Return(nil, errors.New("db down"))
	s.sources.EXPECT().ListActiveByUser(ctx, "user-2").
		Return([]domain.Source{{ID: "src-2", Name: "Fine"}}, nil)
	s.syncer.EXPECT().SyncSource(gomock.Any(), "src-2", gomock.Any()).
		Return(&domain.SyncStats{New: 1}, nil)

	stats, err := s.service.SyncAllUsers(ctx, nil)
	s.Require().NoError(err)
	s.Equal(1, stats.New)
}

func (s *BulkSyncTestSuite) TestSyncAllUsers_Cancellation() {
	ctx, cancel := context.WithCancel(context.Background())

	s.sources.EXPECT().ListActiveUserIDs(gomock.Any()).Return([]string{"user-1", "user-2"}, nil)
	s.sources.EXPECT().ListActiveByUser(gomock.Any(), "user-1").
		Return([]domain.Source{{ID: "src-1", Name: "First"}}, nil)
	s.syncer.EXPECT().SyncSource(gomock.Any(), "src-1", gomock.Any()).
		DoAndReturn(func(context.Context, string, domain.ProgressSink) (*domain.SyncStats, error) {
			cancel()
			return &domain.SyncStats{New: 1}, nil
		})

	stats, err := s.service.SyncAllUsers(ctx, nil)
	s.ErrorIs(err, context.Canceled)
	s.Equal(1, stats.New)
}

func (s *BulkSyncTestSuite) TestSyncAll_NoSources() {
	ctx := context.Background()
	s.sources.EXPECT().ListActiveByUser(ctx, "user-1").Return(nil, nil)

	stats, err := s.service.SyncAll(ctx, "user-1", s.sink)
	s.Require().NoError(err)
	s.Equal(0, stats.Sources)

	s.Equal([]domain.ProgressEventType{
		domain.EventTypeStart,
		domain.EventTypeDone,
	}, s.eventTypes())
}
