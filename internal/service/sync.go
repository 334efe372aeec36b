package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/config"
	"newsdesk/internal/connector"
	"newsdesk/internal/domain"
	"newsdesk/internal/pattern"
	"newsdesk/internal/scraper"
)

// SyncService runs one source's sync end to end. It is the only writer of
// source status, cursor and last-sync fields; connectors and clients never
// touch persisted state.
type SyncService struct {
	sources    SourceStore
	articles   ArticleStore
	editions   EditionStore
	connectors Connectors
	scraper    Scraper
	intro      IntroGenerator
	txManager  TransactionManager
	publisher  Publisher
	logger     *slog.Logger
	config     config.SyncConfig
}

func NewSyncService(
	sources SourceStore,
	articles ArticleStore,
	editions EditionStore,
	connectors Connectors,
	scraperClient Scraper,
	intro IntroGenerator,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		sources:    sources,
		articles:   articles,
		editions:   editions,
		connectors: connectors,
		scraper:    scraperClient,
		intro:      intro,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger.With("component", "sync"),
		config:     cfg,
	}
}

// SyncSource syncs one source. A source already in SYNCING is rejected with
// domain.ErrSyncInProgress, never queued.
func (s *SyncService) SyncSource(ctx context.Context, sourceID string, sink domain.ProgressSink) (*domain.SyncStats, error) {
	src, err := s.sources.GetByID(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}
	if src.Status == domain.StatusSyncing {
		return nil, domain.ErrSyncInProgress
	}

	startTime := time.Now()
	logger := s.logger.With("source_id", src.ID, "source_name", src.Name, "kind", src.Kind)
	logger.Info("starting sync")

	var stats *domain.SyncStats
	if src.Kind.IsConnector() {
		stats, err = s.syncConnector(ctx, src, sink, logger)
	} else {
		stats, err = s.syncWeb(ctx, src, sink, logger)
	}
	if err != nil {
		return nil, err
	}

	stats.Duration = time.Since(startTime)
	logger.Info("sync completed",
		"fetched", stats.Fetched,
		"new", stats.New,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)
	return stats, nil
}

func (s *SyncService) syncConnector(ctx context.Context, src *domain.Source, sink domain.ProgressSink, logger *slog.Logger) (*domain.SyncStats, error) {
	if src.Credentials == "" || src.Status == domain.StatusDisconnected {
		return nil, domain.ErrNotConnected
	}

	conn, err := s.connectors.Resolve(src.Kind)
	if err != nil {
		return nil, err
	}

	if err := s.setStatus(ctx, src.ID, domain.StatusSyncing); err != nil {
		return nil, fmt.Errorf("mark syncing: %w", err)
	}

	// Connectors may re-authenticate during the fetch and refresh
	// src.Credentials in place; the updated blob is persisted below.
	prevCreds := src.Credentials

	items, err := conn.FetchItems(ctx, src, func(p domain.SyncProgress) {
		logger.Debug("sync progress", "phase", p.Phase, "current", p.Current, "total", p.Total, "label", p.Label)
	})
	if err != nil {
		s.finishWithError(ctx, src, err, prevCreds, logger)
		return nil, err
	}

	stats := &domain.SyncStats{SourceID: src.ID, Fetched: len(items)}
	cursor := src.SyncCursor

	for i := range items {
		item := &items[i]
		emit(sink, domain.ProgressEvent{
			Type:          domain.EventTypeArticleCheck,
			SourceID:      src.ID,
			ArticleURL:    item.URL,
			ArticleTitle:  item.Title,
			ArticleIndex:  i + 1,
			TotalArticles: len(items),
		})

		exists, err := s.itemExists(ctx, src.ID, item)
		if err != nil {
			s.finishWithError(ctx, src, err, prevCreds, logger)
			return nil, err
		}
		if exists {
			stats.Skipped++
			cursor = maxID(conn, cursor, item.ExternalID)
			emit(sink, domain.ProgressEvent{Type: domain.EventTypeArticleSkip, SourceID: src.ID, ArticleURL: item.URL})
			continue
		}

		// A failed item never advances the cursor, but a later item in the
		// same run can. The failure is retried next run only while its id
		// stays above every id that was skipped or saved.
		if err := s.saveItem(ctx, src, item); err != nil {
			stats.Errors++
			logger.Warn("item save failed", "external_id", item.ExternalID, "error", err)
			emit(sink, domain.ProgressEvent{Type: domain.EventTypeArticleError, SourceID: src.ID, ArticleURL: item.URL, Error: err.Error()})
			continue
		}

		stats.New++
		cursor = maxID(conn, cursor, item.ExternalID)
		emit(sink, domain.ProgressEvent{Type: domain.EventTypeArticleNew, SourceID: src.ID, ArticleURL: item.URL, ArticleTitle: item.Title})
	}

	if err := s.finishConnectorSync(ctx, src, cursor, prevCreds); err != nil {
		return stats, fmt.Errorf("finish sync: %w", err)
	}
	return stats, nil
}

func (s *SyncService) syncWeb(ctx context.Context, src *domain.Source, sink domain.ProgressSink, logger *slog.Logger) (*domain.SyncStats, error) {
	// Health check runs before any state mutation so an unreachable scraper
	// leaves the source untouched.
	if !s.scraper.Healthy(ctx) {
		return nil, domain.ErrScraperUnavailable
	}

	var cfg pattern.SourceConfig
	if len(src.Config) > 0 {
		if err := json.Unmarshal(src.Config, &cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
		}
	}

	prevStatus := src.Status
	if err := s.setStatus(ctx, src.ID, domain.StatusSyncing); err != nil {
		return nil, fmt.Errorf("mark syncing: %w", err)
	}

	listing, err := s.scraper.ScrapeArticles(ctx, src.URL, s.config.MaxArticlesPerSync)
	if err != nil {
		s.finishWebWithError(ctx, src, prevStatus, err)
		return nil, fmt.Errorf("list articles: %w", err)
	}

	stats := &domain.SyncStats{SourceID: src.ID, Fetched: len(listing.Articles)}

	for i, info := range listing.Articles {
		if !pattern.Matches(info.URL, cfg.IncludePatterns, cfg.ExcludePatterns) {
			stats.Skipped++
			continue
		}

		emit(sink, domain.ProgressEvent{
			Type:          domain.EventTypeArticleCheck,
			SourceID:      src.ID,
			ArticleURL:    info.URL,
			ArticleTitle:  info.Title,
			ArticleIndex:  i + 1,
			TotalArticles: len(listing.Articles),
		})

		exists, err := s.articles.ExistsByURL(ctx, info.URL)
		if err != nil {
			s.finishWebWithError(ctx, src, prevStatus, err)
			return nil, err
		}
		if exists {
			stats.Skipped++
			emit(sink, domain.ProgressEvent{Type: domain.EventTypeArticleSkip, SourceID: src.ID, ArticleURL: info.URL})
			continue
		}

		// Per-article failures are isolated; one broken page never aborts
		// the run.
		if err := s.scrapeAndSave(ctx, src, info); err != nil {
			stats.Errors++
			logger.Warn("article scrape failed", "url", info.URL, "error", err)
			emit(sink, domain.ProgressEvent{Type: domain.EventTypeArticleError, SourceID: src.ID, ArticleURL: info.URL, Error: err.Error()})
			continue
		}

		stats.New++
		emit(sink, domain.ProgressEvent{Type: domain.EventTypeArticleNew, SourceID: src.ID, ArticleURL: info.URL, ArticleTitle: info.Title})
	}

	now := time.Now().UTC()
	patch := domain.SourcePatch{
		Status:        &prevStatus,
		LastSyncAt:    &now,
		LastSyncError: nilString(),
	}
	if err := s.sources.Update(ctx, src.ID, patch); err != nil {
		return stats, fmt.Errorf("finish sync: %w", err)
	}
	return stats, nil
}

func (s *SyncService) scrapeAndSave(ctx context.Context, src *domain.Source, info scraper.ArticleInfo) error {
	result, err := s.scraper.ScrapeURL(ctx, info.URL)
	if err != nil {
		return err
	}

	title := result.Title
	if title == "" {
		title = info.Title
	}

	intro := s.buildIntro(ctx, title, result.Markdown)

	article := &domain.Article{
		ID:       uuid.NewString(),
		SourceID: src.ID,
		URL:      info.URL,
		Title:    title,
	}
	if intro != "" {
		article.Intro = &intro
	}
	if result.Markdown != "" {
		article.Content = &result.Markdown
	}
	if info.Author != "" {
		article.Author = &info.Author
	}
	if info.Date != "" {
		if ts, err := time.Parse(time.RFC3339, info.Date); err == nil {
			utc := ts.UTC()
			article.PublishedAt = &utc
		}
	}

	return s.persistArticle(ctx, src, article)
}

// buildIntro asks the language model first and falls back to heuristic
// extraction when generation is unavailable or fails.
func (s *SyncService) buildIntro(ctx context.Context, title, markdown string) string {
	if markdown == "" {
		return ""
	}
	if s.intro != nil {
		if generated, err := s.intro.GenerateIntro(ctx, title, markdown); err == nil && generated != "" {
			return generated
		} else if err != nil {
			s.logger.Debug("intro generation failed, falling back", "error", err)
		}
	}
	return scraper.ExtractIntro(markdown)
}

func (s *SyncService) itemExists(ctx context.Context, sourceID string, item *domain.ConnectorItem) (bool, error) {
	if item.ExternalID != "" {
		exists, err := s.articles.ExistsByExternalID(ctx, sourceID, item.ExternalID)
		if err != nil || exists {
			return exists, err
		}
	}
	if item.URL != "" {
		return s.articles.ExistsByURL(ctx, item.URL)
	}
	return false, nil
}

func (s *SyncService) saveItem(ctx context.Context, src *domain.Source, item *domain.ConnectorItem) error {
	article := &domain.Article{
		ID:       uuid.NewString(),
		SourceID: src.ID,
		URL:      item.URL,
		Title:    item.Title,
	}
	if item.ExternalID != "" {
		externalID := item.ExternalID
		article.ExternalID = &externalID
	}
	if item.Content != "" {
		content := item.Content
		article.Content = &content
		if intro := scraper.ExtractIntro(item.Content); intro != "" {
			article.Intro = &intro
		}
	}
	if item.Author != "" {
		author := item.Author
		article.Author = &author
	}
	article.PublishedAt = item.PublishedAt

	return s.persistArticle(ctx, src, article)
}

// persistArticle writes the article and its edition link in one transaction,
// then publishes. Publish failures are logged, not counted against the sync.
func (s *SyncService) persistArticle(ctx context.Context, src *domain.Source, article *domain.Article) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.articles.Create(txCtx, article); err != nil {
			return fmt.Errorf("create article: %w", err)
		}
		day := time.Now().UTC().Truncate(24 * time.Hour)
		if err := s.editions.AttachArticle(txCtx, src.UserID, article.ID, day); err != nil {
			return fmt.Errorf("attach to edition: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, article); err != nil {
			s.logger.Warn("publish failed", "article_id", article.ID, "error", err)
		}
	}
	return nil
}

// finishConnectorSync records success: CONNECTED status, fresh lastSyncAt,
// cleared error, the advanced cursor, and any credential blob the connector
// refreshed during the fetch. The cursor is persisted here and nowhere else,
// so a failed run never moves it.
func (s *SyncService) finishConnectorSync(ctx context.Context, src *domain.Source, cursor, prevCreds string) error {
	status := domain.Transition(domain.StatusSyncing, domain.EventSyncSuccess)
	now := time.Now().UTC()
	patch := domain.SourcePatch{
		Status:        &status,
		LastSyncAt:    &now,
		LastSyncError: nilString(),
	}
	if cursor != src.SyncCursor {
		patch.SyncCursor = &cursor
	}
	if src.Credentials != prevCreds {
		patch.Credentials = &src.Credentials
	}
	return s.sources.Update(ctx, src.ID, patch)
}

// finishWithError resolves a failed connector sync: EXPIRED when credentials
// were rejected, ERROR otherwise. The cursor is left where it was. A
// credential blob refreshed before the failure is still persisted so the
// re-established session survives the retry.
func (s *SyncService) finishWithError(ctx context.Context, src *domain.Source, syncErr error, prevCreds string, logger *slog.Logger) {
	event := domain.EventSyncError
	if errors.Is(syncErr, domain.ErrAuthExpired) {
		event = domain.EventSyncAuthError
	}
	status := domain.Transition(domain.StatusSyncing, event)
	message := syncErr.Error()
	patch := domain.SourcePatch{
		Status:        &status,
		LastSyncError: &message,
	}
	if src.Credentials != prevCreds {
		patch.Credentials = &src.Credentials
	}
	if err := s.sources.Update(ctx, src.ID, patch); err != nil {
		logger.Error("failed to record sync error", "error", err)
	}
}

func (s *SyncService) finishWebWithError(ctx context.Context, src *domain.Source, prevStatus domain.SourceStatus, syncErr error) {
	message := syncErr.Error()
	patch := domain.SourcePatch{
		Status:        &prevStatus,
		LastSyncError: &message,
	}
	if err := s.sources.Update(ctx, src.ID, patch); err != nil {
		s.logger.Error("failed to record sync error", "source_id", src.ID, "error", err)
	}
}

func (s *SyncService) setStatus(ctx context.Context, sourceID string, status domain.SourceStatus) error {
	return s.sources.Update(ctx, sourceID, domain.SourcePatch{Status: &status})
}

func maxID(conn connector.Connector, current, candidate string) string {
	if candidate == "" {
		return current
	}
	if current == "" || conn.CompareIDs(candidate, current) > 0 {
		return candidate
	}
	return current
}

// nilString returns a pointer to the empty string, which stores map to NULL.
func nilString() *string {
	empty := ""
	return &empty
}

func emit(sink domain.ProgressSink, event domain.ProgressEvent) {
	if sink != nil {
		sink(event)
	}
}
